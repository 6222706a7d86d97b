// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package legacy

import (
	"sync"

	"golang.org/x/text/encoding"
)

// registry is a lookup of legacy wire encodings (embosser and
// refreshable-display formats) keyed by name. It mirrors the
// Register/Get pattern tcell keeps for terminal charsets, scoped here
// to braille wire formats rather than terminal character sets.
type registry struct {
	mu    sync.Mutex
	names map[string]encoding.Encoding
}

func (r *registry) put(name string, enc encoding.Encoding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names == nil {
		r.names = make(map[string]encoding.Encoding)
	}
	r.names[name] = enc
}

func (r *registry) get(name string) encoding.Encoding {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[name]
}

var legacyEncodings = &registry{}

func init() {
	legacyEncodings.put("BRAILLE-ASCII", BrailleASCII)
}

// RegisterEncoding adds a legacy wire encoding under name so it can
// later be located with GetEncoding. A host driving embossers or
// displays for more than one wire standard registers each under its
// own name; a host emitting Unicode braille patterns directly never
// needs this at all.
func RegisterEncoding(name string, enc encoding.Encoding) {
	legacyEncodings.put(name, enc)
}

// GetEncoding locates a registered legacy encoding by name, returning
// nil if name has not been registered. The standard North American
// Braille ASCII table is pre-registered under "BRAILLE-ASCII".
func GetEncoding(name string) encoding.Encoding {
	return legacyEncodings.get(name)
}
