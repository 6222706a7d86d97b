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

package braille

import "errors"

// The engine is data-driven and has no fatal error kinds. Malformed
// profile entries are discarded silently (counted in
// UnifyStats.Discarded and logged at debug by NewEngine); matchers and
// the chord aggregator never fail; unknown dot keys fall back to the
// Unicode braille glyph rather than raising. The one surfaced failure
// kind is EmissionFailed, for when the host has nowhere to put a
// character.
var (
	// ErrNoActiveEditor is returned by a host's Emit callback when
	// there is nowhere to deliver print text, e.g. no focused editor.
	// It is the canonical cause wrapped by EmissionFailed.
	ErrNoActiveEditor = errors.New("no active editor")
)

// EmissionFailed reports that one character emission could not be
// delivered to the host. The Engine builds one when the host's
// EmitFunc returns an error and logs it at warn; no Engine method
// returns it. The
// core does not retry emission, and a failed emission does not alter
// matcher or mode-machine state -- emission is best-effort.
type EmissionFailed struct {
	PrintText string
	DotKey    string
	Cause     error
}

func (e *EmissionFailed) Error() string {
	return "braille: emission failed for " + e.PrintText + ": " + e.Cause.Error()
}

func (e *EmissionFailed) Unwrap() error { return e.Cause }
