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

import "time"

// Config is the engine's runtime-mutable configuration. There is no
// on-disk state owned by the core and no file format to parse, so,
// like tcell's Style and Color value types, this is a plain struct --
// no configuration library is warranted.
type Config struct {
	// ChordTimeout is the quiescence duration the Chord Aggregator
	// waits for before closing a chord. Zero means DefaultChordTimeout.
	ChordTimeout time.Duration
	// ShowBrailleOverlay tells a host whether to render the overlay
	// tracker's lines. The core does not act on this itself; it is
	// surfaced for the host's benefit.
	ShowBrailleOverlay bool
	// InitialMode is the mode the engine starts in. Zero value is
	// ModeGrade1.
	InitialMode Mode
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		ChordTimeout:       DefaultChordTimeout,
		ShowBrailleOverlay: true,
		InitialMode:        ModeGrade1,
	}
}
