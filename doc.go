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

// Package braille implements a braille chord-to-text input engine.
//
// It consumes timed dot-press events from a six-dot Perkins-style
// keyboard, aggregates them into chords (cells), interprets the cells
// against a layered braille specification (grade 1, grade 2, kana,
// nemeth), and emits print text plus the canonical dot pattern that
// produced it, so a host editor can keep a braille overlay in sync
// with ordinary text.
//
// The engine is single-threaded and cooperative: Engine.Press is the
// only externally driven entry point, besides the chord quiescence
// timer it arms internally. A process may run many independent
// Engine values, but a single Engine must not be driven from more
// than one goroutine at a time.
package braille
