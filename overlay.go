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

import (
	"sort"

	"github.com/mattn/go-runewidth"
)

// OverlayTracker keeps, per line, an ordered sequence of dot keys --
// one per emitted character position -- so a host editor can render a
// braille overlay alongside the print text it inserted. Spaces are
// recorded as the empty dot key.
type OverlayTracker struct {
	lines map[int][]string
}

// NewOverlayTracker returns an empty tracker.
func NewOverlayTracker() *OverlayTracker {
	return &OverlayTracker{lines: make(map[int][]string)}
}

// Record stores the dot key for one emitted character at (line, col).
// Columns recorded past the current line length are filled with empty
// entries.
func (o *OverlayTracker) Record(line, col int, dotKey string) {
	o.ensure(line, col)
	o.lines[line][col] = dotKey
}

// RecordSpace records a space (the empty dot key) at (line, col).
func (o *OverlayTracker) RecordSpace(line, col int) {
	o.Record(line, col, "")
}

func (o *OverlayTracker) ensure(line, col int) {
	row := o.lines[line]
	for len(row) <= col {
		row = append(row, "")
	}
	o.lines[line] = row
}

// GetLine renders the Unicode braille string for a line, mapping each
// stored dot key through DotsKeyToUnicode (empty entries become the
// braille space, U+2800), along with the string's terminal display
// width -- since print text aligned against this overlay can include
// double-width glyphs (e.g. full-width Kana punctuation), the same
// way tcell's Cell.PutChars uses go-runewidth to keep cell columns
// aligned.
func (o *OverlayTracker) GetLine(line int) (text string, width int) {
	row, ok := o.lines[line]
	if !ok {
		return "", 0
	}
	runes := make([]rune, len(row))
	for i, key := range row {
		runes[i] = DotsKeyToUnicode(key)
	}
	s := string(runes)
	return s, runewidth.StringWidth(s)
}

// HasLine reports whether any character has been recorded on line.
func (o *OverlayTracker) HasLine(line int) bool {
	_, ok := o.lines[line]
	return ok
}

// GetTrackedLines returns every line with recorded entries, sorted
// ascending.
func (o *OverlayTracker) GetTrackedLines() []int {
	out := make([]int, 0, len(o.lines))
	for l := range o.lines {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// Clear discards all tracked lines.
func (o *OverlayTracker) Clear() {
	o.lines = make(map[int][]string)
}
