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

import "testing"

func TestOverlayTrackerRecordAndGetLine(t *testing.T) {
	o := NewOverlayTracker()
	o.Record(0, 0, "1")
	o.Record(0, 1, "12")
	o.RecordSpace(0, 2)

	text, width := o.GetLine(0)
	want := string([]rune{DotsKeyToUnicode("1"), DotsKeyToUnicode("12"), DotsKeyToUnicode("")})
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
	if width != 3 {
		t.Fatalf("width = %d, want 3", width)
	}
}

func TestOverlayTrackerGapFill(t *testing.T) {
	o := NewOverlayTracker()
	o.Record(0, 2, "1")
	text, _ := o.GetLine(0)
	if len([]rune(text)) != 3 {
		t.Fatalf("line length = %d, want 3 (two gap-filled entries)", len([]rune(text)))
	}
	if []rune(text)[0] != DotsKeyToUnicode("") || []rune(text)[1] != DotsKeyToUnicode("") {
		t.Fatalf("gap-filled entries not blank: %q", text)
	}
}

func TestOverlayTrackerHasLineAndTrackedLines(t *testing.T) {
	o := NewOverlayTracker()
	if o.HasLine(0) {
		t.Fatal("HasLine(0) = true on empty tracker")
	}
	o.Record(2, 0, "1")
	o.Record(0, 0, "2")
	if !o.HasLine(2) || !o.HasLine(0) {
		t.Fatal("HasLine false for recorded lines")
	}
	if got := o.GetTrackedLines(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("GetTrackedLines = %v, want [0 2]", got)
	}
}

func TestOverlayTrackerClear(t *testing.T) {
	o := NewOverlayTracker()
	o.Record(0, 0, "1")
	o.Clear()
	if o.HasLine(0) {
		t.Fatal("HasLine(0) = true after Clear")
	}
}

func TestOverlayTrackerUnrecordedLineIsEmpty(t *testing.T) {
	o := NewOverlayTracker()
	text, width := o.GetLine(5)
	if text != "" || width != 0 {
		t.Fatalf("GetLine(5) = %q, %d, want empty, 0", text, width)
	}
}
