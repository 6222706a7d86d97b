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

func TestCanonicalKey(t *testing.T) {
	cases := []struct {
		dots []int
		want string
	}{
		{nil, ""},
		{[]int{0}, ""},
		{[]int{3, 1, 2}, "123"},
		{[]int{1, 1, 2}, "112"},
		{[]int{6, 0, 4}, "46"},
	}
	for _, c := range cases {
		if got := CanonicalKey(c.dots); got != c.want {
			t.Errorf("CanonicalKey(%v) = %q, want %q", c.dots, got, c.want)
		}
	}
}

func TestCanonicalKeyIdempotent(t *testing.T) {
	dots := []int{5, 2, 1, 6}
	first := CanonicalKey(dots)
	var redigested []int
	for _, c := range first {
		redigested = append(redigested, int(c-'0'))
	}
	second := CanonicalKey(redigested)
	if first != second {
		t.Errorf("CanonicalKey not idempotent: %q != %q", first, second)
	}
}

func TestMultiCellKey(t *testing.T) {
	got := MultiCellKey([]string{"1", "24", "136"})
	want := "1|24|136"
	if got != want {
		t.Errorf("MultiCellKey = %q, want %q", got, want)
	}
}

func TestDotsToUnicode(t *testing.T) {
	cases := []struct {
		dots []int
		want rune
	}{
		{nil, 0x2800},
		{[]int{1}, 0x2801},
		{[]int{1, 2}, 0x2803},
		{[]int{0}, 0x2800},
	}
	for _, c := range cases {
		if got := DotsToUnicode(c.dots); got != c.want {
			t.Errorf("DotsToUnicode(%v) = %U, want %U", c.dots, got, c.want)
		}
	}
}

func TestDotsKeyToUnicodeMatchesCanonicalKey(t *testing.T) {
	dots := []int{2, 4, 1}
	key := CanonicalKey(dots)
	if got, want := DotsKeyToUnicode(key), DotsToUnicode(dots); got != want {
		t.Errorf("DotsKeyToUnicode(%q) = %U, want %U", key, got, want)
	}
}
