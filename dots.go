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
	"strconv"
	"strings"
)

// brailleBase is the start of the Unicode braille patterns block.
// A cell's code point is brailleBase + sum(2^(d-1)) over dots d in
// {1..6} present in the cell; the empty dot key encodes as
// brailleBase itself (braille space, U+2800).
const brailleBase = rune(0x2800)

// CanonicalKey sorts the dots in a chord ascending and concatenates
// their decimal digits, dropping dot 0 (space). It is idempotent and
// order-independent: CanonicalKey(CanonicalKey(s)) == CanonicalKey(s)
// for any dot set s, and the space chord {0} always yields "".
func CanonicalKey(dots []int) string {
	filtered := make([]int, 0, len(dots))
	for _, d := range dots {
		if d != 0 {
			filtered = append(filtered, d)
		}
	}
	sort.Ints(filtered)
	var b strings.Builder
	for _, d := range filtered {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

// MultiCellKey joins canonical per-cell dot keys with "|", preserving
// cell order.
func MultiCellKey(cellKeys []string) string {
	return strings.Join(cellKeys, "|")
}

// DotsToUnicode converts a dot set directly to its Unicode braille
// code point, independent of CanonicalKey's string form.
func DotsToUnicode(dots []int) rune {
	var mask rune
	for _, d := range dots {
		if d >= 1 && d <= 6 {
			mask |= 1 << uint(d-1)
		}
	}
	return brailleBase + mask
}

// DotsKeyToUnicode converts a canonical dot key (as produced by
// CanonicalKey) to its Unicode braille code point. An empty key
// encodes as the braille space, U+2800.
func DotsKeyToUnicode(key string) rune {
	var mask rune
	for _, c := range key {
		d := int(c - '0')
		if d >= 1 && d <= 6 {
			mask |= 1 << uint(d-1)
		}
	}
	return brailleBase + mask
}

// canonicalizeDigits sorts the characters of a per-cell digit string,
// as required when unifying profile-authored dot lists (e.g. "42" ->
// "24").
func canonicalizeDigits(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}
