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
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizePrint puts profile-authored print text into Unicode NFC
// before it enters any table, the way encoding.go lets tcell callers
// put incoming bytes into a canonical in-memory representation at the
// authored-data boundary. This matters for composed Kana forms and
// accented Nemeth symbols authored with combining marks.
func normalizePrint(s string) string {
	return norm.NFC.String(s)
}

// UnifyStats reports how many raw entries were dropped while building
// the Tables, as one total across all reasons. Discards are not errors -- profile
// data is treated as authoritative -- but the count is observable by
// the caller and, when a logger is attached, emitted at debug level.
type UnifyStats struct {
	Discarded int
}

// Tables holds the four lookup structures the unifier produces from a
// set of profile records. It is built once at startup and is
// immutable thereafter; matchers and the driver only ever read it.
type Tables struct {
	SingleCell map[string]*UnifiedSingleCellEntry // keyed by dot key
	Numeric    map[string]SingleCellMapping        // keyed by dot key, role == "numbers"
	Indicators []IndicatorDefinition               // ordered, scanned not hashed
	MultiCell  []MultiCellEntry                    // ordered, scanned not hashed

	Stats UnifyStats
}

// rolePriority totally orders the single-cell conflict policy from
// spec.md's two ad-hoc rules, per Design Note §9:
//
//	{open, close} > punctuation > {groupsigns, wordsigns, contraction} > letter > numbers > other
func rolePriority(role string) int {
	switch role {
	case "open", "close":
		return 5
	case "punctuation":
		return 4
	case "groupsigns", "wordsigns", "contraction":
		return 2
	case "letter":
		return 1
	case "numbers":
		return 0
	default:
		return -1
	}
}

// Unify compiles a set of profile records, keyed by system id, into
// the four unified lookup tables.
func Unify(profiles map[string][]ProfileRecord) *Tables {
	t := &Tables{
		SingleCell: make(map[string]*UnifiedSingleCellEntry),
		Numeric:    make(map[string]SingleCellMapping),
	}
	for _, records := range profiles {
		for _, rec := range records {
			modes := derivedModes(rec)
			for _, e := range rec.Entries {
				t.absorb(e, modes)
			}
		}
	}
	return t
}

// derivedModes implements the mode-derivation table from spec.md §4.2.
func derivedModes(rec ProfileRecord) []Mode {
	switch rec.SystemID {
	case "kana":
		return []Mode{ModeKana}
	case "nemeth":
		return []Mode{ModeNemeth}
	}
	hasG1 := strings.Contains(rec.BrailleType, "grade1")
	hasG2 := strings.Contains(rec.BrailleType, "grade2")
	switch {
	case hasG1 && hasG2:
		return []Mode{ModeGrade1, ModeGrade2}
	case hasG2:
		return []Mode{ModeGrade2}
	default:
		return []Mode{ModeGrade1}
	}
}

func (t *Tables) absorb(e RawEntry, modes []Mode) {
	if e.Role == "indicator" || e.Category == "indicator" {
		t.Indicators = append(t.Indicators, buildIndicator(e))
		return
	}

	key, ok := canonicalDotsKey(e.Dots)
	if !ok {
		t.Stats.Discarded++
		return
	}
	if e.Print == nil {
		t.Stats.Discarded++
		return
	}

	switch len(e.Dots) {
	case 1:
		mapping := SingleCellMapping{Print: normalizePrint(*e.Print), Role: e.Role, ID: e.ID}
		for _, m := range modes {
			t.putSingleCell(key, m, mapping)
		}
		if e.Role == "numbers" {
			if _, exists := t.Numeric[key]; !exists {
				t.Numeric[key] = mapping
			}
		}
	default:
		for _, m := range modes {
			t.MultiCell = append(t.MultiCell, MultiCellEntry{
				ID:      e.ID,
				Dots:    canonicalDotsList(e.Dots),
				DotsKey: key,
				Print:   normalizePrint(*e.Print),
				Mode:    m,
				Role:    e.Role,
			})
		}
	}
}

// putSingleCell applies the single-cell conflict policy for one
// (dot key, mode) pair: paired punctuation (open/close) overrides
// plain entries, punctuation overrides contraction-like roles, and
// otherwise the role with the higher rolePriority wins, with the first
// writer kept when both roles have equal priority.
func (t *Tables) putSingleCell(key string, mode Mode, incoming SingleCellMapping) {
	entry, ok := t.SingleCell[key]
	if !ok {
		entry = &UnifiedSingleCellEntry{Dots: key, Mappings: make(map[Mode]SingleCellMapping)}
		t.SingleCell[key] = entry
	}
	existing, has := entry.Mappings[mode]
	if !has {
		entry.Mappings[mode] = incoming
		return
	}
	if shouldOverwrite(existing.Role, incoming.Role) {
		entry.Mappings[mode] = incoming
	}
	// otherwise first-writer-wins: keep existing.
}

func shouldOverwrite(existingRole, incomingRole string) bool {
	isPaired := func(r string) bool { return r == "open" || r == "close" }
	if isPaired(incomingRole) && !isPaired(existingRole) {
		return true
	}
	if existingRole == "punctuation" && isContractionLike(incomingRole) {
		return false
	}
	return rolePriority(incomingRole) > rolePriority(existingRole)
}

func isContractionLike(role string) bool {
	switch role {
	case "groupsigns", "wordsigns", "contraction":
		return true
	}
	return false
}

// buildIndicator classifies a raw indicator entry per spec.md §4.2.
func buildIndicator(e RawEntry) IndicatorDefinition {
	tags := make(map[string]struct{}, len(e.Tags))
	for _, tg := range e.Tags {
		tags[tg] = struct{}{}
	}

	action := ActionEnter
	if _, terminator := tags["terminator"]; terminator || strings.Contains(e.ID, "terminator") {
		action = ActionExit
	}

	kind := KindModeSwitch
	modifier := ModifierNone
	switch e.Subcategory {
	case "capital":
		kind, modifier = KindModifier, ModifierCapital
	case "numeric":
		kind, modifier = KindModifier, ModifierNumeric
	case "italic", "bold", "underline", "script":
		kind, modifier = KindModifier, ModifierTypeform
	}

	target := ModeGrade1
	if _, ok := tags["kana"]; ok || e.Subcategory == "kana" {
		target = ModeKana
	} else if _, ok := tags["nemeth"]; ok || e.Subcategory == "nemeth" {
		target = ModeNemeth
	}

	scope := ScopeSymbol
	if _, ok := tags["passage"]; ok {
		scope = ScopePassage
	} else if _, ok := tags["word"]; ok {
		scope = ScopeWord
	}

	key, _ := canonicalDotsKey(e.Dots)
	return IndicatorDefinition{
		ID:         e.ID,
		Dots:       canonicalDotsList(e.Dots),
		DotsKey:    key,
		Action:     action,
		TargetMode: target,
		Scope:      scope,
		Kind:       kind,
		Modifier:   modifier,
		Tags:       tags,
	}
}

// canonicalDotsKey canonicalises every per-cell digit string (sorted
// character-wise) and joins the cells with "|". It reports false when
// any per-cell string contains a character other than '0'-'6', or the entry
// carries no cells at all -- both of which are silently discarded by
// the caller, per spec.md §7.
func canonicalDotsKey(cells []string) (string, bool) {
	list := canonicalDotsList(cells)
	if len(cells) == 0 {
		return "", false
	}
	for _, c := range cells {
		for _, r := range c {
			if r < '0' || r > '6' {
				return "", false
			}
		}
	}
	return MultiCellKey(list), true
}

func canonicalDotsList(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = canonicalizeDigits(c)
	}
	return out
}
