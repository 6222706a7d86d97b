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

func testMultiCellEntries() []MultiCellEntry {
	return []MultiCellEntry{
		{ID: "and", Dots: []string{"12346"}, DotsKey: "12346", Print: "and", Mode: ModeGrade2},
		{ID: "the", Dots: []string{"2346"}, DotsKey: "2346", Print: "the", Mode: ModeGrade2},
		{ID: "for", Dots: []string{"123456"}, DotsKey: "123456", Print: "for", Mode: ModeGrade2},
		{ID: "cc", Dots: []string{"14", "14"}, DotsKey: "14|14", Print: "cc", Mode: ModeGrade1},
	}
}

func TestMultiCellMatcherFiltersByMode(t *testing.T) {
	m := NewMultiCellMatcher(testMultiCellEntries())
	outcome, entry, leftover := m.Step("12346", ModeGrade1)
	if outcome != OutcomeNone {
		t.Fatalf("outcome under grade1 = %v, want None (grade2-only entry not a candidate)", outcome)
	}
	if entry != nil || len(leftover) != 1 {
		t.Fatalf("entry=%v leftover=%v, want nil, [12346]", entry, leftover)
	}
}

func TestMultiCellMatcherExactMatchUnderMode(t *testing.T) {
	m := NewMultiCellMatcher(testMultiCellEntries())
	outcome, entry, leftover := m.Step("12346", ModeGrade2)
	if outcome != OutcomeMatched {
		t.Fatalf("outcome = %v, want Matched", outcome)
	}
	if entry == nil || entry.ID != "and" {
		t.Fatalf("entry = %v, want and", entry)
	}
	if leftover != nil {
		t.Fatalf("leftover = %v, want nil", leftover)
	}
}

func TestMultiCellMatcherNoRecoveryWhenPrecedingPrefixIsNotACandidate(t *testing.T) {
	m := NewMultiCellMatcher(testMultiCellEntries())
	outcome, _, _ := m.Step("14", ModeGrade1)
	if outcome != OutcomePending {
		t.Fatalf("first cell outcome = %v, want Pending", outcome)
	}
	// second cell does not extend "14|14" -- total failure, but the
	// one-cell-shorter prefix ("14") is not itself a candidate here, so
	// this should report None with both cells as leftover.
	outcome, entry, leftover := m.Step("999", ModeGrade1)
	if outcome != OutcomeNone {
		t.Fatalf("outcome = %v, want None", outcome)
	}
	if entry != nil {
		t.Fatalf("entry = %v, want nil", entry)
	}
	if len(leftover) != 2 || leftover[0] != "14" || leftover[1] != "999" {
		t.Fatalf("leftover = %v, want [14 999]", leftover)
	}
}

func TestMultiCellMatcherResetClearsPending(t *testing.T) {
	m := NewMultiCellMatcher(testMultiCellEntries())
	m.Step("14", ModeGrade1)
	m.Reset()
	if m.hasPending() {
		t.Fatalf("hasPending = true after Reset")
	}
}
