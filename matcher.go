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

import "strings"

// MatchOutcome tags the four things a scanner step can report.
type MatchOutcome int

const (
	// OutcomeMatched means the buffer's whole contents resolved to an
	// exact entry, with no longer entry possible.
	OutcomeMatched MatchOutcome = iota
	// OutcomePending means the caller should wait for the next cell.
	OutcomePending
	// OutcomeMatchedWithLeftover means a shorter entry was committed
	// and one or more trailing cells must be reprocessed by the next
	// pipeline stage.
	OutcomeMatchedWithLeftover
	// OutcomeNone means nothing matched; every buffered cell must be
	// reprocessed by the next pipeline stage, in order.
	OutcomeNone
)

// candidate is the shape both the indicator list and the multi-cell
// list present to the shared scanner: an ordered, scanned (not
// hashed) key plus an opaque index back into the caller's own slice.
type candidate struct {
	dotsKey string
	index   int
}

// scanner is the engine shared by the Indicator Matcher and the
// Multi-Cell Matcher. Per Design Note §9, the two matchers are
// structurally identical deferred-prefix automata that differ only in
// one tie-break policy (deferred vs. immediate) and, for the
// multi-cell matcher, a per-call candidate filter. Rather than
// duplicate the scan loop, both matchers embed a scanner and supply a
// candidate list (optionally mode-filtered) on every call.
//
// This mirrors how tcell's inputParser is one parsing core branching
// on an inputState enum, rather than a family of near-duplicate
// per-terminal state machines.
type scanner struct {
	buffer   []string // pending cell dot keys, in push order
	deferred int      // index into the last candidate list that was deferred, or -1
}

func newScanner() scanner {
	return scanner{deferred: -1}
}

// reset discards pending buffer and deferred state.
func (s *scanner) reset() {
	s.buffer = nil
	s.deferred = -1
}

// hasPending reports whether the scanner is holding buffered cells.
func (s *scanner) hasPending() bool {
	return len(s.buffer) > 0
}

// flushPending returns and clears the buffer, dropping any deferred
// match.
func (s *scanner) flushPending() []string {
	buf := s.buffer
	s.buffer = nil
	s.deferred = -1
	return buf
}

// step pushes k onto the buffer and scans cands (which must already
// be filtered/ordered by the caller for this call) for an exact match
// of the joined buffer and for any candidate that extends it. deferred
// selects the tie-break policy: true reproduces the Indicator
// Matcher's behaviour (commit a short match only once a longer one is
// ruled out); false reproduces the Multi-Cell Matcher's behaviour
// (commit an exact match immediately once the buffer reaches maxLen,
// and recover a one-cell-shorter leftover match on total failure).
func (s *scanner) step(k string, cands []candidate, maxLen int, deferredPolicy bool) (MatchOutcome, int, []string) {
	s.buffer = append(s.buffer, k)
	prefix := strings.Join(s.buffer, "|")

	exact := -1
	longer := false
	for _, c := range cands {
		if c.dotsKey == prefix {
			exact = c.index
		} else if strings.HasPrefix(c.dotsKey, prefix+"|") {
			longer = true
		}
	}

	if deferredPolicy {
		return s.stepDeferred(exact, longer, maxLen)
	}
	return s.stepImmediate(exact, longer, maxLen, cands)
}

// stepDeferred implements the Indicator Matcher's five-case table.
func (s *scanner) stepDeferred(exact int, longer bool, maxLen int) (MatchOutcome, int, []string) {
	switch {
	case exact >= 0 && !longer:
		s.buffer = nil
		s.deferred = -1
		return OutcomeMatched, exact, nil
	case exact >= 0 && longer:
		s.deferred = exact
		return OutcomePending, -1, nil
	case exact < 0 && longer && len(s.buffer) < maxLen:
		return OutcomePending, -1, nil
	case exact < 0 && s.deferred >= 0:
		leftover := s.buffer[len(s.buffer)-1:]
		committed := s.deferred
		s.buffer = nil
		s.deferred = -1
		return OutcomeMatchedWithLeftover, committed, leftover
	default:
		buf := s.buffer
		s.buffer = nil
		s.deferred = -1
		return OutcomeNone, -1, buf
	}
}

// stepImmediate implements the Multi-Cell Matcher's non-deferred
// policy: an exact match wins immediately once the buffer is at
// maxLen (it does not wait for the next cell to rule out a longer
// possibility), otherwise pending; on total failure it checks whether
// dropping the last cell yields an exact match of the preceding
// prefix (and only that prefix -- per the Open Question in spec.md
// §9, shorter prefixes are never searched).
func (s *scanner) stepImmediate(exact int, longer bool, maxLen int, cands []candidate) (MatchOutcome, int, []string) {
	switch {
	case exact >= 0 && (!longer || len(s.buffer) >= maxLen):
		s.buffer = nil
		return OutcomeMatched, exact, nil
	case longer && len(s.buffer) < maxLen:
		return OutcomePending, -1, nil
	default:
		if len(s.buffer) >= 2 {
			precedingPrefix := strings.Join(s.buffer[:len(s.buffer)-1], "|")
			for _, c := range cands {
				if c.dotsKey == precedingPrefix {
					leftover := s.buffer[len(s.buffer)-1:]
					s.buffer = nil
					return OutcomeMatchedWithLeftover, c.index, leftover
				}
			}
		}
		buf := s.buffer
		s.buffer = nil
		return OutcomeNone, -1, buf
	}
}
