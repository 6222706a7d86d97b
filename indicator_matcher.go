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

// IndicatorMatcher is a deferred-prefix automaton over the unified
// indicator list: when a short indicator is a prefix of a longer one,
// it commits the short one only once the next cell proves the longer
// one is not arriving.
type IndicatorMatcher struct {
	scanner
	indicators []IndicatorDefinition
	maxCells   int
}

// NewIndicatorMatcher builds a matcher over the given (already
// unified, order-preserved) indicator list.
func NewIndicatorMatcher(indicators []IndicatorDefinition) *IndicatorMatcher {
	m := &IndicatorMatcher{scanner: newScanner(), indicators: indicators}
	for _, ind := range indicators {
		if n := len(ind.Dots); n > m.maxCells {
			m.maxCells = n
		}
	}
	return m
}

// Step offers one cell's dot key to the matcher.
func (m *IndicatorMatcher) Step(cellKey string) (MatchOutcome, *IndicatorDefinition, []string) {
	cands := make([]candidate, len(m.indicators))
	for i, ind := range m.indicators {
		cands[i] = candidate{dotsKey: ind.DotsKey, index: i}
	}
	outcome, idx, leftover := m.scanner.step(cellKey, cands, m.maxCells, true)
	if idx < 0 {
		return outcome, nil, leftover
	}
	return outcome, &m.indicators[idx], leftover
}

// Reset clears pending buffer and deferred state.
func (m *IndicatorMatcher) Reset() {
	m.scanner.reset()
}
