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

// ModeChangeReason says what caused a mode transition, for the
// mode-change callback.
type ModeChangeReason int

const (
	// ReasonIndicator means an indicator drove the transition.
	ReasonIndicator ModeChangeReason = iota
	// ReasonAuto means a scope auto-returned without an indicator.
	ReasonAuto
	// ReasonCommand means a host command (e.g. ToggleMode) forced the
	// mode directly, bypassing indicator processing. Commands are
	// thin wrappers, not part of the core contract (spec.md §6).
	ReasonCommand
)

// ModeChangeFunc is invoked strictly between the indicator (or
// auto-return) that triggered a transition and the next emission.
type ModeChangeFunc func(old, newMode Mode, reason ModeChangeReason)

// ModeMachine tracks the active braille system, any pushed modes,
// the active scope, and a pending format modifier.
type ModeMachine struct {
	currentMode     Mode
	modeStack       []Mode
	activeScope     *Scope
	symbolCount     int
	pendingModifier Modifier
	onChange        ModeChangeFunc
}

// NewModeMachine returns a machine in its initial state: mode
// ModeGrade1, empty stack, no active scope, no pending modifier.
func NewModeMachine() *ModeMachine {
	return &ModeMachine{currentMode: ModeGrade1, pendingModifier: ModifierNone}
}

// SetModeChangeCallback registers cb to be invoked on every mode
// transition (indicator-driven or auto-return).
func (m *ModeMachine) SetModeChangeCallback(cb ModeChangeFunc) {
	m.onChange = cb
}

// CurrentMode returns the active braille system.
func (m *ModeMachine) CurrentMode() Mode { return m.currentMode }

// ActiveScope returns the current scope, or nil if none is active.
func (m *ModeMachine) ActiveScope() *Scope { return m.activeScope }

// ProcessIndicator applies one matched indicator to the mode machine,
// per spec.md §4.5, and reports whether anything changed.
func (m *ModeMachine) ProcessIndicator(ind *IndicatorDefinition) bool {
	if ind.Kind == KindModifier {
		if ind.Action == ActionEnter {
			m.pendingModifier = ind.Modifier
		} else {
			m.pendingModifier = ModifierNone
		}
		return true
	}

	if ind.Action == ActionEnter {
		if m.currentMode == ind.TargetMode && scopeEqual(m.activeScope, &ind.Scope) {
			return false
		}
		old := m.currentMode
		m.modeStack = append(m.modeStack, m.currentMode)
		m.currentMode = ind.TargetMode
		scope := ind.Scope
		m.activeScope = &scope
		m.symbolCount = 0
		m.fireChange(old, m.currentMode, ReasonIndicator)
		return true
	}

	// exit
	if m.currentMode == ModeGrade1 && len(m.modeStack) == 0 {
		return false
	}
	old := m.currentMode
	if len(m.modeStack) > 0 {
		m.currentMode = m.modeStack[len(m.modeStack)-1]
		m.modeStack = m.modeStack[:len(m.modeStack)-1]
	} else {
		m.currentMode = ModeGrade1
	}
	m.activeScope = nil
	m.symbolCount = 0
	m.fireChange(old, m.currentMode, ReasonIndicator)
	return true
}

// ConsumeModifier returns the current pending modifier and clears it.
func (m *ModeMachine) ConsumeModifier() Modifier {
	mod := m.pendingModifier
	m.pendingModifier = ModifierNone
	return mod
}

// OnCharacterEmitted advances symbol-scope auto-return: after one
// character is emitted under ScopeSymbol, the machine returns to the
// state it held before entering.
func (m *ModeMachine) OnCharacterEmitted() {
	if m.activeScope == nil || *m.activeScope != ScopeSymbol {
		return
	}
	m.symbolCount++
	if m.symbolCount >= 1 {
		m.autoReturn()
	}
}

// OnSpace advances word-scope auto-return: a space while ScopeWord is
// active returns the machine to base.
func (m *ModeMachine) OnSpace() {
	if m.activeScope != nil && *m.activeScope == ScopeWord {
		m.autoReturn()
	}
}

// autoReturn performs an exit transition identical to ProcessIndicator's
// exit branch, but tagged ReasonAuto since no indicator drove it.
func (m *ModeMachine) autoReturn() {
	old := m.currentMode
	if len(m.modeStack) > 0 {
		m.currentMode = m.modeStack[len(m.modeStack)-1]
		m.modeStack = m.modeStack[:len(m.modeStack)-1]
	} else {
		m.currentMode = ModeGrade1
	}
	m.activeScope = nil
	m.symbolCount = 0
	m.fireChange(old, m.currentMode, ReasonAuto)
}

// Reset restores the machine's initial state.
func (m *ModeMachine) Reset() {
	m.currentMode = ModeGrade1
	m.modeStack = nil
	m.activeScope = nil
	m.symbolCount = 0
	m.pendingModifier = ModifierNone
}

func (m *ModeMachine) fireChange(old, newMode Mode, reason ModeChangeReason) {
	if m.onChange != nil {
		m.onChange(old, newMode, reason)
	}
}

// ForceMode sets the active mode directly, clearing the stack and any
// active scope. It backs the host-facing ToggleMode command and is
// not reachable from indicator processing.
func (m *ModeMachine) ForceMode(mode Mode) {
	old := m.currentMode
	m.currentMode = mode
	m.modeStack = nil
	m.activeScope = nil
	m.symbolCount = 0
	m.fireChange(old, mode, ReasonCommand)
}

func scopeEqual(a, b *Scope) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
