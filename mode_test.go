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

func TestModeMachineInitialState(t *testing.T) {
	m := NewModeMachine()
	if m.CurrentMode() != ModeGrade1 {
		t.Fatalf("CurrentMode = %v, want grade1", m.CurrentMode())
	}
	if m.ActiveScope() != nil {
		t.Fatalf("ActiveScope = %v, want nil", m.ActiveScope())
	}
}

func TestModeMachineSymbolScopeAutoReturns(t *testing.T) {
	m := NewModeMachine()
	var transitions []ModeChangeReason
	m.SetModeChangeCallback(func(old, newMode Mode, reason ModeChangeReason) {
		transitions = append(transitions, reason)
	})

	ind := &IndicatorDefinition{ID: "nemeth-symbol", Kind: KindModeSwitch, Action: ActionEnter, TargetMode: ModeNemeth, Scope: ScopeSymbol}
	m.ProcessIndicator(ind)
	if m.CurrentMode() != ModeNemeth {
		t.Fatalf("CurrentMode = %v, want nemeth", m.CurrentMode())
	}

	m.OnCharacterEmitted()
	if m.CurrentMode() != ModeGrade1 {
		t.Fatalf("CurrentMode after symbol emission = %v, want grade1", m.CurrentMode())
	}
	if len(transitions) != 2 || transitions[0] != ReasonIndicator || transitions[1] != ReasonAuto {
		t.Fatalf("transitions = %v, want [Indicator Auto]", transitions)
	}
}

func TestModeMachineWordScopeAutoReturnsOnSpace(t *testing.T) {
	m := NewModeMachine()
	ind := &IndicatorDefinition{ID: "kana-word", Kind: KindModeSwitch, Action: ActionEnter, TargetMode: ModeKana, Scope: ScopeWord}
	m.ProcessIndicator(ind)
	m.OnCharacterEmitted() // word scope must not auto-return on emission
	if m.CurrentMode() != ModeKana {
		t.Fatalf("CurrentMode after emission under word scope = %v, want kana", m.CurrentMode())
	}
	m.OnSpace()
	if m.CurrentMode() != ModeGrade1 {
		t.Fatalf("CurrentMode after space = %v, want grade1", m.CurrentMode())
	}
}

func TestModeMachinePassageScopePersistsUntilExit(t *testing.T) {
	m := NewModeMachine()
	enter := &IndicatorDefinition{ID: "nemeth-passage", Kind: KindModeSwitch, Action: ActionEnter, TargetMode: ModeNemeth, Scope: ScopePassage}
	m.ProcessIndicator(enter)
	m.OnCharacterEmitted()
	m.OnSpace()
	if m.CurrentMode() != ModeNemeth {
		t.Fatalf("CurrentMode = %v, want nemeth to persist", m.CurrentMode())
	}
	exit := &IndicatorDefinition{ID: "nemeth-terminator", Kind: KindModeSwitch, Action: ActionExit}
	m.ProcessIndicator(exit)
	if m.CurrentMode() != ModeGrade1 {
		t.Fatalf("CurrentMode after exit = %v, want grade1", m.CurrentMode())
	}
}

func TestModeMachineExitAtBaseIsNoOp(t *testing.T) {
	m := NewModeMachine()
	exit := &IndicatorDefinition{ID: "stray-terminator", Kind: KindModeSwitch, Action: ActionExit}
	changed := m.ProcessIndicator(exit)
	if changed {
		t.Fatalf("ProcessIndicator = true, want false (no-op at base)")
	}
	if m.CurrentMode() != ModeGrade1 {
		t.Fatalf("CurrentMode = %v, want grade1", m.CurrentMode())
	}
}

func TestModeMachineReenteringSameModeAndScopeIsNoOp(t *testing.T) {
	m := NewModeMachine()
	enter := &IndicatorDefinition{ID: "nemeth-passage", Kind: KindModeSwitch, Action: ActionEnter, TargetMode: ModeNemeth, Scope: ScopePassage}
	m.ProcessIndicator(enter)
	changed := m.ProcessIndicator(enter)
	if changed {
		t.Fatalf("re-entering same mode+scope reported changed")
	}
}

func TestModeMachineModifierConsumeOnce(t *testing.T) {
	m := NewModeMachine()
	enter := &IndicatorDefinition{ID: "capital-symbol", Kind: KindModifier, Action: ActionEnter, Modifier: ModifierCapital}
	m.ProcessIndicator(enter)
	if got := m.ConsumeModifier(); got != ModifierCapital {
		t.Fatalf("ConsumeModifier = %v, want capital", got)
	}
	if got := m.ConsumeModifier(); got != ModifierNone {
		t.Fatalf("second ConsumeModifier = %v, want none", got)
	}
}

func TestModeMachineForceModeBypassesStack(t *testing.T) {
	m := NewModeMachine()
	var lastReason ModeChangeReason
	m.SetModeChangeCallback(func(old, newMode Mode, reason ModeChangeReason) {
		lastReason = reason
	})
	enter := &IndicatorDefinition{ID: "nemeth-passage", Kind: KindModeSwitch, Action: ActionEnter, TargetMode: ModeNemeth, Scope: ScopePassage}
	m.ProcessIndicator(enter)

	m.ForceMode(ModeGrade2)
	if m.CurrentMode() != ModeGrade2 {
		t.Fatalf("CurrentMode = %v, want grade2", m.CurrentMode())
	}
	if lastReason != ReasonCommand {
		t.Fatalf("lastReason = %v, want ReasonCommand", lastReason)
	}
	if m.ActiveScope() != nil {
		t.Fatalf("ActiveScope = %v, want nil after ForceMode", m.ActiveScope())
	}
}

func TestModeMachineReset(t *testing.T) {
	m := NewModeMachine()
	enter := &IndicatorDefinition{ID: "nemeth-passage", Kind: KindModeSwitch, Action: ActionEnter, TargetMode: ModeNemeth, Scope: ScopePassage}
	m.ProcessIndicator(enter)
	m.Reset()
	if m.CurrentMode() != ModeGrade1 || m.ActiveScope() != nil {
		t.Fatalf("Reset left mode=%v scope=%v", m.CurrentMode(), m.ActiveScope())
	}
}
