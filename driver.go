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

	"go.uber.org/zap"

	"github.com/perkins-io/braillechord/legacy"
)

// EmitFunc delivers one emitted character (or space, with dotKey
// "") to the host. A non-nil return means the host had nowhere to
// put it (spec.md §7's EmissionFailed); the engine logs it and moves
// on without retrying.
type EmitFunc func(printText, dotKey string) error

// Engine is the Pipeline Driver: it owns the Chord Aggregator, both
// matchers, the Mode State Machine, the Overlay Tracker, and the
// driver-scoped flags (numericMode, kanaBracketOpen), and implements
// the four-step ordering law from spec.md §4.6.
//
// Per Design Note §9, these flags are fields of the Engine value, not
// process-wide globals, so multiple Engine instances -- one per host
// editor -- coexist safely. An Engine must not be driven from more
// than one goroutine concurrently (spec.md §5).
type Engine struct {
	tables     *Tables
	indicator  *IndicatorMatcher
	multiCell  *MultiCellMatcher
	mode       *ModeMachine
	overlay    *OverlayTracker
	aggregator *Aggregator

	numericMode     bool
	kanaBracketOpen bool

	line, col int

	cfg    Config
	logger *zap.Logger

	onEmit       EmitFunc
	onModeChange ModeChangeFunc
}

// NewEngine wires an Engine over already-unified tables. A nil logger
// is replaced with a no-op logger, matching spec.md's "no fatal
// kinds" stance: the engine runs correctly with zero observability.
func NewEngine(tables *Tables, cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = nopLogger()
	}
	if cfg.ChordTimeout <= 0 {
		cfg.ChordTimeout = DefaultChordTimeout
	}

	e := &Engine{
		tables:  tables,
		mode:    NewModeMachine(),
		overlay: NewOverlayTracker(),
		cfg:     cfg,
		logger:  logger,
	}
	e.mode.ForceMode(cfg.InitialMode)
	e.mode.SetModeChangeCallback(e.handleModeChange)
	e.indicator = NewIndicatorMatcher(tables.Indicators)
	e.multiCell = NewMultiCellMatcher(tables.MultiCell)
	e.aggregator = NewAggregator(e.handleChord)
	e.aggregator.SetTimeout(cfg.ChordTimeout)

	if tables.Stats.Discarded > 0 {
		logger.Debug("profile entries discarded during unification",
			zap.Int("count", tables.Stats.Discarded))
	}
	return e
}

// SetEmitCallback registers the function the engine calls with
// (print_text, dot_key) on every emission.
func (e *Engine) SetEmitCallback(fn EmitFunc) { e.onEmit = fn }

// SetModeChangeCallback registers the function the engine calls with
// (oldMode, newMode, indicator-or-auto) on every mode transition.
func (e *Engine) SetModeChangeCallback(fn ModeChangeFunc) { e.onModeChange = fn }

// Overlay returns the engine's overlay tracker.
func (e *Engine) Overlay() *OverlayTracker { return e.overlay }

// CurrentMode returns the active braille system.
func (e *Engine) CurrentMode() Mode { return e.mode.CurrentMode() }

// Press feeds one dot press into the Chord Aggregator. This is the
// engine's sole externally driven entry point besides the aggregator's
// own quiescence timer.
func (e *Engine) Press(dot int) { e.aggregator.Press(dot) }

// DotInput is an alias for Press, matching the thin host command
// named in spec.md §6.
func (e *Engine) DotInput(dot int) { e.Press(dot) }

// Flush forces immediate delivery of any pending chord.
func (e *Engine) Flush() { e.aggregator.Flush() }

// Cancel discards the pending chord without emission.
func (e *Engine) Cancel() { e.aggregator.Cancel() }

// ToggleMode is a thin host command that force-switches between
// ModeGrade1 and ModeGrade2, bypassing indicator processing. It is
// not part of the core contract (spec.md §6).
func (e *Engine) ToggleMode() {
	if e.mode.CurrentMode() == ModeGrade1 {
		e.mode.ForceMode(ModeGrade2)
	} else {
		e.mode.ForceMode(ModeGrade1)
	}
}

// ToggleOverlay flips the host-facing overlay-visible flag. The
// engine does not act on it directly; it is surfaced for the host.
func (e *Engine) ToggleOverlay() {
	e.cfg.ShowBrailleOverlay = !e.cfg.ShowBrailleOverlay
}

// ShowOverlay reports the current overlay-visible flag.
func (e *Engine) ShowOverlay() bool { return e.cfg.ShowBrailleOverlay }

// AdvanceLine moves the driver's internal overlay cursor to the start
// of the next line. Cursor tracking proper belongs to the host editor
// (out of scope per spec.md §1); this only keeps the Overlay
// Tracker's per-line records addressed correctly as the host's own
// cursor moves to a new row.
func (e *Engine) AdvanceLine() {
	e.line++
	e.col = 0
}

// Deactivate resets the matchers, the overlay tracker, and the
// driver-scoped flags, per spec.md §3's matcher/overlay lifecycles.
// The mode machine is left untouched; call Reset on it separately if
// a full reset is desired.
func (e *Engine) Deactivate() {
	e.indicator.Reset()
	e.multiCell.Reset()
	e.overlay.Clear()
	e.numericMode = false
	e.kanaBracketOpen = false
	e.line, e.col = 0, 0
}

// handleChord is the Chord Aggregator's callback: it is invoked with
// the full dot set of one closed chord.
func (e *Engine) handleChord(dots []int) {
	isSpace := false
	for _, d := range dots {
		if d == 0 {
			isSpace = true
			break
		}
	}
	if isSpace {
		e.handleSpace()
		return
	}
	e.stepMultiCell(CanonicalKey(dots))
}

// handleSpace implements the space-chord rule from spec.md §4.6:
// flush pending matcher state through the remaining pipeline stages,
// then emit the space itself.
func (e *Engine) handleSpace() {
	for _, k := range e.multiCell.flushPending() {
		e.stepIndicator(k)
	}
	for _, k := range e.indicator.flushPending() {
		e.emitSingleCell(k)
	}
	e.emit(" ", "")
	e.mode.OnSpace()
	e.numericMode = false
}

// stepMultiCell implements ordering-law step 2.
func (e *Engine) stepMultiCell(k string) {
	outcome, entry, leftover := e.multiCell.Step(k, e.mode.CurrentMode())
	switch outcome {
	case OutcomePending:
		return
	case OutcomeMatched:
		e.emitMultiCell(entry)
	case OutcomeMatchedWithLeftover:
		e.emitMultiCell(entry)
		for _, lk := range leftover {
			e.stepIndicator(lk)
		}
	case OutcomeNone:
		for _, lk := range leftover {
			e.stepIndicator(lk)
		}
	}
}

// stepIndicator implements ordering-law step 3.
func (e *Engine) stepIndicator(k string) {
	outcome, ind, leftover := e.indicator.Step(k)
	switch outcome {
	case OutcomePending:
		return
	case OutcomeMatched:
		e.applyIndicator(ind)
	case OutcomeMatchedWithLeftover:
		e.applyIndicator(ind)
		for _, lk := range leftover {
			e.emitSingleCell(lk)
		}
	case OutcomeNone:
		for _, lk := range leftover {
			e.emitSingleCell(lk)
		}
	}
}

func (e *Engine) applyIndicator(ind *IndicatorDefinition) {
	e.mode.ProcessIndicator(ind)
	if ind.Modifier == ModifierNumeric {
		e.numericMode = true
	}
	e.logger.Debug("indicator matched", zap.String("id", ind.ID))
}

func (e *Engine) emitMultiCell(entry *MultiCellEntry) {
	e.emit(entry.Print, entry.DotsKey)
	e.afterEmission(false)
}

// emitSingleCell implements ordering-law step 4.
func (e *Engine) emitSingleCell(k string) {
	modifier := e.mode.ConsumeModifier()

	if e.numericMode || modifier == ModifierNumeric {
		if mapping, ok := e.tables.Numeric[k]; ok {
			e.emit(mapping.Print, k)
			e.afterEmission(true)
			return
		}
		e.numericMode = false
	}

	text := e.lookupSingleCell(k)
	if modifier == ModifierCapital {
		text = strings.ToUpper(text)
	}
	if e.mode.CurrentMode() == ModeKana && k == "36" {
		text = e.toggleKanaBracket()
	}
	e.emit(text, k)
	e.afterEmission(false)
}

// lookupSingleCell resolves a dot key to print text for the current
// mode, falling back to ModeGrade1 and then to the literal Unicode
// braille glyph.
func (e *Engine) lookupSingleCell(k string) string {
	if entry, ok := e.tables.SingleCell[k]; ok {
		if m, ok := entry.Mappings[e.mode.CurrentMode()]; ok {
			return m.Print
		}
		if m, ok := entry.Mappings[ModeGrade1]; ok {
			return m.Print
		}
	}
	return string(DotsKeyToUnicode(k))
}

// EncodeLegacy converts a single-cell dot key to its North American
// Braille ASCII byte, for hosts driving an embosser or refreshable
// display that cannot accept Unicode braille patterns directly. It is
// additive: the normal Unicode emission path above never consults it,
// and a host that never calls it pays nothing for the legacy package.
// ok is false if dotKey encodes no valid cell (e.g. a multi-cell key
// joined with "|", which has no single-byte representation).
func (e *Engine) EncodeLegacy(dotKey string) (b byte, ok bool) {
	if strings.Contains(dotKey, "|") {
		return 0, false
	}
	dots := make([]int, 0, len(dotKey))
	for _, c := range dotKey {
		if c < '1' || c > '6' {
			return 0, false
		}
		dots = append(dots, int(c-'0'))
	}
	return legacy.EncodeMask(legacy.MaskFromDots(dots))
}

// toggleKanaBracket alternates Japanese corner brackets on successive
// occurrences of dot key "36" in kana mode. State is engine-scoped and
// reset by Deactivate.
func (e *Engine) toggleKanaBracket() string {
	if e.kanaBracketOpen {
		e.kanaBracketOpen = false
		return "」"
	}
	e.kanaBracketOpen = true
	return "「"
}

// afterEmission applies the bookkeeping common to every emission path
// (multi-cell, numeric single-cell, normal single-cell): the mode
// machine's symbol-scope auto-return counter advances, and numericMode
// clears unless this character was emitted via the numeric table.
func (e *Engine) afterEmission(viaNumeric bool) {
	e.mode.OnCharacterEmitted()
	if !viaNumeric {
		e.numericMode = false
	}
}

// emit records the dot key in the overlay tracker at the driver's
// current (line, col), advances col, and delivers the character to
// the host, logging (but not retrying) a failed delivery.
func (e *Engine) emit(text, dotKey string) {
	if dotKey == "" {
		e.overlay.RecordSpace(e.line, e.col)
	} else {
		e.overlay.Record(e.line, e.col, dotKey)
	}
	e.col++

	if e.onEmit == nil {
		return
	}
	if err := e.onEmit(text, dotKey); err != nil {
		ef := &EmissionFailed{PrintText: text, DotKey: dotKey, Cause: err}
		e.logger.Warn("emission failed", zap.String("print", text), zap.Error(ef))
	}
}

func (e *Engine) handleModeChange(old, newMode Mode, reason ModeChangeReason) {
	e.logger.Debug("mode change",
		zap.Stringer("old", old), zap.Stringer("new", newMode))
	if e.onModeChange != nil {
		e.onModeChange(old, newMode, reason)
	}
}
