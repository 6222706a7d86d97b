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
	"sync"
	"time"
)

// DefaultChordTimeout is the quiescence delay used when an Aggregator
// is created without an explicit timeout.
const DefaultChordTimeout = 50 * time.Millisecond

// ChordCallback receives the full set of dots that closed one chord.
// For Press (space) and Flush it runs on the caller's own goroutine;
// for timer expiry it runs on the goroutine that time.AfterFunc starts
// for that expiry.
type ChordCallback func(dots []int)

// Aggregator groups simultaneous dot presses into a single chord,
// delivering it to a callback once the keyboard goes quiet for the
// configured timeout (trailing-edge aggregation), or immediately when
// Flush is called.
//
// This mirrors tcell's inputParser: a mutex-guarded pending state
// struct plus a single rearm-on-every-event timer, rather than a
// goroutine or channel per chord.
type Aggregator struct {
	l        sync.Mutex
	pending  map[int]struct{}
	timer    *time.Timer
	timeout  time.Duration
	callback ChordCallback
}

// NewAggregator creates an Aggregator with the default quiescence
// timeout. cb is invoked once per closed chord.
func NewAggregator(cb ChordCallback) *Aggregator {
	return &Aggregator{
		pending:  make(map[int]struct{}),
		timeout:  DefaultChordTimeout,
		callback: cb,
	}
}

// SetTimeout changes the quiescence duration. It takes effect starting
// with the next Press.
func (a *Aggregator) SetTimeout(d time.Duration) {
	a.l.Lock()
	defer a.l.Unlock()
	a.timeout = d
}

// Press records one dot press. Dot 0 (space) first commits any
// pending non-empty chord, then delivers a separate {0} chord of its
// own. Any other dot is added to the pending set (repeated presses of
// the same dot within one chord are idempotent) and (re)arms the
// quiescence timer.
func (a *Aggregator) Press(dot int) {
	a.l.Lock()
	if dot == 0 {
		a.commitLocked()
		a.stopTimerLocked()
		a.l.Unlock()
		a.callback([]int{0})
		return
	}
	a.pending[dot] = struct{}{}
	a.rearmLocked()
	a.l.Unlock()
}

// Flush commits the pending chord immediately, if any, and cancels
// the timer. It is a no-op when the pending chord is empty.
func (a *Aggregator) Flush() {
	a.l.Lock()
	defer a.l.Unlock()
	a.stopTimerLocked()
	a.commitLocked()
}

// Cancel discards the pending chord and the timer without invoking
// the callback.
func (a *Aggregator) Cancel() {
	a.l.Lock()
	defer a.l.Unlock()
	a.stopTimerLocked()
	a.clearLocked()
}

// rearmLocked cancels any outstanding timer and schedules a new
// one-shot timer for the current timeout. Callers must hold a.l.
func (a *Aggregator) rearmLocked() {
	a.stopTimerLocked()
	a.timer = time.AfterFunc(a.timeout, a.onExpire)
}

func (a *Aggregator) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Aggregator) onExpire() {
	a.l.Lock()
	dots, ok := a.takeLocked()
	a.timer = nil
	a.l.Unlock()
	if ok {
		a.callback(dots)
	}
}

// commitLocked delivers the pending chord synchronously, if non-empty.
// Callers must hold a.l, and it is released and reacquired around the
// callback so the callback may itself call back into the aggregator.
func (a *Aggregator) commitLocked() {
	dots, ok := a.takeLocked()
	if !ok {
		return
	}
	a.l.Unlock()
	a.callback(dots)
	a.l.Lock()
}

// takeLocked returns the pending dots (sorted is not required here;
// downstream canonicalisation sorts) and clears pending state. Callers
// must hold a.l.
func (a *Aggregator) takeLocked() ([]int, bool) {
	if len(a.pending) == 0 {
		return nil, false
	}
	dots := make([]int, 0, len(a.pending))
	for d := range a.pending {
		dots = append(dots, d)
	}
	a.clearLocked()
	return dots, true
}

func (a *Aggregator) clearLocked() {
	a.pending = make(map[int]struct{})
}
