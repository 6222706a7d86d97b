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

// Command braillesim is a terminal demo of the braille chord engine.
// It puts the controlling terminal into raw mode and maps the home
// row keys f d s j k l, plus space, onto the six braille dots and the
// space chord (spec.md §6), so a sighted developer can drive the
// engine from an ordinary keyboard without Perkins-style hardware.
// Every letter it emits is followed by its legacy Braille ASCII byte
// in brackets, exercising the engine's embosser fallback path.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	braille "github.com/perkins-io/braillechord"
)

// rawStdin puts stdin into raw mode for the demo's duration. It
// carries only start and stop; main reads os.Stdin directly --
// no /dev/tty reopen dance, no resize notifications, no
// window-size query -- unlike a general-purpose terminal abstraction
// meant to back a screen library.
type rawStdin struct {
	fd    int
	saved *term.State
}

func (r *rawStdin) start() error {
	r.fd = int(os.Stdin.Fd())
	if !term.IsTerminal(r.fd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	saved, err := term.MakeRaw(r.fd)
	if err != nil {
		return err
	}
	r.saved = saved
	return nil
}

func (r *rawStdin) stop() error {
	if r.saved == nil {
		return nil
	}
	return term.Restore(r.fd, r.saved)
}

// keyToDot maps a raw input byte to a dot number. Left hand keys are
// dots 1-3 (top to bottom), right hand keys are dots 4-6.
var keyToDot = map[byte]int{
	'f': 1, 'd': 2, 's': 3,
	'j': 4, 'k': 5, 'l': 6,
	' ': 0,
}

// demoTables builds a tiny grade-1 alphabet (a-j, the first ten UEB
// letters, which reuse dots 1-2-4-5 the way digits 1-0 do under a
// numeric indicator) so the demo is usable without a real profile
// loader, which is out of scope (spec.md §1's Non-goals).
func demoTables() *braille.Tables {
	letters := []struct {
		id, print string
		dots      string
	}{
		{"a", "a", "1"}, {"b", "b", "12"}, {"c", "c", "14"},
		{"d", "d", "145"}, {"e", "e", "15"}, {"f", "f", "124"},
		{"g", "g", "1245"}, {"h", "h", "125"}, {"i", "i", "24"},
		{"j", "j", "245"},
	}
	var entries []braille.RawEntry
	for _, l := range letters {
		print := l.print
		entries = append(entries, braille.RawEntry{
			Category: "alphabet",
			Role:     "letter",
			Print:    &print,
			Dots:     []string{l.dots},
			ID:       l.id,
		})
	}
	profiles := map[string][]braille.ProfileRecord{
		"demo": {{SystemID: "demo", BrailleType: "grade1", Entries: entries}},
	}
	return braille.Unify(profiles)
}

func main() {
	tty := &rawStdin{}
	if err := tty.start(); err != nil {
		fmt.Fprintln(os.Stderr, "braillesim:", err)
		os.Exit(1)
	}
	defer func() { _ = tty.stop() }()

	cfg := braille.DefaultConfig()
	eng := braille.NewEngine(demoTables(), cfg, nil)
	eng.SetEmitCallback(func(printText, dotKey string) error {
		// In raw mode \n alone does not return the cursor; emit \r\n.
		if printText == "\n" {
			fmt.Fprint(os.Stdout, "\r\n")
			return nil
		}
		fmt.Fprint(os.Stdout, printText)
		if b, ok := eng.EncodeLegacy(dotKey); ok {
			fmt.Fprintf(os.Stdout, "[%#02x]", b)
		}
		return nil
	})
	eng.SetModeChangeCallback(func(old, newMode braille.Mode, reason braille.ModeChangeReason) {
		fmt.Fprintf(os.Stdout, "\r\n[mode: %s -> %s]\r\n", old, newMode)
	})

	fmt.Fprint(os.Stdout, "braillesim: f d s / j k l = dots 1-3 / 4-6, space = space chord, q to quit\r\n")

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		b := buf[0]
		if b == 'q' || b == 0x03 { // q or Ctrl-C
			return
		}
		if dot, ok := keyToDot[b]; ok {
			eng.Press(dot)
			continue
		}
		if b == '\r' || b == '\n' {
			eng.Flush()
			eng.AdvanceLine()
			fmt.Fprint(os.Stdout, "\r\n")
		}
	}
}
