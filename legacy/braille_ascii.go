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

// Package legacy provides the North American Braille ASCII encoding,
// the single-byte-per-cell wire format some embossers and refreshable
// displays expect in place of Unicode braille patterns (spec.md
// §4.6's "legacy embosser fallback encoding"). It follows the same
// Encoding-interface shape tcell's encoding package uses for terminal
// charsets: a dot bitmask maps to one printable ASCII byte, 0x20-0x5F.
package legacy

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// asciiTable is the standard North American Braille ASCII assignment:
// character at string index N is the byte for dot bitmask N (bit 0 is
// dot 1, ... bit 5 is dot 6). It is a bijection over the 64 cells.
const asciiTable = " A1B'K2L@CIF/MSP\"E3H9O6R^DJG>NTQ,*5<-U8V.%[$+X!&;:4\\0Z7(_?W]#Y)="

var asciiByMask = [64]byte(([]byte)(asciiTable))

var maskByASCII = func() map[byte]int {
	m := make(map[byte]int, len(asciiByMask))
	for mask, b := range asciiByMask {
		if _, exists := m[b]; !exists {
			m[b] = mask
		}
	}
	return m
}()

// MaskFromDots converts a dot-number slice (1-6, as CanonicalKey
// takes) to a bitmask. Unknown dot numbers (0, or >6) are ignored.
func MaskFromDots(dots []int) int {
	mask := 0
	for _, d := range dots {
		if d >= 1 && d <= 6 {
			mask |= 1 << uint(d-1)
		}
	}
	return mask
}

// EncodeMask returns the Braille ASCII byte for a dot bitmask (0-63).
// ok is false if mask is out of range.
func EncodeMask(mask int) (byte, bool) {
	if mask < 0 || mask > 63 {
		return 0, false
	}
	return asciiByMask[mask], true
}

// DecodeByte returns the dot bitmask for a Braille ASCII byte. ok is
// false if b is not one of the assigned bytes.
func DecodeByte(b byte) (int, bool) {
	mask, ok := maskByASCII[b]
	return mask, ok
}

// brailleASCIIEncoding implements golang.org/x/text/encoding.Encoding over
// the North American Braille ASCII table, mirroring the Encoding
// values tcell registers in its encoding package for terminal
// charsets.
type brailleASCIIEncoding struct{}

// BrailleASCII is the shared Encoding value for the North American
// Braille ASCII table.
var BrailleASCII encoding.Encoding = brailleASCIIEncoding{}

func (brailleASCIIEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiDecoder{}}
}

func (brailleASCIIEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiEncoder{}}
}

const brailleBase = rune(0x2800)

// asciiDecoder converts Braille ASCII bytes to Unicode braille
// pattern runes, one cell at a time.
type asciiDecoder struct{ transform.NopResetter }

func (asciiDecoder) Transform(dst, src []byte, atEOF bool) (ndst, nsrc int, err error) {
	for _, b := range src {
		mask, ok := maskByASCII[b]
		if !ok {
			mask, _ = maskByASCII[0x20] // substitute space cell for unmapped bytes
		}
		r := brailleBase + rune(mask)
		l := utf8.RuneLen(r)
		if ndst+l > len(dst) {
			err = transform.ErrShortDst
			break
		}
		utf8.EncodeRune(dst[ndst:], r)
		ndst += l
		nsrc++
	}
	return
}

// asciiEncoder converts Unicode braille pattern runes to Braille
// ASCII bytes, one cell at a time. Non-braille runes are substituted
// with the ASCII space cell.
type asciiEncoder struct{ transform.NopResetter }

func (asciiEncoder) Transform(dst, src []byte, atEOF bool) (ndst, nsrc int, err error) {
	for nsrc < len(src) {
		if ndst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		r, sz := utf8.DecodeRune(src[nsrc:])
		if r == utf8.RuneError && sz == 1 {
			if !atEOF && !utf8.FullRune(src[nsrc:]) {
				err = transform.ErrShortSrc
				break
			}
		}

		mask := int(r - brailleBase)
		b, ok := EncodeMask(mask)
		if !ok {
			b = 0x20
		}
		dst[ndst] = b
		nsrc += sz
		ndst++
	}
	return
}
