package codepoint

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"unicode/utf8"
)

// Codepoint is a single decoded character value.
//
// The encoding scheme covers 0 … MaxEncodable, of which only 0 … MaxUnicode
// are Unicode scalar values. The encoder does not enforce the tighter bound.
// Conversions to other character types are explicit, see Rune and Narrow.
type Codepoint uint32

const (
	// MaxUnicode is the largest Unicode scalar value.
	MaxUnicode Codepoint = 0x10FFFF
	// MaxEncodable is the largest value representable in a 4-byte sequence.
	MaxEncodable Codepoint = 0x1FFFFF
	// NChar is the reserved "no character" value.
	NChar Codepoint = 0xFFFFFFFF
	// UTFMax is the maximum number of bytes of an encoded codepoint.
	UTFMax = 4
)

// Rune returns c as a Go rune. Values which are not Unicode scalar values are
// mapped to utf8.RuneError.
func (c Codepoint) Rune() rune {
	if !c.IsUnicode() {
		return utf8.RuneError
	}
	return rune(c)
}

// Narrow returns the low byte of c, i.e. c truncated to a narrow character.
func (c Codepoint) Narrow() byte {
	return byte(c)
}

// IsUnicode reports whether c is a Unicode scalar value.
func (c Codepoint) IsUnicode() bool {
	return c <= MaxUnicode && utf8.ValidRune(rune(c))
}

func (c Codepoint) String() string {
	if c == NChar {
		return "NChar"
	}
	return fmt.Sprintf("U+%04X", uint32(c))
}

// --- Byte classification ---------------------------------------------------

// IsContinuation reports whether b has the bit pattern 10xxxxxx.
func IsContinuation(b byte) bool {
	return b&0xc0 == 0x80
}

// SequenceLen returns the length of an encoded sequence from its lead byte.
//
// Any byte which is neither ASCII nor a 2- or 3-byte lead counts as a 4-byte
// lead, including continuation bytes and the invalid bytes 0xf8 … 0xff.
func SequenceLen(lead byte) int {
	switch {
	case lead&0x80 == 0:
		return 1
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	}
	return 4
}

// --- Decoding and encoding -------------------------------------------------

// Decode decodes the codepoint starting at byte offset pos of b and returns it
// together with its length in bytes.
//
// Continuation bytes are not checked. Bytes missing at the end of b read as
// zero, and the length returned is clipped to the bytes available. For pos
// outside of [0, len(b)) Decode returns (0, 0).
func Decode(b []byte, pos int) (Codepoint, int) {
	if pos < 0 || pos >= len(b) {
		return 0, 0
	}
	n := SequenceLen(b[pos])
	var c Codepoint
	switch n {
	case 1:
		return Codepoint(b[pos]), 1
	case 2:
		c = Codepoint(b[pos] & 0x1f)
	case 3:
		c = Codepoint(b[pos] & 0x0f)
	default:
		c = Codepoint(b[pos] & 0x07)
	}
	for i := 1; i < n; i++ {
		c <<= 6
		if pos+i < len(b) {
			c |= Codepoint(b[pos+i] & 0x3f)
		}
	}
	return c, min(n, len(b)-pos)
}

// EncodedLen returns the number of bytes needed to encode c, or 0 if c is
// larger than MaxEncodable.
func EncodedLen(c Codepoint) int {
	switch {
	case c < 0x80:
		return 1
	case c < 0x800:
		return 2
	case c < 0x10000:
		return 3
	case c <= MaxEncodable:
		return 4
	}
	return 0
}

// Encode writes the encoding of c to dst and returns the number of bytes
// written. If c cannot be encoded or dst is too short, nothing is written and
// Encode returns 0.
func Encode(dst []byte, c Codepoint) int {
	n := EncodedLen(c)
	if n == 0 || len(dst) < n {
		return 0
	}
	switch n {
	case 1:
		dst[0] = byte(c)
	case 2:
		dst[0] = 0xc0 | byte(c>>6)
		dst[1] = 0x80 | byte(c&0x3f)
	case 3:
		dst[0] = 0xe0 | byte(c>>12)
		dst[1] = 0x80 | byte((c>>6)&0x3f)
		dst[2] = 0x80 | byte(c&0x3f)
	default:
		dst[0] = 0xf0 | byte(c>>18)
		dst[1] = 0x80 | byte((c>>12)&0x3f)
		dst[2] = 0x80 | byte((c>>6)&0x3f)
		dst[3] = 0x80 | byte(c&0x3f)
	}
	return n
}

// Append appends the encoding of c to dst. Unencodable values leave dst as is.
func Append(dst []byte, c Codepoint) []byte {
	var scratch [UTFMax]byte
	n := Encode(scratch[:], c)
	return append(dst, scratch[:n]...)
}

// --- Navigation ------------------------------------------------------------

// Next returns the offset of the codepoint following the one at pos.
// It never returns a value greater than len(b).
func Next(b []byte, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos >= len(b) {
		return len(b)
	}
	_, n := Decode(b, pos)
	return pos + n
}

// Prev returns the offset of the codepoint preceding pos. It scans backwards
// for the first byte which is not a continuation byte and never returns a
// value less than 0.
func Prev(b []byte, pos int) int {
	if pos > len(b) {
		pos = len(b)
	}
	for pos > 0 {
		pos--
		if !IsContinuation(b[pos]) {
			return pos
		}
	}
	return 0
}

// Traverse steps |delta| codepoints from pos, forward for positive delta and
// backward for negative delta. Cost is linear in delta.
//
// If the walk would leave [0, len(b)], Traverse returns pos unchanged together
// with ErrOutOfBounds.
func Traverse(b []byte, pos int, delta int) (int, error) {
	if pos < 0 || pos > len(b) {
		return pos, ErrOutOfBounds
	}
	p := pos
	for ; delta > 0; delta-- {
		if p >= len(b) {
			return pos, ErrOutOfBounds
		}
		p = Next(b, p)
	}
	for ; delta < 0; delta++ {
		if p <= 0 {
			return pos, ErrOutOfBounds
		}
		p = Prev(b, p)
	}
	return p, nil
}

// Distance returns the signed number of codepoints between from and to. It is
// positive if to lies behind from. Distance steps codepoint by codepoint, as
// variable-width encoding does not allow for byte arithmetic.
//
// If stepping from from does not hit to exactly, to is not a codepoint
// boundary reachable from from and Distance returns ErrNotCharBoundary.
func Distance(b []byte, from, to int) (int, error) {
	if from < 0 || from > len(b) || to < 0 || to > len(b) {
		return 0, ErrOutOfBounds
	}
	d, pos := 0, from
	if to > from {
		for pos < to {
			pos = Next(b, pos)
			d++
		}
	} else {
		for pos > to {
			pos = Prev(b, pos)
			d--
		}
	}
	if pos != to {
		return 0, ErrNotCharBoundary
	}
	return d, nil
}

// Count returns the number of codepoints in b.
func Count(b []byte) int {
	n := 0
	for pos := 0; pos < len(b); pos = Next(b, pos) {
		n++
	}
	return n
}
