package ustr

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"io"
	"iter"

	"github.com/npillmayer/ustr/buffer"
	"github.com/npillmayer/ustr/codepoint"
)

// Codepoint is a single decoded character value.
type Codepoint = codepoint.Codepoint

const (
	// NPos is returned by search operations if nothing has been found.
	NPos uint32 = 0xFFFFFFFF
	// NChar is returned for indices which do not denote a codepoint.
	NChar = codepoint.NChar
)

// String is UTF-8 text with access by codepoint index.
//
// A String created by
//
//	String{}
//
// is a valid object and behaves like a null string: it has no buffer, and it
// differs from the empty string FromString("") under IsNull only.
//
// A String exclusively owns its buffer. Copies made with Clone or Assign
// always get fresh storage.
type String struct {
	buf *buffer.Buffer
}

// Null returns a string without a buffer.
func Null() *String {
	return &String{}
}

// FromBytes creates a string from a copy of b. Text ends at the first zero
// byte in b, if any. A nil b creates a null string.
func FromBytes(b []byte) *String {
	return &String{buf: buffer.New(b)}
}

// FromCString creates a string from a zero-terminated byte sequence. Bytes
// following the first zero byte are ignored; if b carries no zero byte, all of
// it is used. A nil b creates a null string.
func FromCString(b []byte) *String {
	return FromBytes(b)
}

// FromString creates a string from a Go string.
func FromString(s string) *String {
	return &String{buf: buffer.New([]byte(s))}
}

// FromCodepoint creates a string consisting of the single codepoint c.
//
// Codepoint 0 results in ErrIllegalArguments, values beyond the encoding range
// in ErrUnencodable.
func FromCodepoint(c Codepoint) (*String, error) {
	buf, err := buffer.FromCodepoint(c)
	if err != nil {
		return nil, classify(err)
	}
	return &String{buf: buf}, nil
}

func (s *String) storage() *buffer.Buffer {
	if s == nil {
		return nil
	}
	return s.buf
}

// IsNull reports whether s has no buffer.
func (s *String) IsNull() bool {
	return s.storage().IsNull()
}

// Len returns the number of codepoints in s.
func (s *String) Len() int {
	return s.storage().Count()
}

// Size returns the number of bytes in s, excluding the terminator.
func (s *String) Size() int {
	return s.storage().Len()
}

// At returns the codepoint at index i, or NChar if i is out of range or s is
// null. At walks s from the start and costs O(i).
func (s *String) At(i int) Codepoint {
	c, err := s.storage().CodepointAt(i)
	if err != nil {
		return NChar
	}
	return c
}

// CodepointAt returns the codepoint at index i. Other than At it reports
// ErrIndexOutOfBounds for indices out of range.
func (s *String) CodepointAt(i int) (Codepoint, error) {
	c, err := s.storage().CodepointAt(i)
	return c, classify(err)
}

// Set replaces the codepoint at index i by c and returns s, to allow for
// chaining of calls.
//
// If c encodes to a different number of bytes than the codepoint it
// replaces, all cursors on s are invalidated. The number of codepoints never
// changes. On error, s is left unmodified. Null strings report
// ErrIndexOutOfBounds.
func (s *String) Set(i int, c Codepoint) (*String, error) {
	if s == nil {
		return s, ErrIndexOutOfBounds
	}
	if _, err := s.buf.Set(i, c); err != nil {
		T().Debugf("ustr: set [%d] = %v failed: %v", i, c, err)
		return s, classify(err)
	}
	return s, nil
}

// Bytes returns the bytes of s, excluding the terminator. The slice is
// borrowed: it must not be modified and is valid until the next mutation of s
// only. A null string returns nil.
func (s *String) Bytes() []byte {
	return s.storage().Bytes()
}

// CString returns the bytes of s including the zero terminator, with the same
// restrictions as Bytes.
func (s *String) CString() []byte {
	return s.storage().Terminated()
}

// String returns the text of s as a Go string. A null string returns "".
func (s *String) String() string {
	return string(s.Bytes())
}

// Clone returns a copy of s with its own storage.
func (s *String) Clone() *String {
	return &String{buf: s.storage().Clone()}
}

// Assign replaces the content of s by a copy of src. All cursors on s are
// invalidated.
func (s *String) Assign(src *String) *String {
	s.buf = src.storage().Clone()
	return s
}

// Equal compares two strings byte by byte. Two null strings are equal, a null
// string never equals a non-null one.
func (s *String) Equal(other *String) bool {
	return s.storage().Equal(other.storage())
}

// EqualBytes compares s to a raw byte sequence. b is considered up to its
// first zero byte. A nil b equals null strings only.
func (s *String) EqualBytes(b []byte) bool {
	if b == nil || s.IsNull() {
		return b == nil && s.IsNull()
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return bytes.Equal(s.Bytes(), b)
}

// Concat returns a new string holding the text of a followed by the text of b.
// Neither operand is modified. Concatenating two null strings results in a
// null string.
func Concat(a, b *String) *String {
	return &String{buf: buffer.Concat(a.storage(), b.storage())}
}

// WriteTo writes the bytes of s to w. Writing a null string produces no
// output. WriteTo implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	if s.IsNull() {
		return 0, nil
	}
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// Find returns the index of the first occurrence of c at or after index from,
// or NPos if c does not occur.
func (s *String) Find(c Codepoint, from int) uint32 {
	if from < 0 || codepoint.EncodedLen(c) == 0 {
		return NPos
	}
	for i, x := range s.Codepoints() {
		if i >= from && x == c {
			return uint32(i)
		}
	}
	return NPos
}

// Codepoints returns an iterator over all codepoints of s, together with
// their indices.
func (s *String) Codepoints() iter.Seq2[int, Codepoint] {
	return func(yield func(int, Codepoint) bool) {
		b := s.Bytes()
		for i, pos := 0, 0; pos < len(b); i++ {
			c, n := codepoint.Decode(b, pos)
			if !yield(i, c) {
				return
			}
			pos += n
		}
	}
}

// Backward returns an iterator over all codepoints of s in reverse order,
// together with their indices.
func (s *String) Backward() iter.Seq2[int, Codepoint] {
	return func(yield func(int, Codepoint) bool) {
		b := s.Bytes()
		for i, pos := s.Len()-1, len(b); pos > 0; i-- {
			pos = codepoint.Prev(b, pos)
			c, _ := codepoint.Decode(b, pos)
			if !yield(i, c) {
				return
			}
		}
	}
}
