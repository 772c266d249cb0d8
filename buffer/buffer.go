package buffer

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"

	"github.com/npillmayer/ustr/codepoint"
)

// Buffer owns a zero-terminated byte sequence of UTF-8 text.
//
// Invariants for a non-null buffer:
//
//	Len() < Cap()
//	storage[Len()] == 0
//	decoding storage[:Len()] yields exactly Count() codepoints
//
// A null buffer has no storage at all. It is different from an allocated
// buffer of length 0, although both report Len() == 0.
type Buffer struct {
	data    []byte // len(data) is the allocated capacity, terminator included
	length  int    // raw length in bytes, excluding the terminator
	count   int    // cached number of codepoints
	version uint64 // bumped whenever offsets into data may have moved
}

// Null returns a buffer without storage.
func Null() *Buffer {
	return &Buffer{}
}

// New creates a buffer holding a copy of src.
//
// The copy ends at the first zero byte of src, if any. A nil src yields a null
// buffer, whereas an empty but non-nil src yields an allocated empty buffer.
func New(src []byte) *Buffer {
	if src == nil {
		return Null()
	}
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	b := &Buffer{
		data:   make([]byte, len(src)+1),
		length: len(src),
	}
	copy(b.data, src)
	b.count = codepoint.Count(b.data[:b.length])
	return b
}

// FromCodepoint creates a buffer holding the single codepoint c, sized to fit
// exactly.
func FromCodepoint(c codepoint.Codepoint) (*Buffer, error) {
	if c == 0 {
		return nil, ErrEmbeddedNull
	}
	n := codepoint.EncodedLen(c)
	if n == 0 {
		return nil, codepoint.ErrUnencodable
	}
	b := &Buffer{
		data:   make([]byte, n+1),
		length: n,
		count:  1,
	}
	codepoint.Encode(b.data, c)
	return b, nil
}

// Concat creates a new buffer sized to hold the content of a followed by the
// content of b. Neither operand is modified. If both operands are null, the
// result is null as well.
func Concat(a, b *Buffer) *Buffer {
	if a.IsNull() && b.IsNull() {
		return Null()
	}
	n := a.Len() + b.Len()
	out := &Buffer{
		data:   make([]byte, n+1),
		length: n,
	}
	copy(out.data, a.Bytes())
	copy(out.data[a.Len():], b.Bytes())
	out.count = codepoint.Count(out.data[:n])
	return out
}

// IsNull reports whether b has no storage.
func (b *Buffer) IsNull() bool {
	return b == nil || b.data == nil
}

// Len returns the raw length in bytes, excluding the terminator.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the allocated capacity in bytes, including the terminator.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Count returns the number of codepoints.
func (b *Buffer) Count() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Version returns a counter which changes whenever a mutation may have moved
// bytes within the buffer or moved the buffer's storage.
func (b *Buffer) Version() uint64 {
	if b == nil {
		return 0
	}
	return b.version
}

// Bytes returns the content without the terminator. The slice is borrowed:
// clients must not modify it, and it is valid only until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b.IsNull() {
		return nil
	}
	return b.data[:b.length:b.length]
}

// Terminated returns the content including the zero terminator. The same
// restrictions as for Bytes apply.
func (b *Buffer) Terminated() []byte {
	if b.IsNull() {
		return nil
	}
	return b.data[: b.length+1 : b.length+1]
}

// Clone returns a copy of b with fresh storage sized to the content.
func (b *Buffer) Clone() *Buffer {
	if b.IsNull() {
		return Null()
	}
	c := &Buffer{
		data:   make([]byte, b.length+1),
		length: b.length,
		count:  b.count,
	}
	copy(c.data, b.data[:b.length])
	return c
}

// Equal compares the contents of two buffers byte by byte. Two null buffers are
// equal, a null buffer never equals a non-null one.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.IsNull() || other.IsNull() {
		return b.IsNull() && other.IsNull()
	}
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// Offset returns the byte offset of the codepoint at index, walking the text
// from the start. Index Count() is valid and denotes the terminator.
func (b *Buffer) Offset(index int) (int, error) {
	if b.IsNull() {
		return 0, ErrNullBuffer
	}
	if index < 0 || index > b.count {
		return 0, ErrOutOfBounds
	}
	return codepoint.Traverse(b.Bytes(), 0, index)
}

// CodepointAt decodes the codepoint at index.
func (b *Buffer) CodepointAt(index int) (codepoint.Codepoint, error) {
	if index >= b.Count() {
		if b.IsNull() {
			return codepoint.NChar, ErrNullBuffer
		}
		return codepoint.NChar, ErrOutOfBounds
	}
	offset, err := b.Offset(index)
	if err != nil {
		return codepoint.NChar, err
	}
	c, _ := codepoint.Decode(b.Bytes(), offset)
	return c, nil
}

// Set replaces the codepoint at index with c and returns the byte offset of
// the replaced codepoint.
//
// If c encodes to a different number of bytes than the codepoint it replaces,
// the tail of the buffer is shifted, and storage is reallocated if the
// capacity is exceeded. Either way the buffer's version is bumped. The number
// of codepoints never changes.
//
// On error the buffer is left untouched.
func (b *Buffer) Set(index int, c codepoint.Codepoint) (int, error) {
	if b.IsNull() {
		return 0, ErrNullBuffer
	}
	if index < 0 || index >= b.count {
		return 0, ErrOutOfBounds
	}
	if c == 0 {
		return 0, ErrEmbeddedNull
	}
	var scratch [codepoint.UTFMax]byte
	n := codepoint.Encode(scratch[:], c)
	if n == 0 {
		return 0, codepoint.ErrUnencodable
	}
	offset, err := b.Offset(index)
	if err != nil {
		return 0, err
	}
	_, old := codepoint.Decode(b.Bytes(), offset)
	b.replace(offset, old, scratch[:n])
	return offset, nil
}

// replace overwrites the old bytes at offset with enc. The tail, terminator
// included, moves by len(enc)-old bytes.
func (b *Buffer) replace(offset int, old int, enc []byte) {
	n := len(enc)
	switch {
	case n < old:
		copy(b.data[offset+n:], b.data[offset+old:b.length+1])
		b.length -= old - n
		b.version++
	case n > old:
		grow := n - old
		if required := b.length + grow + 1; required > len(b.data) {
			b.realloc(required)
		}
		copy(b.data[offset+n:b.length+grow+1], b.data[offset+old:b.length+1])
		b.length += grow
		b.version++
	}
	copy(b.data[offset:], enc)
}

// realloc moves the content to fresh storage of exactly size bytes.
func (b *Buffer) realloc(size int) {
	tracer().Debugf("buffer: reallocating %d → %d bytes", len(b.data), size)
	data := make([]byte, size)
	copy(data, b.data[:b.length+1])
	b.data = data
}
