package ustr

import (
	"github.com/npillmayer/ustr/buffer"
	"github.com/npillmayer/ustr/codepoint"
)

// Cursor is a random-access position within a String, moving in codepoint
// steps.
//
// A cursor is bound to the buffer of its string and to the buffer's version
// at the time the cursor was created. Mutations which may move bytes
// invalidate the cursor, and any further use reports ErrStaleCursor.
// Cursors are values and may be copied freely.
//
// The zero Cursor is a null cursor. Operations on a null cursor report
// ErrIndexOutOfBounds.
type Cursor struct {
	str     *String
	buf     *buffer.Buffer
	version uint64
	pos     int // byte offset, len(text) denotes the end position
}

// Begin returns a cursor at the first codepoint of s. For a null string, a
// null cursor is returned.
func (s *String) Begin() Cursor {
	return s.cursorAtOffset(0)
}

// End returns a cursor at the terminator position of s, i.e. behind the last
// codepoint.
func (s *String) End() Cursor {
	return s.cursorAtOffset(s.Size())
}

// CursorAt returns a cursor at codepoint index i. Index Len() is valid and
// results in the same cursor as End.
func (s *String) CursorAt(i int) (Cursor, error) {
	off, err := s.storage().Offset(i)
	if err != nil {
		return Cursor{}, classify(err)
	}
	return s.cursorAtOffset(off), nil
}

func (s *String) cursorAtOffset(off int) Cursor {
	buf := s.storage()
	if buf.IsNull() {
		return Cursor{}
	}
	return Cursor{
		str:     s,
		buf:     buf,
		version: buf.Version(),
		pos:     off,
	}
}

// IsNull reports whether c is a null cursor.
func (c Cursor) IsNull() bool {
	return c.buf.IsNull()
}

// Offset returns the byte offset of c.
func (c Cursor) Offset() int {
	return c.pos
}

// Valid reports whether c may be used, i.e. is neither null nor stale.
func (c Cursor) Valid() bool {
	return c.check() == nil
}

func (c Cursor) check() error {
	if c.buf.IsNull() {
		return ErrIndexOutOfBounds
	}
	if c.str.storage() != c.buf || c.buf.Version() != c.version {
		T().Debugf("ustr: stale cursor at offset %d (version %d)", c.pos, c.version)
		return ErrStaleCursor
	}
	return nil
}

// Value decodes the codepoint at the position of c. Dereferencing the end
// position reports ErrIndexOutOfBounds.
func (c Cursor) Value() (Codepoint, error) {
	if err := c.check(); err != nil {
		return NChar, err
	}
	if c.pos >= c.buf.Len() {
		return NChar, ErrIndexOutOfBounds
	}
	r, _ := codepoint.Decode(c.buf.Bytes(), c.pos)
	return r, nil
}

// Next moves c one codepoint forward. Moving beyond the end position reports
// ErrIndexOutOfBounds and leaves c unchanged.
func (c *Cursor) Next() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.pos >= c.buf.Len() {
		return ErrIndexOutOfBounds
	}
	c.pos = codepoint.Next(c.buf.Bytes(), c.pos)
	return nil
}

// Prev moves c one codepoint backward. Moving before the first codepoint
// reports ErrIndexOutOfBounds and leaves c unchanged.
func (c *Cursor) Prev() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.pos <= 0 {
		return ErrIndexOutOfBounds
	}
	c.pos = codepoint.Prev(c.buf.Bytes(), c.pos)
	return nil
}

// Advance moves c by n codepoints, backward for negative n. Cost is linear
// in n. If the move would leave the string, c is left unchanged.
func (c *Cursor) Advance(n int) error {
	if err := c.check(); err != nil {
		return err
	}
	pos, err := codepoint.Traverse(c.buf.Bytes(), c.pos, n)
	if err != nil {
		return classify(err)
	}
	c.pos = pos
	return nil
}

// Add returns a cursor n codepoints away from c, leaving c unchanged.
func (c Cursor) Add(n int) (Cursor, error) {
	d := c
	if err := d.Advance(n); err != nil {
		return c, err
	}
	return d, nil
}

// Sub returns the signed number of codepoints from other to c. Both cursors
// must belong to the same string. Cost is linear in the distance.
func (c Cursor) Sub(other Cursor) (int, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	if err := other.check(); err != nil {
		return 0, err
	}
	if c.buf != other.buf {
		return 0, ErrIllegalArguments
	}
	d, err := codepoint.Distance(c.buf.Bytes(), other.pos, c.pos)
	return d, classify(err)
}

// At returns the codepoint n codepoints away from c.
func (c Cursor) At(n int) (Codepoint, error) {
	d, err := c.Add(n)
	if err != nil {
		return NChar, err
	}
	return d.Value()
}

// Equal reports whether c and other denote the same position of the same
// string. Cursors on different strings are never equal, even if their byte
// offsets are.
func (c Cursor) Equal(other Cursor) bool {
	return c.buf == other.buf && c.pos == other.pos
}
