package buffer

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ustr/codepoint"
)

func checkInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	if b.IsNull() {
		return
	}
	if b.Len() >= b.Cap() {
		t.Fatalf("invariant violated: len=%d cap=%d", b.Len(), b.Cap())
	}
	if term := b.Terminated(); term[len(term)-1] != 0 {
		t.Fatalf("invariant violated: missing terminator")
	}
	if n := codepoint.Count(b.Bytes()); n != b.Count() {
		t.Fatalf("invariant violated: count=%d, decoded %d codepoints", b.Count(), n)
	}
}

func TestNewBuffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("héllo"))
	checkInvariants(t, b)
	if b.Len() != 6 || b.Cap() != 7 || b.Count() != 5 {
		t.Fatalf("unexpected metrics len=%d cap=%d count=%d", b.Len(), b.Cap(), b.Count())
	}
	if string(b.Bytes()) != "héllo" {
		t.Fatalf("unexpected content %q", b.Bytes())
	}
}

func TestNewStopsAtZeroByte(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("ab\x00cd"))
	checkInvariants(t, b)
	if string(b.Bytes()) != "ab" || b.Count() != 2 {
		t.Fatalf("expected content to end at zero byte, got %q", b.Bytes())
	}
}

func TestNewCopiesInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	src := []byte("abc")
	b := New(src)
	src[0] = 'X'
	if string(b.Bytes()) != "abc" {
		t.Fatalf("buffer should not alias source bytes, got %q", b.Bytes())
	}
}

func TestNullVersusEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	null, empty := New(nil), New([]byte{})
	if !null.IsNull() || empty.IsNull() {
		t.Fatalf("expected New(nil) to be null and New([]byte{}) not to be")
	}
	if null.Len() != 0 || empty.Len() != 0 || null.Count() != 0 || empty.Count() != 0 {
		t.Fatalf("expected both buffers to be of length 0")
	}
	if null.Equal(empty) || !null.Equal(Null()) || !empty.Equal(New([]byte(""))) {
		t.Fatalf("unexpected equality of null/empty buffers")
	}
	var nilBuf *Buffer
	if !nilBuf.IsNull() || nilBuf.Len() != 0 || nilBuf.Cap() != 0 {
		t.Fatalf("nil buffer should behave like a null buffer")
	}
}

func TestFromCodepoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b, err := FromCodepoint(0x1F600)
	if err != nil {
		t.Fatalf("FromCodepoint failed: %v", err)
	}
	checkInvariants(t, b)
	if b.Len() != 4 || b.Cap() != 5 || b.Count() != 1 {
		t.Fatalf("unexpected metrics len=%d cap=%d count=%d", b.Len(), b.Cap(), b.Count())
	}
	if _, err = FromCodepoint(0x200000); !errors.Is(err, codepoint.ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
	if _, err = FromCodepoint(0); !errors.Is(err, ErrEmbeddedNull) {
		t.Fatalf("expected ErrEmbeddedNull, got %v", err)
	}
}

func TestSetEqualWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("héllo"))
	v := b.Version()
	off, err := b.Set(1, 'ö')
	if err != nil || off != 1 {
		t.Fatalf("Set failed: (%d,%v)", off, err)
	}
	checkInvariants(t, b)
	if string(b.Bytes()) != "höllo" || b.Len() != 6 {
		t.Fatalf("unexpected content %q", b.Bytes())
	}
	if b.Version() != v {
		t.Fatalf("equal-width replacement must not bump the version")
	}
}

func TestSetNarrower(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("h😀llo"))
	v := b.Version()
	if _, err := b.Set(1, 'e'); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	checkInvariants(t, b)
	if string(b.Bytes()) != "hello" || b.Len() != 5 || b.Count() != 5 {
		t.Fatalf("unexpected content %q", b.Bytes())
	}
	if b.Cap() != 9 {
		t.Fatalf("shrinking must keep capacity, cap=%d", b.Cap())
	}
	if b.Version() == v {
		t.Fatalf("narrower replacement must bump the version")
	}
}

func TestSetWiderWithinCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("héllo"))
	_, _ = b.Set(1, 'e')
	if _, err := b.Set(2, 'ß'); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	checkInvariants(t, b)
	if string(b.Bytes()) != "heßlo" {
		t.Fatalf("unexpected content %q", b.Bytes())
	}
	if b.Cap() != 7 {
		t.Fatalf("expected no reallocation, cap=%d", b.Cap())
	}
}

func TestSetWiderReallocates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("hello"))
	v := b.Version()
	off, err := b.Set(4, 0x1F600)
	if err != nil || off != 4 {
		t.Fatalf("Set failed: (%d,%v)", off, err)
	}
	checkInvariants(t, b)
	if string(b.Bytes()) != "hell😀" || b.Len() != 8 {
		t.Fatalf("unexpected content %q", b.Bytes())
	}
	if b.Cap() != 9 {
		t.Fatalf("expected exact reallocation to 9 bytes, cap=%d", b.Cap())
	}
	if b.Version() == v {
		t.Fatalf("wider replacement must bump the version")
	}
	c, err := b.CodepointAt(4)
	if err != nil || c != 0x1F600 {
		t.Fatalf("CodepointAt(4)=(%v,%v)", c, err)
	}
}

func TestSetErrorsLeaveBufferUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("abc"))
	v := b.Version()
	if _, err := b.Set(3, 'x'); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := b.Set(0, 0x200000); !errors.Is(err, codepoint.ErrUnencodable) {
		t.Fatalf("expected ErrUnencodable, got %v", err)
	}
	if _, err := b.Set(0, 0); !errors.Is(err, ErrEmbeddedNull) {
		t.Fatalf("expected ErrEmbeddedNull, got %v", err)
	}
	if string(b.Bytes()) != "abc" || b.Version() != v {
		t.Fatalf("buffer modified by failing Set: %q", b.Bytes())
	}
	if _, err := Null().Set(0, 'x'); !errors.Is(err, ErrNullBuffer) {
		t.Fatalf("expected ErrNullBuffer, got %v", err)
	}
}

func TestOffsetAndCodepointAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	b := New([]byte("a😀b"))
	for i, want := range []int{0, 1, 5, 6} {
		off, err := b.Offset(i)
		if err != nil || off != want {
			t.Fatalf("Offset(%d)=(%d,%v) want %d", i, off, err, want)
		}
	}
	if _, err := b.Offset(4); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if c, err := b.CodepointAt(3); !errors.Is(err, ErrOutOfBounds) || c != codepoint.NChar {
		t.Fatalf("expected (NChar, ErrOutOfBounds), got (%v,%v)", c, err)
	}
	if _, err := Null().CodepointAt(0); !errors.Is(err, ErrNullBuffer) {
		t.Fatalf("expected ErrNullBuffer, got %v", err)
	}
}

func TestCloneAndConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ustr")
	defer teardown()

	a := New([]byte("añ"))
	c := a.Clone()
	_, _ = a.Set(0, 'b')
	if string(c.Bytes()) != "añ" {
		t.Fatalf("clone shares storage with its source: %q", c.Bytes())
	}
	ab := Concat(c, New([]byte("😀")))
	checkInvariants(t, ab)
	if string(ab.Bytes()) != "añ😀" || ab.Count() != 3 || ab.Cap() != ab.Len()+1 {
		t.Fatalf("unexpected concatenation %q", ab.Bytes())
	}
	if !Concat(Null(), Null()).IsNull() {
		t.Fatalf("concatenation of null buffers should be null")
	}
	if n := Concat(Null(), c); n.IsNull() || string(n.Bytes()) != "añ" {
		t.Fatalf("unexpected concatenation with null operand")
	}
}
