package ustr

import "io"

// Reader returns a reader for the bytes of s.
//
// The reader is bound to the current content of s. Once s is modified in a
// way which moves bytes, Read reports ErrStaleCursor.
func (s *String) Reader() io.Reader {
	return &stringReader{start: s.Begin()}
}

type stringReader struct {
	start  Cursor
	cursor int
}

func (sr *stringReader) Read(p []byte) (n int, err error) {
	if sr.start.IsNull() {
		return 0, io.EOF
	}
	if err = sr.start.check(); err != nil {
		return 0, err
	}
	b := sr.start.buf.Bytes()
	if sr.cursor >= len(b) {
		return 0, io.EOF
	}
	n = copy(p, b[sr.cursor:])
	sr.cursor += n
	return n, nil
}
