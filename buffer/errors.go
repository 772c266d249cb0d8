package buffer

import "errors"

var (
	// ErrNullBuffer signals an operation on a buffer without storage.
	ErrNullBuffer = errors.New("buffer: buffer is null")
	// ErrOutOfBounds signals a codepoint index beyond the buffer's content.
	ErrOutOfBounds = errors.New("buffer: index out of bounds")
	// ErrEmbeddedNull signals an attempt to store codepoint 0, which would
	// terminate the text prematurely.
	ErrEmbeddedNull = errors.New("buffer: cannot store codepoint 0")
)
