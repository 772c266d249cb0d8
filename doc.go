/*
Package ustr offers a UTF-8 string type with random access by codepoint.

Strings

A String holds UTF-8 encoded text in a single zero-terminated buffer and lets
clients treat it like an array of codepoints:

	s := ustr.FromString("héllo")
	s.Len()   // 5 codepoints
	s.Size()  // 6 bytes
	s.At(1)   // U+00E9
	s.Set(1, 'e')

Codepoints are encoded with variable width, so indexing is not a matter of
byte arithmetic. Accessing codepoint i walks the text from the start, which
costs O(i). Replacing a codepoint by one of a different width moves the tail
of the text and may reallocate the buffer.

	Operation     |   String
	--------------+-----------
	Len, Size     |   O(1)
	At, Set       |   O(i)
	Concat        |   O(n+m)
	Cursor step   |   O(1)
	Cursor ±k     |   O(k)

Cursors

A Cursor is a random-access position within a String. Cursors are bound to
the buffer of the string they were created from and to its version. Any
mutation which may move bytes, i.e. replacing a codepoint with one of a
different encoded width or assigning new content, invalidates all
outstanding cursors. Using an invalidated cursor results in ErrStaleCursor.

Errors

Malformed UTF-8 is not detected; it decodes to some unspecified codepoint
value. All other misuse is reported as an error of type StrError. For
compatibility with C-style APIs, At returns the sentinel NChar instead of an
error, with CodepointAt as its error-reporting twin.

Strings are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ustr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ustr/buffer"
	"github.com/npillmayer/ustr/codepoint"
)

// T traces with key 'ustr'.
func T() tracing.Trace {
	return tracing.Select("ustr")
}

// StrError is an error type for the ustr module
type StrError string

func (e StrError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a codepoint index or a cursor
// position lies outside of a string, or the string is null.
const ErrIndexOutOfBounds = StrError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StrError("illegal arguments")

// ErrIllegalPosition is flagged whenever a byte position is not located at
// the start of a codepoint.
const ErrIllegalPosition = StrError("illegal position")

// ErrStaleCursor is flagged whenever a cursor is used after its string has
// been modified in a way which may have moved bytes.
const ErrStaleCursor = StrError("stale cursor; string has been modified")

// ErrUnencodable is flagged for codepoints beyond the 4-byte encoding range.
const ErrUnencodable = StrError("codepoint too large to encode")

// classify maps errors of the buffer and codepoint packages onto the error
// kinds of this package. The original error stays in the chain.
func classify(err error) error {
	var kind StrError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, codepoint.ErrUnencodable):
		kind = ErrUnencodable
	case errors.Is(err, codepoint.ErrNotCharBoundary):
		kind = ErrIllegalPosition
	case errors.Is(err, buffer.ErrEmbeddedNull):
		kind = ErrIllegalArguments
	case errors.Is(err, buffer.ErrOutOfBounds),
		errors.Is(err, buffer.ErrNullBuffer),
		errors.Is(err, codepoint.ErrOutOfBounds):
		kind = ErrIndexOutOfBounds
	default:
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
