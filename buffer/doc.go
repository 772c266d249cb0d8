/*
Package buffer implements an owned, zero-terminated byte buffer holding UTF-8
text, with in-place replacement of single codepoints.

A Buffer tracks its raw length, its allocated capacity and the number of
codepoints it holds. Replacing a codepoint by one of a different encoded
width shifts the tail of the buffer and, if capacity does not suffice,
reallocates the storage to exactly the size required.

Buffers hand out logical byte offsets, never references into their storage.
Every replacement which moves bytes around bumps the buffer's version, so
clients holding offsets can detect that these went stale.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package buffer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ustr'
func tracer() tracing.Trace {
	return tracing.Select("ustr")
}
