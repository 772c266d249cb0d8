/*
Package textfile provides API helpers to load text files as ustr.Strings.

Loading reads a file in fragments. A background goroutine reads fragment after
fragment and broadcasts each of them to the assembling caller, who places it
at its file position. The API stays synchronous: Load returns once the
complete text is available.

Content is taken as is, without checking for valid UTF-8. As with all
ustr.Strings, the text ends at the first zero byte of the file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ustr'
func tracer() tracing.Trace {
	return tracing.Select("ustr")
}
