/*
Package dump prints the codepoint layout of ustr.Strings to a console.

For every codepoint of a string, the output lists its index, its byte offset,
its encoded bytes, its value and its display width in fixed-width positions
(“en”s). Lead bytes and continuation bytes are colored differently when the
output is a terminal.

Display widths follow UAX #11 (East Asian Width), which depends on the
context of the text. Clients should set Config.Context for texts in East Asian
scripts; the default is a Latin context.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
