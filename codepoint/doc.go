/*
Package codepoint navigates UTF-8 encoded byte slices by codepoint.

All functions operate on an immutable byte slice and logical byte offsets into
it. None of them allocate and none of them validate the shape of a UTF-8
sequence: a lead byte alone decides the length of a sequence, continuation
bytes are taken as they come. Malformed input therefore decodes to some
unspecified codepoint value instead of producing an error.

Stepping functions never leave the range [0, len(b)], where len(b) is the
end-of-text position.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package codepoint
