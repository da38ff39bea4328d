/*
Package wcwidth computes the number of terminal columns needed to display
Unicode text.

Description

Terminal emulators, line editors and text formatting tools render text in a
grid of fixed-width cells. Most characters occupy one cell, East Asian wide
characters occupy two, combining characters and some format characters
occupy none, and control characters do not have a printable width at all.
POSIX describes this with the functions wcwidth(3) and wcswidth(3).
Package wcwidth re-implements them on top of a width table (see sub-package
table) and adds operations which are useful for aligning text:

   Columns      total width, ignoring non-printable characters
   Wcswidth     total width, -1 if any character is non-printable
   Wcwidth      width of a single character
   Wcstruncate  longest prefix fitting into a number of columns
   Wcsexpand    replace tabs by spaces

Text is decoded as UTF-8. Invalid byte sequences do not stop a scan: each
offending byte is treated as U+FFFD REPLACEMENT CHARACTER, which is one column
wide.

Engines

The package level functions operate on a default Engine, created on first
use from the default width table. Clients wanting to use a different width
table or an East Asian context (see package uax11) will create an Engine of
their own. An engine memoizes the width of every character it has seen; the
memo is never shrunk. Engines created by NewEngine must not be used from more
than one goroutine at a time, NewConcurrentEngine creates an engine which may
be shared.

Widths of non-printable characters

Columns treats non-printable characters up to U+00FF (i.e., C0 and C1 control
characters) as zero-width and any other non-printable character as a
one-column placeholder, as terminals usually display a replacement glyph for
them.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package wcwidth

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
