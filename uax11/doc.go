/*
Package uax11 resolves display widths according to Unicode® Standard Annex #11 “East Asian Width”.

East Asian Width

UAX#11 assigns every code point one of six East_Asian_Width values: wide (W),
fullwidth (F), narrow (Na), halfwidth (H), neutral (N) and ambiguous (A).
Ideographs are always wide and Latin letters always narrow. Ambiguous
characters, e.g. Greek letters, box drawing characters or “±”, occupy one or
two cells, depending on whether text is rendered in an East Asian context.

Usage in this module

Terminal width tables assign a single column to the characters of category
“ambiguous” (A). Terminals configured for East Asian locales render them in two
columns instead. A Context captures this decision: LatinContext keeps the
widths of a width table untouched, EastAsianContext widens ambiguous
characters. ContextFromEnvironment derives a context from the user's locale.

Caveats

Determining the legacy fixed-width display length is not an exact science.
Much depends on the properties of output devices, on fonts used, on a device's
interpretation of display rules, etc. Clients should treat results of UAX#11
as heuristics.

___________________________________________________________________________

BSD License

Copyright © 2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package uax11

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
