/*
Package table holds the display width classes of Unicode scalar values.

A width table is a sorted list of disjoint, inclusive code point ranges, each
tagged with a width class. It is built once, either from width data in the
format emitted by the width data generator (see Parse), from a list of ranges
(see New) or by enumerating a width function (see FromFunc). After
construction a table is read-only and may be shared between goroutines.

Width data

Width data is line oriented. Every data line carries three decimal numbers:

   <width> <first code point> <last code point>

A width of -1 denotes non-printable or unassigned code points. Lines starting
with '#' and empty lines are ignored. The generator walks all code points
0…0x10FFFF and therefore emits the UTF-16 surrogate block as a range of its
own; such ranges are skipped, as surrogates are not scalar values.

The package embeds width data generated from GNU libc 2.36 (locale C.UTF-8),
available through Default().

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package table

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
