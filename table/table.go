package table

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// Class is the display width class of a code point.
type Class int8

// Width classes. Unknown flags non-printable and unassigned code points.
const (
	Unknown Class = -1
	Zero    Class = 0
	One     Class = 1
	Two     Class = 2
)

// Valid reports whether c is one of the four width classes.
func (c Class) Valid() bool {
	return c >= Unknown && c <= Two
}

func (c Class) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Zero:
		return "Zero"
	case One:
		return "One"
	case Two:
		return "Two"
	}
	return fmt.Sprintf("Class(%d)", int8(c))
}

// Surrogate code points are not scalar values and never appear in a table.
const (
	SurrogateMin rune = 0xd800
	SurrogateMax rune = 0xdfff
)

// IsSurrogate reports whether r lies in the UTF-16 surrogate block.
func IsSurrogate(r rune) bool {
	return r >= SurrogateMin && r <= SurrogateMax
}

// WidthRange tags the inclusive range Start…End with a width class.
type WidthRange struct {
	Class Class
	Start rune
	End   rune
}

func (wr WidthRange) String() string {
	return fmt.Sprintf("[%#U…%#U]=%s", wr.Start, wr.End, wr.Class)
}

// Errors reported while constructing a table.
var (
	ErrInvalidClass = errors.New("width table: invalid width class")
	ErrInvalidRange = errors.New("width table: invalid code point range")
	ErrSurrogate    = errors.New("width table: range overlaps surrogate block")
	ErrUnsorted     = errors.New("width table: ranges not sorted")
	ErrOverlap      = errors.New("width table: ranges overlap")
	ErrSyntax       = errors.New("width table: syntax error in width data")
)

// Table is an immutable, sorted list of disjoint width ranges.
type Table struct {
	ranges []WidthRange
}

// New creates a table from a list of ranges, which must be sorted ascending
// by start code point and must not overlap. Gaps between ranges are
// permitted; code points in a gap are of class Unknown.
// The input slice is copied.
func New(ranges []WidthRange) (*Table, error) {
	t := &Table{ranges: make([]WidthRange, len(ranges))}
	copy(t.ranges, ranges)
	for i, wr := range t.ranges {
		if !wr.Class.Valid() {
			return nil, fmt.Errorf("range #%d %v: %w", i, wr, ErrInvalidClass)
		}
		if wr.Start < 0 || wr.End > unicode.MaxRune || wr.Start > wr.End {
			return nil, fmt.Errorf("range #%d %v: %w", i, wr, ErrInvalidRange)
		}
		if wr.Start <= SurrogateMax && wr.End >= SurrogateMin {
			return nil, fmt.Errorf("range #%d %v: %w", i, wr, ErrSurrogate)
		}
		if i == 0 {
			continue
		}
		prev := t.ranges[i-1]
		if wr.Start < prev.Start {
			return nil, fmt.Errorf("range #%d %v follows %v: %w", i, wr, prev, ErrUnsorted)
		}
		if wr.Start <= prev.End {
			return nil, fmt.Errorf("range #%d %v intersects %v: %w", i, wr, prev, ErrOverlap)
		}
	}
	return t, nil
}

// MustNew is like New, but panics if the ranges do not form a valid table.
func MustNew(ranges []WidthRange) *Table {
	t, err := New(ranges)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Lookup returns the width class of code point r by binary search.
// Surrogates, code points outside of the Unicode range and code points not
// covered by any range are of class Unknown.
func (t *Table) Lookup(r rune) Class {
	if r < 0 || r > unicode.MaxRune || IsSurrogate(r) {
		return Unknown
	}
	from, to := 0, len(t.ranges)
	for to > from {
		middle := (from + to) / 2
		wr := t.ranges[middle]
		if r < wr.Start {
			to = middle
			continue
		}
		if r > wr.End {
			from = middle + 1
			continue
		}
		return wr.Class
	}
	return Unknown
}

// RangeOf returns the range containing code point r, if any.
func (t *Table) RangeOf(r rune) (WidthRange, bool) {
	i := sort.Search(len(t.ranges), func(i int) bool {
		return t.ranges[i].End >= r
	})
	if i < len(t.ranges) && t.ranges[i].Start <= r && !IsSurrogate(r) {
		return t.ranges[i], true
	}
	return WidthRange{}, false
}

// Len returns the number of ranges in the table.
func (t *Table) Len() int {
	return len(t.ranges)
}

// Ranges returns a copy of the table's ranges.
func (t *Table) Ranges() []WidthRange {
	ranges := make([]WidthRange, len(t.ranges))
	copy(ranges, t.ranges)
	return ranges
}

// RangeTable creates a Unicode range table of all code points of class c,
// suitable for unicode.Is. Adjacent ranges are merged.
func (t *Table) RangeTable(c Class) *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	lo, hi := rune(-1), rune(-1)
	flush := func() {
		if lo < 0 {
			return
		}
		if lo <= 0xffff && hi > 0xffff { // split at the plane boundary
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: 0xffff, Stride: 1})
			lo = 0x10000
		}
		if hi <= 0xffff {
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(hi), Stride: 1})
			if hi <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
		} else {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: uint32(lo), Hi: uint32(hi), Stride: 1})
		}
	}
	for _, wr := range t.ranges {
		if wr.Class != c {
			continue
		}
		if lo >= 0 && wr.Start == hi+1 {
			hi = wr.End // range extends previous range
			continue
		}
		flush()
		lo, hi = wr.Start, wr.End
	}
	flush()
	return rt
}
