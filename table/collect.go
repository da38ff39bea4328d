package table

import (
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Collector compacts a sequence of classified code points into maximal
// ranges. Code points have to be appended in ascending order. Surrogates are
// silently skipped.
type Collector struct {
	ranges *arraylist.List // of WidthRange
	cur    WidthRange      // current range, if open
	open   bool
}

// NewCollector creates an empty range collector.
func NewCollector() *Collector {
	return &Collector{ranges: arraylist.New()}
}

// Append adds a single code point of class c.
func (coll *Collector) Append(r rune, c Class) {
	coll.AppendRange(r, r, c)
}

// AppendRange adds the code points lo…hi, all of class c.
// A range adjacent to the previous one and of the same class extends it.
func (coll *Collector) AppendRange(lo, hi rune, c Class) {
	if lo <= SurrogateMax && hi >= SurrogateMin { // cut out surrogates
		if lo < SurrogateMin {
			coll.AppendRange(lo, SurrogateMin-1, c)
		}
		if hi > SurrogateMax {
			coll.AppendRange(SurrogateMax+1, hi, c)
		}
		return
	}
	if coll.open && coll.cur.Class == c && lo == coll.cur.End+1 {
		coll.cur.End = hi
		return
	}
	coll.flush()
	coll.cur = WidthRange{Class: c, Start: lo, End: hi}
	coll.open = true
}

func (coll *Collector) flush() {
	if coll.open {
		coll.ranges.Add(coll.cur)
		coll.open = false
	}
}

// Ranges returns the ranges collected so far.
func (coll *Collector) Ranges() []WidthRange {
	n := coll.ranges.Size()
	if coll.open {
		n++
	}
	ranges := make([]WidthRange, 0, n)
	it := coll.ranges.Iterator()
	for it.Next() {
		ranges = append(ranges, it.Value().(WidthRange))
	}
	if coll.open {
		ranges = append(ranges, coll.cur)
	}
	return ranges
}

// Table creates a width table from the ranges collected so far.
func (coll *Collector) Table() (*Table, error) {
	return New(coll.Ranges())
}

// FromFunc enumerates all Unicode scalar values, classifies them with fn and
// creates a table from the result.
func FromFunc(fn func(rune) Class) (*Table, error) {
	coll := NewCollector()
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r == SurrogateMin {
			r = SurrogateMax
			continue
		}
		coll.Append(r, fn(r))
	}
	T().Debugf("collected %d width ranges", coll.ranges.Size()+1)
	return coll.Table()
}
