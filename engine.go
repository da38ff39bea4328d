package wcwidth

import (
	"github.com/npillmayer/wcwidth/table"
	"github.com/npillmayer/wcwidth/uax11"
)

// Engine resolves display widths of characters and strings. An engine
// combines a width table with a context for resolving East Asian ambiguous
// widths, and memoizes the width of every character it has resolved.
type Engine struct {
	table     *table.Table
	context   *uax11.Context
	eastAsian bool       // widen ambiguous characters?
	cache     widthCache // memo for table lookups
	fast      table.WidthRange
}

// NewEngine creates an engine for width table t. If t is nil, the default
// width table is used. If an empty context is given, uax11.LatinContext is
// assumed.
//
// The engine is not safe for concurrent use; see NewConcurrentEngine.
func NewEngine(t *table.Table, context *uax11.Context) *Engine {
	return newEngine(t, context, newPlainCache())
}

// NewConcurrentEngine is like NewEngine, but the engine returned may be
// shared between goroutines.
func NewConcurrentEngine(t *table.Table, context *uax11.Context) *Engine {
	return newEngine(t, context, newLockedCache())
}

func newEngine(t *table.Table, context *uax11.Context, cache widthCache) *Engine {
	if t == nil {
		t = table.Default()
	}
	if context == nil {
		context = uax11.LatinContext
	}
	e := &Engine{
		table:     t,
		context:   context,
		eastAsian: context.IsEastAsian(),
		cache:     cache,
	}
	// Printable ASCII is never ambiguous, so the table's class for it can
	// be used without consulting cache or table.
	e.fast = table.WidthRange{Start: 1, End: 0}
	if wr, ok := t.RangeOf(' '); ok {
		e.fast = wr
		if e.fast.Start < ' ' {
			e.fast.Start = ' '
		}
		if e.fast.End > 0x7e {
			e.fast.End = 0x7e
		}
	}
	return e
}

// Table returns the width table of an engine.
func (e *Engine) Table() *table.Table {
	return e.table
}

// Context returns the engine's UAX#11 context.
func (e *Engine) Context() *uax11.Context {
	return e.context
}

// CacheLen returns the number of characters memoized by the engine.
func (e *Engine) CacheLen() int {
	return e.cache.size()
}

// class returns the width class of r.
func (e *Engine) class(r rune) table.Class {
	if r >= e.fast.Start && r <= e.fast.End {
		return e.fast.Class
	}
	if c, ok := e.cache.get(r); ok {
		return c
	}
	c := e.table.Lookup(r)
	if e.eastAsian {
		c = table.Class(uax11.ResolveWidth(r, int(c), e.context))
	}
	CT().P("rune", r).Debugf("width cache miss, class = %s", c)
	e.cache.put(r, c)
	return c
}

// columns is the width of r for lenient measuring: non-printable Latin-1
// characters are ignored, other non-printable characters count as 1.
func (e *Engine) columns(r rune) int {
	c := e.class(r)
	if c != table.Unknown {
		return int(c)
	}
	if r <= 0xff {
		return 0
	}
	return 1
}

// RuneWidth returns the width of r, which is one of 0, 1, 2, or -1 for
// non-printable characters. Surrogates are of width -1.
func (e *Engine) RuneWidth(r rune) int {
	return int(e.class(r))
}

// Columns returns the number of columns needed to display s. Other than
// StringWidth it never fails: non-printable characters up to U+00FF add 0,
// any other non-printable character adds 1.
func (e *Engine) Columns(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size, _ := DecodeRuneInString(s[i:])
		n += e.columns(r)
		i += size
	}
	return n
}

// StringWidth returns the number of columns needed to display s, or -1 if s
// contains a non-printable character (wcswidth(3) semantics).
func (e *Engine) StringWidth(s string) int {
	n := 0
	for i := 0; i < len(s); {
		r, size, _ := DecodeRuneInString(s[i:])
		c := e.class(r)
		if c == table.Unknown {
			return -1
		}
		n += int(c)
		i += size
	}
	return n
}

// Width returns the width of the single character s consists of
// (wcwidth(3) semantics). It returns -1 if s is empty, holds more than one
// character, is not valid UTF-8, or if the character is non-printable.
func (e *Engine) Width(s string) int {
	r, size, ok := DecodeRuneInString(s)
	if !ok || size != len(s) {
		return -1
	}
	return e.RuneWidth(r)
}
