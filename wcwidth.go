package wcwidth

import (
	"sync"

	"github.com/npillmayer/wcwidth/table"
	"github.com/npillmayer/wcwidth/uax11"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the engine used by the package level functions. It is
// created on first use, for the default width table and uax11.LatinContext.
// (Concurrency-safe).
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewConcurrentEngine(table.Default(), uax11.LatinContext)
	})
	return defaultEngine
}

// Columns returns the number of columns needed to display s, ignoring
// non-printable characters (see Engine.Columns).
func Columns(s string) int {
	return Default().Columns(s)
}

// Wcswidth returns the number of columns needed to display s, or -1 if s
// contains a non-printable character.
func Wcswidth(s string) int {
	return Default().StringWidth(s)
}

// Wcwidth returns the number of columns needed to display the single
// character s consists of, or -1 if s is not exactly one valid character or
// if it is non-printable.
func Wcwidth(s string) int {
	return Default().Width(s)
}

// RuneWidth returns the number of columns needed to display r, or -1 if r
// is non-printable.
func RuneWidth(r rune) int {
	return Default().RuneWidth(r)
}

// Wcstruncate returns the longest prefix of s fitting into maxColumns columns.
func Wcstruncate(s string, maxColumns int) string {
	return Default().Truncate(s, maxColumns)
}

// Wcsexpand replaces tabs in s by spaces, with tab stops every tabStop columns.
// It returns ErrTabStop if tabStop is not positive.
func Wcsexpand(s string, tabStop int) (string, error) {
	return Default().Expand(s, tabStop)
}
