package table

import (
	_ "embed" // width data
	"fmt"
	"strings"
	"sync"
)

//go:embed widths.txt
var widthData string

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded width data. The table is
// created on first use. Corrupt width data leaves the table unusable, which
// is a fatal condition: Default will panic.
// (Concurrency-safe).
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(strings.NewReader(widthData))
		if err != nil {
			panic(fmt.Sprintf("cannot load default width table: %v", err))
		}
		T().Infof("loaded default width table with %d ranges", t.Len())
		defaultTable = t
	})
	return defaultTable
}
