package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dataFile is a line-level scanner for width data. It skips comment lines
// and empty lines and splits data lines into fields.
type dataFile struct {
	scanner *bufio.Scanner
	lineno  int
	fields  []string
}

func newDataFile(r io.Reader) *dataFile {
	return &dataFile{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next data line.
func (df *dataFile) Scan() bool {
	for df.scanner.Scan() {
		df.lineno++
		text := strings.TrimSpace(df.scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		if i := strings.IndexByte(text, '#'); i >= 0 { // trailing comment
			text = text[:i]
		}
		df.fields = strings.Fields(text)
		return true
	}
	return false
}

// Range interprets the current data line as a width range.
func (df *dataFile) Range() (WidthRange, error) {
	var wr WidthRange
	if len(df.fields) != 3 {
		return wr, fmt.Errorf("line %d: expected 3 fields, have %d: %w",
			df.lineno, len(df.fields), ErrSyntax)
	}
	var n [3]int64
	for i, f := range df.fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return wr, fmt.Errorf("line %d: field #%d %q: %w", df.lineno, i+1, f, ErrSyntax)
		}
		n[i] = v
	}
	if n[0] < int64(Unknown) || n[0] > int64(Two) {
		return wr, fmt.Errorf("line %d: width %d: %w", df.lineno, n[0], ErrInvalidClass)
	}
	wr.Class, wr.Start, wr.End = Class(n[0]), rune(n[1]), rune(n[2])
	return wr, nil
}

func (df *dataFile) Err() error {
	return df.scanner.Err()
}

// Parse reads width data (see package documentation) and creates a table
// from it. Ranges located completely within the surrogate block are
// dropped. Malformed lines and ranges violating the table invariants are
// reported as errors.
func Parse(r io.Reader) (*Table, error) {
	df := newDataFile(r)
	var ranges []WidthRange
	for df.Scan() {
		wr, err := df.Range()
		if err != nil {
			T().Errorf(err.Error())
			return nil, err
		}
		if wr.Start >= SurrogateMin && wr.End <= SurrogateMax {
			continue
		}
		ranges = append(ranges, wr)
	}
	if err := df.Err(); err != nil {
		return nil, fmt.Errorf("reading width data: %w", err)
	}
	t, err := New(ranges)
	if err != nil {
		T().Errorf(err.Error())
		return nil, err
	}
	return t, nil
}
