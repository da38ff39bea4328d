package wcwidth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTabStop is returned for tab stops less than 1.
var ErrTabStop = errors.New("wcwidth: tab stop must be positive")

// Expand replaces every tab in s by spaces, up to the next multiple of
// tabStop. s is expected to start at the beginning of a line.
func (e *Engine) Expand(s string, tabStop int) (string, error) {
	return e.ExpandFrom(s, tabStop, 0)
}

// ExpandFrom is like Expand, but s starts at column col of a line.
// The column advances by the width of characters as measured by Columns.
func (e *Engine) ExpandFrom(s string, tabStop int, col int) (string, error) {
	if tabStop <= 0 {
		return "", fmt.Errorf("%w, is %d", ErrTabStop, tabStop)
	}
	if col < 0 {
		col = 0
	}
	if strings.IndexByte(s, '\t') < 0 {
		return s, nil
	}
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	for i := 0; i < len(s); {
		r, size, _ := DecodeRuneInString(s[i:])
		if r == '\t' {
			n := tabStop - col%tabStop
			for j := 0; j < n; j++ {
				buf.WriteByte(' ')
			}
			col += n
		} else {
			buf.WriteString(s[i : i+size])
			col += e.columns(r)
		}
		i += size
	}
	return buf.String(), nil
}
