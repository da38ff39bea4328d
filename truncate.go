package wcwidth

// Truncate returns the longest prefix of s which fits into maxColumns
// columns, measured as in Columns. Characters are never split: a character
// which would exceed maxColumns is dropped, even if columns are left.
// For maxColumns <= 0 the result is empty.
func (e *Engine) Truncate(s string, maxColumns int) string {
	if maxColumns <= 0 {
		return ""
	}
	if CharacterCount(s)*2 <= maxColumns { // no character is wider than 2
		return s
	}
	total := 0
	for i := 0; i < len(s); {
		r, size, _ := DecodeRuneInString(s[i:])
		w := e.columns(r)
		if total+w > maxColumns {
			return s[:i]
		}
		total += w
		i += size
	}
	return s
}

// Fit truncates s to at most cols columns and pads the result with spaces
// to exactly cols columns. For cols <= 0 the result is empty.
func (e *Engine) Fit(s string, cols int) string {
	s = e.Truncate(s, cols)
	pad := cols - e.Columns(s)
	if pad <= 0 {
		return s
	}
	buf := borrowBuffer()
	defer releaseBuffer(buf)
	buf.WriteString(s)
	for ; pad > 0; pad-- {
		buf.WriteByte(' ')
	}
	return buf.String()
}
