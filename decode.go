package wcwidth

import "unicode/utf8"

// DecodeRuneInString decodes the first character of s and returns its
// scalar value and the number of bytes consumed. ok is false if s does not
// start with a well-formed UTF-8 sequence: bad continuation bytes, truncated
// sequences, overlong encodings and encoded surrogates are invalid. For
// invalid input exactly one byte is consumed and r is U+FFFD, so a scan over
// malformed text always proceeds.
//
// An empty s yields (U+FFFD, 0, false).
func DecodeRuneInString(s string) (r rune, size int, ok bool) {
	if len(s) == 0 {
		return utf8.RuneError, 0, false
	}
	if c := s[0]; c < utf8.RuneSelf {
		return rune(c), 1, true
	}
	r, size = utf8.DecodeRuneInString(s)
	return r, size, r != utf8.RuneError || size > 1
}

// DecodeRune is like DecodeRuneInString, but for a byte slice.
func DecodeRune(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return utf8.RuneError, 0, false
	}
	if c := b[0]; c < utf8.RuneSelf {
		return rune(c), 1, true
	}
	r, size = utf8.DecodeRune(b)
	return r, size, r != utf8.RuneError || size > 1
}

// CharacterCount returns the number of characters in s, counting every byte
// of an invalid sequence as a character of its own.
func CharacterCount(s string) int {
	return utf8.RuneCountInString(s)
}
