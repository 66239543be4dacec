package unescape

import "unicode/utf8"

// readDigits consumes up to max digits in the given base from cur,
// stopping at the first non-digit without consuming it. Digits are
// accumulated onto val; the count of digits consumed is returned
// alongside the result. All three built-in decoders share this loop.
func readDigits(cur *Cursor, base uint32, max int, val uint32) (uint32, int) {
	n := 0
	for n < max {
		r, size := utf8.DecodeRuneInString(cur.Rest())
		if size == 0 {
			break
		}
		d, ok := digitVal(r, base)
		if !ok {
			break
		}
		cur.Next()
		val = val*base + d
		n++
	}
	return val, n
}

// digitVal returns the value of r as a digit in the given base, for
// bases up to 16.
func digitVal(r rune, base uint32) (uint32, bool) {
	var d uint32
	switch {
	case r >= '0' && r <= '9':
		d = uint32(r - '0')
	case r >= 'a' && r <= 'f':
		d = uint32(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = uint32(r-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}
