package unescape

import (
	"unicode"
	"unicode/utf8"
)

// DefaultHandler implements the standard escape table documented in
// the package comment. It is stateless and safe for concurrent use.
//
// Custom handlers can fall back to it for triggers they do not
// recognize:
//
//	func (h dialect) Resolve(index int, trigger rune, cur *unescape.Cursor) unescape.Outcome {
//	    switch trigger {
//	    case 's':
//	        return unescape.Replace(' ')
//	    default:
//	        return unescape.DefaultHandler{}.Resolve(index, trigger, cur)
//	    }
//	}
type DefaultHandler struct{}

// Resolve dispatches on the trigger character.
func (DefaultHandler) Resolve(_ int, trigger rune, cur *Cursor) Outcome {
	switch trigger {
	case 'a':
		return Replace('\a')
	case 'b':
		return Replace('\b')
	case 't':
		return Replace('\t')
	case 'n':
		return Replace('\n')
	case 'v':
		return Replace('\v')
	case 'f':
		return Replace('\f')
	case 'r':
		return Replace('\r')
	case 'e':
		return Replace(0x1B)
	case '\'', '"', '`', '\\':
		return Replace(trigger)
	case 'x':
		return decodeHex(cur)
	case 'u':
		return decodeUnicode(cur)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		return decodeOctal(trigger, cur)
	default:
		return Fail
	}
}

// decodeHex handles \xNN: exactly two hex digits. The result is at
// most 0xFF, always a valid scalar.
func decodeHex(cur *Cursor) Outcome {
	val, n := readDigits(cur, 16, 2, 0)
	if n != 2 {
		return Fail
	}
	return Replace(rune(val))
}

// decodeUnicode handles \u{HEX} and \uNNNN, selected by whether the
// character after the trigger is an opening brace.
func decodeUnicode(cur *Cursor) Outcome {
	r, size := utf8.DecodeRuneInString(cur.Rest())
	if size == 0 {
		return Fail
	}
	if r != '{' {
		val, n := readDigits(cur, 16, 4, 0)
		if n != 4 {
			return Fail
		}
		return scalar(val)
	}

	cur.Next() // consume '{'
	var val uint32
	digits := 0
	for {
		c, ok := cur.Next()
		if !ok {
			// Unterminated brace.
			return Fail
		}
		if c == '}' {
			if digits == 0 {
				return Fail
			}
			return scalar(val)
		}
		d, ok := digitVal(c, 16)
		if !ok {
			return Fail
		}
		// Once past the scalar range the exact value no longer
		// matters; stop accumulating so long runs cannot overflow.
		if val <= unicode.MaxRune {
			val = val*16 + d
		}
		digits++
	}
}

// decodeOctal handles \o, \oo, and \ooo. The trigger is the first
// digit; up to two more are consumed greedily, stopping at the first
// non-octal character. The result is at most 0o777, always a valid
// scalar.
func decodeOctal(trigger rune, cur *Cursor) Outcome {
	val, _ := readDigits(cur, 8, 2, uint32(trigger-'0'))
	return Replace(rune(val))
}

// scalar rejects values that are not legal Unicode scalar values:
// surrogates and codepoints above U+10FFFF.
func scalar(val uint32) Outcome {
	r := rune(val)
	if !utf8.ValidRune(r) {
		return Fail
	}
	return Replace(r)
}
