// Package testing provides test fixtures for unescape.
package testing

import "github.com/zoobzio/unescape"

// Escaped is a corpus exercising every built-in escape form.
const Escaped = `\b \f \n \t \r \' \" \\ \u{0} \u{21} \u{433} \u{FFFD} \u0000 \u0021 \uFFFD \x7E \xFF`

// Unescaped is the decoded form of Escaped.
const Unescaped = "\b \f \n \t \r ' \" \\ \x00 ! г � \x00 ! � ~ ÿ"

// Invalid lists inputs the default handler must reject, each at the
// offset of its leading backslash.
var Invalid = []string{
	`\l`,
	`\u{This is definitely not hexadecimal}`,
	`\u{}`,
	`\u{03`,
	`\xGG`,
	`\xA`,
	`\x`,
	`\u{D800}`,
	`\u{110000}`,
	`\`,
}

// DeleteAll returns a handler that removes every escape sequence from
// the output.
func DeleteAll() unescape.Handler {
	return unescape.HandlerFunc(func(_ int, _ rune, _ *unescape.Cursor) unescape.Outcome {
		return unescape.Delete
	})
}

// FailAll returns a handler that rejects every escape sequence.
func FailAll() unescape.Handler {
	return unescape.HandlerFunc(func(_ int, _ rune, _ *unescape.Cursor) unescape.Outcome {
		return unescape.Fail
	})
}

// MustUnescape decodes s with the default handler and panics on
// failure. Use only with inputs known to be valid.
func MustUnescape(s string) string {
	out, err := unescape.Unescape(s)
	if err != nil {
		panic(err)
	}
	return out
}
