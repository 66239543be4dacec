// Package unescape decodes backslash-escape sequences embedded in text.
//
// The package offers a single-pass decoder that turns sequences like
// \n, \x41, \u{1F600}, and \101 into their literal characters. Output
// is copy-on-write: input containing no escapes is returned unchanged,
// with no allocation, and a buffer is allocated exactly once the moment
// the first escape is found. This makes the decoder suitable for
// embedding in lexers, config readers, and protocol decoders that
// unescape string literals on hot paths.
//
// # Escape Table
//
// The built-in DefaultHandler recognizes:
//
//	\a \b \t \n \v \f \r \e    control characters (0x07-0x0D, 0x1B)
//	\' \" \` \\                the character itself
//	\xNN                       exactly two hex digits (0x00-0xFF)
//	\uNNNN                     exactly four hex digits
//	\u{HEX}                    one or more hex digits, brace-delimited
//	\o \oo \ooo                one to three octal digits (0-511)
//
// Values decoded by \u must be legal Unicode scalar values: surrogates
// (U+D800 through U+DFFF) and codepoints above U+10FFFF are rejected.
// Any unrecognized escape fails the whole decode.
//
// # Basic Usage
//
//	s, err := unescape.Unescape(`Hello,\nworld!`)
//	// s == "Hello,\nworld!"
//
//	s, err = unescape.Unescape("no escapes here")
//	// s is the input string itself; nothing was allocated
//
// Failures report the byte offset of the backslash that began the
// malformed sequence:
//
//	_, err = unescape.Unescape(`oops \xJJ`)
//	var esc *unescape.InvalidEscapeError
//	errors.As(err, &esc) // esc.Index == 5
//
// # Custom Handlers
//
// Escape resolution is a capability: any Handler implementation may
// replace the default table. A handler receives the trigger character
// that followed the backslash and a Cursor positioned just after it,
// and may consume as many further characters as the sequence needs.
// Plain functions adapt via HandlerFunc:
//
//	s, err := unescape.UnescapeWith(input, unescape.HandlerFunc(
//	    func(index int, trigger rune, cur *unescape.Cursor) unescape.Outcome {
//	        if trigger == '%' {
//	            return unescape.Delete
//	        }
//	        return unescape.DefaultHandler{}.Resolve(index, trigger, cur)
//	    },
//	))
//
// Handlers for recurring dialects can be registered by name; see
// Register and Lookup.
package unescape

import (
	"context"
	"strings"
	"time"
)

// Unescape decodes all backslash-escape sequences in s using the
// default escape table.
//
// If s contains no backslash, s itself is returned and nothing is
// allocated. Otherwise a new string is built in a single pass over s.
// On the first malformed sequence the whole decode fails; no partial
// output is returned.
func Unescape(s string) (string, error) {
	return UnescapeWith(s, DefaultHandler{})
}

// UnescapeWith decodes all backslash-escape sequences in s, delegating
// each one to h.
//
// For every backslash at byte offset i, the character at i+1 is read
// as the trigger and h.Resolve(i, trigger, cur) decides the outcome.
// The cursor h receives is positioned immediately after the trigger;
// whatever h consumes from it is skipped by the scan. A backslash with
// no character after it always fails.
//
// Failures are reported at the backslash's byte offset regardless of
// how far the handler advanced before failing.
func UnescapeWith(s string, h Handler) (string, error) {
	first := strings.IndexByte(s, '\\')
	if first < 0 {
		// Borrowed path: the input is already the result.
		return s, nil
	}

	began := time.Now()
	ctx := context.Background()
	emitDecodeStart(ctx, len(s))

	var out strings.Builder
	out.Grow(len(s))
	out.WriteString(s[:first])

	cur := &Cursor{input: s, pos: first}
	escapes, deletions := 0, 0
	for {
		index := cur.Pos()
		r, ok := cur.Next()
		if !ok {
			break
		}
		if r != '\\' {
			out.WriteRune(r)
			continue
		}

		escapes++
		trigger, ok := cur.Next()
		if !ok {
			// Trailing backslash.
			err := newInvalidEscape(index)
			emitDecodeComplete(ctx, len(s), escapes, deletions, time.Since(began), err)
			return "", err
		}

		switch res := h.Resolve(index, trigger, cur); res.kind {
		case outcomeReplace:
			out.WriteRune(res.r)
		case outcomeDelete:
			deletions++
		default:
			err := newInvalidEscape(index)
			emitDecodeComplete(ctx, len(s), escapes, deletions, time.Since(began), err)
			return "", err
		}
	}

	emitDecodeComplete(ctx, len(s), escapes, deletions, time.Since(began), nil)
	return out.String(), nil
}
