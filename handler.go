package unescape

// Handler resolves a single escape sequence.
//
// Resolve is invoked once per backslash, after the trigger character
// following it has been read. index is the byte offset of the
// backslash in the input; trigger is the character at index+1; cur is
// positioned immediately after the trigger. The handler may consume
// zero or more further characters from cur, and whatever it consumes
// the scanner skips.
//
// A handler must be deterministic: the same input and cursor state
// must always produce the same outcome. The scanner never invokes a
// handler concurrently or re-entrantly within one decode, but a
// handler shared across decodes on multiple goroutines must be safe
// for that itself (DefaultHandler is, being stateless).
type Handler interface {
	Resolve(index int, trigger rune, cur *Cursor) Outcome
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(index int, trigger rune, cur *Cursor) Outcome

// Resolve calls f.
func (f HandlerFunc) Resolve(index int, trigger rune, cur *Cursor) Outcome {
	return f(index, trigger, cur)
}

// Outcome is a handler's verdict on one escape sequence: replace it
// with a character, delete it, or fail the decode. The zero value is
// Fail.
type Outcome struct {
	r    rune
	kind outcomeKind
}

type outcomeKind uint8

const (
	outcomeFail outcomeKind = iota
	outcomeReplace
	outcomeDelete
)

// Replace returns an outcome that substitutes r for the escape
// sequence.
func Replace(r rune) Outcome {
	return Outcome{r: r, kind: outcomeReplace}
}

// Delete removes the escape sequence from the output entirely.
var Delete = Outcome{kind: outcomeDelete}

// Fail aborts the decode with an InvalidEscapeError at the escape's
// backslash offset.
var Fail = Outcome{kind: outcomeFail}
