package unescape

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for decode events.
//
// The borrowed fast path (input with no backslash) is not
// instrumented: it must stay allocation-free, so signals fire only
// once a decode has found an escape and switched to building a new
// buffer.
var (
	SignalDecodeStart    = capitan.NewSignal("unescape.decode.start", "Decode found an escape and began building output")
	SignalDecodeComplete = capitan.NewSignal("unescape.decode.complete", "Decode finished")
)

// Keys for typed event data.
var (
	KeyInputSize   = capitan.NewIntKey("input_size")
	KeyEscapeCount = capitan.NewIntKey("escape_count")
	KeyDeleteCount = capitan.NewIntKey("delete_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitDecodeStart emits an event when a decode leaves the borrowed
// path.
func emitDecodeStart(ctx context.Context, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyInputSize.Field(size),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, size, escapes, deletions int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyInputSize.Field(size),
		KeyEscapeCount.Field(escapes),
		KeyDeleteCount.Field(deletions),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
