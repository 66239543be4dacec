package benchmarks

import (
	"strings"
	"testing"

	"github.com/zoobzio/unescape"
	unescapetest "github.com/zoobzio/unescape/testing"
)

func BenchmarkUnescape_NoEscapes(b *testing.B) {
	input := strings.Repeat("plain text with nothing to decode ", 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = unescape.Unescape(input)
	}
}

func BenchmarkUnescape_SingleEscape(b *testing.B) {
	input := strings.Repeat("padding ", 16) + `\n` + strings.Repeat(" padding", 16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = unescape.Unescape(input)
	}
}

func BenchmarkUnescape_DenseEscapes(b *testing.B) {
	input := strings.Repeat(`\t\n\x41\u{1F600}\101`, 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = unescape.Unescape(input)
	}
}

func BenchmarkUnescape_Corpus(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = unescape.Unescape(unescapetest.Escaped)
	}
}

func BenchmarkUnescapeWith_DeleteAll(b *testing.B) {
	input := strings.Repeat(`keep\nkeep`, 64)
	handler := unescapetest.DeleteAll()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = unescape.UnescapeWith(input, handler)
	}
}
