package pp

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"
)

func benchmarkTokens(n int) []Token {
	tokens := make([]Token, 0, 2*n+2)
	tokens = append(tokens, Begin(0, Inconsistent))
	for i := 0; i < n; i++ {
		if i > 0 {
			tokens = append(tokens, Break(1, 0))
		}
		tokens = append(tokens, Text("pretty"))
	}
	tokens = append(tokens, End())
	return tokens
}

func BenchmarkEngineFeed(b *testing.B) {
	tokens := benchmarkTokens(1000)
	b.ReportAllocs()
	sink := NewWriterSink(io.Discard)
	for i := 0; i < b.N; i++ {
		sink.Reset(io.Discard)
		engine := New(sink, 80)
		for _, tok := range tokens {
			_ = engine.Feed(tok)
		}
		_ = engine.Close()
	}
}

func BenchmarkReflow(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("streaming pretty printing keeps memory bounded ")
		if i%7 == 6 {
			sb.WriteString("\n\n")
		}
	}
	data := []byte(sb.String())
	widths := []int{40, 60, 80}
	for _, width := range widths {
		width := width
		b.Run(strconv.Itoa(width), func(b *testing.B) {
			b.ReportAllocs()
			reader := bytes.NewReader(data)
			for i := 0; i < b.N; i++ {
				reader.Reset(data)
				_ = Reflow(ReflowRequest{
					Reader: reader,
					Writer: io.Discard,
					Width:  width,
				})
			}
		})
	}
}
