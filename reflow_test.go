package pp

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/muesli/reflow/ansi"
)

func reflowString(t *testing.T, src string, width int) string {
	t.Helper()
	var out bytes.Buffer
	err := Reflow(ReflowRequest{
		Reader: strings.NewReader(src),
		Writer: &out,
		Width:  width,
	})
	if err != nil {
		t.Fatalf("reflow: %v", err)
	}
	return out.String()
}

func TestReflowFillsParagraphs(t *testing.T) {
	src := "The quick brown fox\njumps over\nthe lazy dog.\n\n\nSecond paragraph here.\n"
	got := reflowString(t, src, 20)
	want := strings.Join([]string{
		"The quick brown fox",
		"jumps over the lazy",
		"dog.",
		"",
		"Second paragraph",
		"here.",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReflowCollapsesWhitespace(t *testing.T) {
	src := "a   b\t\tc\n\n\n\n\nd e\n"
	got := reflowString(t, src, 40)
	want := "a b c\n\nd e\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReflowLongWordOverruns(t *testing.T) {
	src := "abcdefghij xy\n"
	got := reflowString(t, src, 5)
	want := "abcdefghij\nxy\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReflowWidthBounds(t *testing.T) {
	src := strings.Join([]string{
		"Streaming engines make a single forward pass over their input and",
		"keep only a bounded window buffered at any time, which is what",
		"lets them format unbounded documents without unbounded memory.",
		"",
		"A second paragraph exercises the blank line separator path with",
		"enough words to wrap at every width under test.",
	}, "\n")
	for width := 12; width <= 100; width += 4 {
		out := reflowString(t, src, width)
		for i, line := range strings.Split(out, "\n") {
			if ansi.PrintableRuneWidth(line) > width {
				t.Fatalf("width %d: line %d exceeds margin: %q", width, i+1, line)
			}
		}
	}
}

func TestReflowRejectsBinaryInput(t *testing.T) {
	src := append([]byte("hello"), 0x00, 0x01, 0x02)
	var out bytes.Buffer
	err := Reflow(ReflowRequest{
		Reader: bytes.NewReader(src),
		Writer: &out,
		Width:  40,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestReflowRejectsInvalidUTF8(t *testing.T) {
	src := []byte{'h', 'i', 0xff, 0xfe}
	var out bytes.Buffer
	err := Reflow(ReflowRequest{
		Reader: bytes.NewReader(src),
		Writer: &out,
		Width:  40,
	})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestReflowNilReader(t *testing.T) {
	if err := Reflow(ReflowRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for nil Reader")
	}
}

func TestReflowNilWriter(t *testing.T) {
	if err := Reflow(ReflowRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatal("expected error for nil Writer")
	}
}

func TestReflowEmptyInput(t *testing.T) {
	if got := reflowString(t, "", 40); got != "" {
		t.Fatalf("output = %q, want empty", got)
	}
}

func TestReflowEndsWithSingleNewline(t *testing.T) {
	got := reflowString(t, "one two three", 40)
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Fatalf("output = %q, want single trailing newline", got)
	}
}
