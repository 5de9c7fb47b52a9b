package pp

import (
	"io"
	"strings"
)

// Sink receives the rendered output. It is the engine's entire output
// surface: literal text, runs of blank characters, and newlines followed
// by indentation. Sink errors abort the pass and propagate to the caller
// unchanged.
type Sink interface {
	Text(s string) error
	Blanks(n int) error
	Newline(indent int) error
}

var spaceString = strings.Repeat(" ", 256)

// WriterSink is a Sink over an io.Writer. Blanks and indentation are held
// pending and materialized just before the next Text call, so lines never
// carry trailing whitespace and blank lines stay empty.
type WriterSink struct {
	w       io.Writer
	pending int
}

// NewWriterSink returns a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Reset clears pending state for reuse with a new writer.
func (s *WriterSink) Reset(w io.Writer) {
	s.w = w
	s.pending = 0
}

// Text writes s, preceded by any pending blanks or indentation.
func (s *WriterSink) Text(text string) error {
	if text == "" {
		return nil
	}
	if err := s.flushPending(); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, text)
	return err
}

// Blanks schedules n blank characters before the next Text.
func (s *WriterSink) Blanks(n int) error {
	if n > 0 {
		s.pending += n
	}
	return nil
}

// Newline writes a newline and schedules indent columns of indentation.
func (s *WriterSink) Newline(indent int) error {
	s.pending = 0
	if _, err := io.WriteString(s.w, "\n"); err != nil {
		return err
	}
	if indent > 0 {
		s.pending = indent
	}
	return nil
}

func (s *WriterSink) flushPending() error {
	for s.pending > 0 {
		n := s.pending
		if n > len(spaceString) {
			n = len(spaceString)
		}
		if _, err := io.WriteString(s.w, spaceString[:n]); err != nil {
			return err
		}
		s.pending -= n
	}
	return nil
}
