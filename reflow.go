package pp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const maxLineBytes = 1 << 20

// ReflowRequest configures Reflow.
type ReflowRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Options []Option
}

// Reflow reads plain text from Reader and refills each paragraph to Width
// columns, writing the result to Writer. Paragraphs are separated by blank
// lines; words are split on whitespace and never broken, so a word longer
// than the width overruns its line. Whitespace is renormalized: runs of
// spaces collapse, blank-line runs collapse to one.
func Reflow(req ReflowRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("reflow: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("reflow: Writer is nil")
	}
	engine := New(NewWriterSink(req.Writer), req.Width, req.Options...)
	feed := func(tok Token) error {
		if err := engine.Feed(tok); err != nil {
			return fmt.Errorf("reflow: write: %w", err)
		}
		return nil
	}

	scanner := bufio.NewScanner(req.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var v validator
	v.reset()
	inParagraph := false
	firstParagraph := true
	for scanner.Scan() {
		line := scanner.Bytes()
		rest, err := v.addBytes(line)
		if err != nil {
			return fmt.Errorf("reflow: %w", err)
		}
		if len(rest) > 0 {
			// A partial rune at end of line cannot complete.
			return fmt.Errorf("reflow: %w", ErrInvalidUTF8)
		}
		words := bytes.Fields(line)
		if len(words) == 0 {
			if inParagraph {
				if err := feed(End()); err != nil {
					return err
				}
				if err := feed(HardBreak(0)); err != nil {
					return err
				}
				inParagraph = false
			}
			continue
		}
		for _, word := range words {
			if inParagraph {
				if err := feed(Break(1, 0)); err != nil {
					return err
				}
			} else {
				if !firstParagraph {
					// Blank separator line between paragraphs.
					if err := feed(HardBreak(0)); err != nil {
						return err
					}
				}
				if err := feed(Begin(0, Inconsistent)); err != nil {
					return err
				}
				inParagraph = true
				firstParagraph = false
			}
			if err := feed(Text(string(word))); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reflow: read: %w", err)
	}
	if inParagraph {
		if err := feed(End()); err != nil {
			return err
		}
		if err := feed(HardBreak(0)); err != nil {
			return err
		}
	}
	if err := engine.Close(); err != nil {
		return fmt.Errorf("reflow: write: %w", err)
	}
	return nil
}
