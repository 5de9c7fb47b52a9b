package pp

import "github.com/muesli/reflow/ansi"

// defaultLineWidth is used when New is given a non-positive width.
const defaultLineWidth = 80

// Engine formats one token stream against a fixed line width. Tokens are
// fed in arrival order and terminated by EOF; output reaches the injected
// Sink synchronously, possibly several calls per fed token. An Engine is
// single-use and not safe for concurrent use, but independent Engines
// share no state.
type Engine struct {
	printer
	tokens *ring[Token]
	sizes  *ring[int] // lockstep with tokens; negative means pending
	scan   *ring[int] // absolute token indices awaiting a resolved size

	leftTotal  int // cumulative width of everything already printed
	rightTotal int // cumulative width of everything scanned

	width func(string) int
}

// New returns an Engine writing to sink with the given line width. A
// non-positive width selects the default of 80 columns. Both internal
// buffers are sized at three times the line width; for well-formed input
// the force-fit rule keeps them within that bound.
func New(sink Sink, lineWidth int, opts ...Option) *Engine {
	cfg := config{width: ansi.PrintableRuneWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if lineWidth <= 0 {
		lineWidth = defaultLineWidth
	}
	capacity := 3 * lineWidth
	e := &Engine{
		tokens: newRing[Token](capacity),
		sizes:  newRing[int](capacity),
		scan:   newRing[int](capacity),
		width:  cfg.width,
	}
	e.printer.init(sink, lineWidth)
	return e
}

// Width returns the configured line width.
func (e *Engine) Width() int { return e.margin }

// Feed consumes the next token of the stream. Errors from the sink are
// returned untouched; the engine performs no I/O of its own.
func (e *Engine) Feed(tok Token) error {
	switch tok.Kind {
	case KindEOF:
		return e.feedEOF()
	case KindBegin:
		if e.scan.len() == 0 {
			// Fresh top-level window; the previous one is fully printed.
			e.leftTotal = 1
			e.rightTotal = 1
			e.tokens.clear()
			e.sizes.clear()
		}
		e.push(tok, -e.rightTotal)
		return nil
	case KindEnd:
		if e.scan.len() == 0 {
			return e.print(tok, 0)
		}
		e.push(tok, -1)
		return nil
	case KindBreak:
		if e.scan.len() == 0 {
			e.leftTotal = 1
			e.rightTotal = 1
			e.tokens.clear()
			e.sizes.clear()
		} else {
			e.resolvePending(0)
		}
		e.push(tok, -e.rightTotal)
		// A break costs its inline width unless it turns into a newline.
		e.rightTotal += tok.Blank
		return nil
	default: // KindString
		w := e.width(tok.Text)
		if e.scan.len() == 0 {
			return e.print(tok, w)
		}
		e.tokens.pushBack(tok)
		e.sizes.pushBack(w)
		e.rightTotal += w
		return e.forceFit()
	}
}

// Close terminates the stream, resolving and flushing everything still
// buffered. Equivalent to feeding EOF.
func (e *Engine) Close() error { return e.Feed(EOF()) }

func (e *Engine) push(tok Token, size int) {
	idx := e.tokens.pushBack(tok)
	e.sizes.pushBack(size)
	e.scan.pushBack(idx)
}

// resolvePending walks the scan stack top down, finalizing the sizes of
// breaks and closed groups at the current nesting level. A size becomes
// known exactly when the matching closing structure or a same-level
// sibling break arrives, which is what bounds lookahead.
func (e *Engine) resolvePending(depth int) {
	for e.scan.len() > 0 {
		idx := e.scan.back()
		switch e.tokens.at(idx).Kind {
		case KindBegin:
			if depth == 0 {
				// Interior not fully known yet.
				return
			}
			e.scan.popBack()
			e.sizes.set(idx, e.sizes.at(idx)+e.rightTotal)
			depth--
		case KindEnd:
			e.scan.popBack()
			e.sizes.set(idx, e.sizes.at(idx)+1)
			depth++
		default: // KindBreak
			e.scan.popBack()
			e.sizes.set(idx, e.sizes.at(idx)+e.rightTotal)
			if depth == 0 {
				return
			}
		}
	}
}

// forceFit keeps the buffered window no wider than the space left on the
// current line. When the window overflows, the earliest pending entry is
// saturated to sizeInfinity so the printer breaks it, and the front of the
// buffer drains. This is what bounds memory regardless of input length.
func (e *Engine) forceFit() error {
	for e.rightTotal-e.leftTotal > e.space && e.tokens.len() > 0 {
		if e.scan.len() > 0 && e.scan.front() == e.tokens.firstIndex() {
			idx := e.scan.popFront()
			e.sizes.set(idx, sizeInfinity)
		}
		if err := e.flushFront(); err != nil {
			return err
		}
	}
	return nil
}

// flushFront forwards finalized entries at the front of the window to the
// printer, advancing leftTotal by each entry's printed width.
func (e *Engine) flushFront() error {
	for e.tokens.len() > 0 && e.sizes.front() >= 0 {
		size := e.sizes.popFront()
		tok := e.tokens.popFront()
		switch tok.Kind {
		case KindBreak:
			e.leftTotal += tok.Blank
		case KindString:
			e.leftTotal += size
		}
		if err := e.print(tok, size); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) feedEOF() error {
	if e.scan.len() > 0 {
		e.resolvePending(0)
	}
	// Drain the window. Entries still pending here belong to unclosed
	// groups; saturate them so they flush as broken.
	for e.tokens.len() > 0 {
		if e.sizes.front() < 0 {
			if e.scan.len() > 0 && e.scan.front() == e.tokens.firstIndex() {
				e.scan.popFront()
			}
			e.sizes.set(e.tokens.firstIndex(), sizeInfinity)
		}
		if err := e.flushFront(); err != nil {
			return err
		}
	}
	e.scan.clear()
	e.tokens.clear()
	e.sizes.clear()
	e.leftTotal = 0
	e.rightTotal = 0
	return nil
}
