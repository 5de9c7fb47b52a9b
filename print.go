package pp

type frameMode uint8

const (
	// frameFits renders the whole group on one line; breaks become blanks.
	frameFits frameMode = iota
	// frameConsistent renders every break in the group as a newline.
	frameConsistent
	// frameInconsistent decides per break against the remaining space.
	frameInconsistent
)

// frame is the print-time state of one open group. baseline is the space
// that was remaining when the group's Begin was printed, minus the group's
// offset; interior breaks indent relative to it.
type frame struct {
	baseline int
	mode     frameMode
}

// printer consumes resolved (token, size) pairs and drives the sink. Fit
// decisions are made once per group, when its Begin is dequeued; breaks
// then dispatch on the innermost frame's mode.
type printer struct {
	sink     Sink
	margin   int
	space    int // width remaining on the current output line
	stack    []frame
	stackArr [16]frame
}

func (p *printer) init(sink Sink, margin int) {
	p.sink = sink
	p.margin = margin
	p.space = margin
	p.stack = p.stackArr[:0]
}

// top returns the innermost frame. Breaks outside any group pack greedily
// against the full margin.
func (p *printer) top() frame {
	if len(p.stack) == 0 {
		return frame{baseline: p.margin, mode: frameInconsistent}
	}
	return p.stack[len(p.stack)-1]
}

func (p *printer) print(tok Token, size int) error {
	switch tok.Kind {
	case KindString:
		// Overlong strings are emitted anyway and the line runs past the
		// margin; strings are never split.
		p.space -= size
		return p.sink.Text(tok.Text)
	case KindBreak:
		return p.printBreak(tok, size)
	case KindBegin:
		if size <= p.space {
			p.stack = append(p.stack, frame{mode: frameFits})
			return nil
		}
		mode := frameConsistent
		if tok.Mode == Inconsistent {
			mode = frameInconsistent
		}
		p.stack = append(p.stack, frame{baseline: p.space - tok.Offset, mode: mode})
		return nil
	case KindEnd:
		// An End without a matching Begin is malformed input; recover by
		// ignoring it rather than unbalancing the stack.
		if len(p.stack) > 0 {
			p.stack = p.stack[:len(p.stack)-1]
		}
	}
	return nil
}

func (p *printer) printBreak(tok Token, size int) error {
	f := p.top()
	switch f.mode {
	case frameFits:
		p.space -= tok.Blank
		return p.sink.Blanks(tok.Blank)
	case frameConsistent:
		return p.breakLine(f, tok)
	default: // frameInconsistent
		if size > p.space {
			return p.breakLine(f, tok)
		}
		p.space -= tok.Blank
		return p.sink.Blanks(tok.Blank)
	}
}

func (p *printer) breakLine(f frame, tok Token) error {
	p.space = f.baseline - tok.Offset
	indent := p.margin - p.space
	if indent < 0 {
		indent = 0
	}
	return p.sink.Newline(indent)
}
