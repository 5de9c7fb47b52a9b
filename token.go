package pp

// Kind identifies a token variant.
type Kind uint8

const (
	// KindString is an atomic run of text, never split across lines.
	KindString Kind = iota
	// KindBreak is an optional break point between strings.
	KindBreak
	// KindBegin opens a group.
	KindBegin
	// KindEnd closes the innermost open group.
	KindEnd
	// KindEOF terminates the stream and flushes all pending state.
	KindEOF
)

// Mode requests how a group renders its breaks when the group does not fit
// on the current line.
type Mode uint8

const (
	// Consistent renders every break in the group as a newline once the
	// group breaks.
	Consistent Mode = iota
	// Inconsistent lets each break in the group decide independently,
	// packing as much as fits before each break.
	Inconsistent
)

// sizeInfinity is the canonical width of a forced break and of entries
// saturated during force-fit. It is a fixed sentinel large enough never to
// fit any practical margin, not the integer maximum, so running totals
// stay safely within int range.
const sizeInfinity = 0xffff

// Token is one element of the input stream fed to an Engine. Use the
// constructors below rather than filling the struct directly.
type Token struct {
	Kind   Kind
	Text   string // KindString: the literal text
	Blank  int    // KindBreak: width when rendered inline
	Offset int    // KindBreak: extra indent after a newline; KindBegin: group indent baseline
	Mode   Mode   // KindBegin: requested break behavior
}

// Text returns a string token. The text is emitted verbatim and never
// split, even when it alone exceeds the line width.
func Text(s string) Token {
	return Token{Kind: KindString, Text: s}
}

// Break returns an optional break point that renders as blank spaces when
// inline, or as a newline indented offset columns past the enclosing
// group's baseline.
func Break(blank, offset int) Token {
	return Token{Kind: KindBreak, Blank: blank, Offset: offset}
}

// HardBreak returns a break that always renders as a newline. It carries a
// sentinel inline width so wide that no group containing it can fit on one
// line.
func HardBreak(offset int) Token {
	return Token{Kind: KindBreak, Blank: sizeInfinity, Offset: offset}
}

// Begin opens a group. Offset is the indent baseline for the group's
// interior breaks; mode picks Consistent or Inconsistent breaking when the
// group does not fit.
func Begin(offset int, mode Mode) Token {
	return Token{Kind: KindBegin, Offset: offset, Mode: mode}
}

// End closes the innermost open group.
func End() Token {
	return Token{Kind: KindEnd}
}

// EOF terminates the stream. Feeding it is equivalent to calling Close.
func EOF() Token {
	return Token{Kind: KindEOF}
}
