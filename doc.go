// Package pp is a streaming pretty-printing engine: it takes a stream of
// structural tokens (text, optional breaks, nested group markers) and
// decides in a single forward pass, with memory bounded by the line width,
// where to insert line breaks so output fits the configured width while
// preserving the input's logical grouping.
//
// This package is built for streaming: tokens are fed one at a time and
// output is emitted as soon as each fit decision is known, never buffering
// more than a line-width-sized window. It is the reusable back end for
// code and data formatters; it knows nothing about any language's grammar.
//
// Core properties:
//   - Single forward pass with lookahead bounded by the line width
//   - Groups render on one line when they fit, break Consistent or
//     Inconsistent when they do not
//   - Output goes to an injected Sink; the engine performs no I/O itself
//
// Example:
//
//	var out bytes.Buffer
//	e := pp.New(pp.NewWriterSink(&out), 20)
//	e.Feed(pp.Begin(2, pp.Consistent))
//	e.Feed(pp.Text("aaaa"))
//	e.Feed(pp.Break(1, 0))
//	e.Feed(pp.Text("bbbb"))
//	e.Feed(pp.End())
//	if err := e.Close(); err != nil {
//		log.Fatal(err)
//	}
//
// Reflow wraps the engine into a plain-text paragraph refiller, and
// cmd/ppfmt drives Reflow from the command line.
package pp
