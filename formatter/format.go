package formatter

/*
BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"bufio"
	"io"
	"math"
	"os"
	"sync"

	"github.com/npillmayer/mset"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // maximum line width in “en”s; 0 or less means no wrapping
	Context   *uax11.Context // context for measuring display widths; nil means Latin
}

// Format is an interface for formatting drivers, given an io.Writer.
//
// Output calls Preamble once, then Pair for every (element, count) pair in
// ascending element order. Between two pairs it calls either Separator, if
// both pairs fit on the current line, or Newline, if the next pair starts a
// new line. Postamble is called at the very end.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	Pair(elem, count int, w io.Writer)
	Separator(io.Writer)
	Newline(io.Writer)
}

// Widths of the punctuation Output accounts for.
const (
	braceWidth     = 1 // “{”, and the indent of continuation lines
	separatorWidth = 2 // “, ”
)

var setupGraphemes sync.Once

// Output formats a multiset using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(s *mset.Multiset, out io.Writer, config *Config, format Format) error {
	if s == nil || out == nil || config == nil || format == nil {
		return mset.ErrIllegalArguments
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	linewidth := config.LineWidth
	if linewidth <= 0 {
		linewidth = math.MaxInt
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	//
	w := bufio.NewWriter(out)
	format.Preamble(w)
	used, lines := braceWidth, 1
	first := true
	for e, c := range s.All() {
		width := pairWidth(e, c, ctx)
		switch {
		case first:
			used += width
			first = false
		case fits(used, width, linewidth):
			format.Separator(w)
			used += separatorWidth + width
		default:
			format.Newline(w)
			used = braceWidth + width
			lines++
		}
		format.Pair(e, c, w)
	}
	format.Postamble(w)
	tracer().Debugf("formatter: output %d pairs on %d lines of width %d", s.Size(), lines, config.LineWidth)
	return w.Flush()
}

// Print outputs a multiset to stdout, using a console format.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(s *mset.Multiset, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(s, os.Stdout, config, NewConsole(nil, nil))
}

// --- Line breaking ---------------------------------------------------------

// First-fit: a pair is appended to the current line as long as the line,
// including the separator and a trailing comma, stays within linewidth.
// A pair wider than a line gets a line of its own.
func fits(used, width, linewidth int) bool {
	return used+separatorWidth+width+1 <= linewidth
}

func pairWidth(elem, count int, ctx *uax11.Context) int {
	gstr := grapheme.StringFromString(mset.PairString(elem, count))
	return uax11.StringWidth(gstr, ctx)
}

// --- Plain format ----------------------------------------------------------

// Plain is a format without any decoration. Its output for a multiset which
// fits on a single line equals the multiset's String representation.
type Plain struct{}

// Preamble outputs an opening brace.
func (Plain) Preamble(w io.Writer) { io.WriteString(w, "{") }

// Postamble outputs a closing brace and a newline.
func (Plain) Postamble(w io.Writer) { io.WriteString(w, "}\n") }

// Pair outputs “(e, c)”.
func (Plain) Pair(elem, count int, w io.Writer) {
	io.WriteString(w, mset.PairString(elem, count))
}

// Separator outputs “, ”.
func (Plain) Separator(w io.Writer) { io.WriteString(w, ", ") }

// Newline ends a line with a comma and indents the following line to align
// with the opening brace.
func (Plain) Newline(w io.Writer) { io.WriteString(w, ",\n ") }

var _ Format = Plain{}
