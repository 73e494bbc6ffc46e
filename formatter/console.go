package formatter

/*
BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Console is a type for outputting multisets to a console with a fixed width
// font. Elements and counts are set in different colors. Coloring is switched
// off if stdout is not a terminal (see package fatih/color).
type Console struct {
	elem, count *color.Color
}

// NewConsole creates a new console formatter. elem and count are the colors
// used for elements and counts, respectively. Either may be nil, in which
// case a default color is used.
func NewConsole(elem, count *color.Color) *Console {
	c := &Console{elem: elem, count: count}
	if c.elem == nil {
		c.elem = color.New(color.FgBlue, color.Bold)
	}
	if c.count == nil {
		c.count = color.New(color.FgRed)
	}
	return c
}

// Preamble is called by the output driver before a multiset will be formatted.
// (Part of interface Format)
func (c *Console) Preamble(w io.Writer) {
	io.WriteString(w, "{")
}

// Postamble will be called after a multiset has been formatted.
// (Part of interface Format)
func (c *Console) Postamble(w io.Writer) {
	io.WriteString(w, "}\n")
}

// Pair outputs an (element, count) pair, using colors to tell them apart.
// Control sequences do not count for the width of a pair.
// (Part of interface Format)
func (c *Console) Pair(elem, count int, w io.Writer) {
	io.WriteString(w, "(")
	c.elem.Fprint(w, elem)
	io.WriteString(w, ", ")
	c.count.Fprint(w, count)
	io.WriteString(w, ")")
}

// Separator is called between two pairs on the same line.
// (Part of interface Format)
func (c *Console) Separator(w io.Writer) {
	io.WriteString(w, ", ")
}

// Newline will be called at the end of every line but the last one.
// (Part of interface Format)
func (c *Console) Newline(w io.Writer) {
	io.WriteString(w, ",\n ")
}

var _ Format = (*Console)(nil)

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil {
			config.LineWidth = lineWidthFor(w)
		}
	}
	tracer().Debugf("formatter: setting line length to %d en", config.LineWidth)
	return config
}

func lineWidthFor(termwidth int) int {
	switch {
	case termwidth > 65:
		return termwidth - 10
	case termwidth > 30:
		return termwidth - 5
	case termwidth > 10:
		return termwidth
	}
	return 10
}
