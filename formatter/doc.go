/*
Package formatter outputs multisets on devices with fixed-width fonts and
as HTML.

The serialized form of a multiset is a sequence of (element, count) pairs.
Output wraps this sequence into lines not exceeding a configured width,
using a first-fit strategy. Widths are measured in display positions
(“en”s) according to UAX#11, which keeps the wrapping correct for terminals
set up for East Asian contexts as well.

Clients select an implementation of Format and hand it to Output:

	s := mset.New()
	s.InsertMany(3, 4)
	formatter.Output(s, os.Stdout, &formatter.Config{LineWidth: 40}, formatter.NewConsole(nil, nil))

Top-k tables are rendered as HTML by HTMLTable and may be read back by
ItemsFromHTML.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mset'
func tracer() tracing.Trace {
	return tracing.Select("mset")
}
