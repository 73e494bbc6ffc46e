/*
Package textfile provides API helpers to load multisets of integers from text
files.

A text file is read in fragments and split into tokens at line-break
opportunities (UAX #14). Every token which denotes an integer is inserted into
the resulting multiset. Loading uses a bounded asynchronous pipeline
internally: a reader goroutine publishes batches of elements through a
broadcaster, while the calling goroutine, which is the only one to touch the
multiset, consumes them. The public API stays synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mset'
func tracer() tracing.Trace {
	return tracing.Select("mset")
}
