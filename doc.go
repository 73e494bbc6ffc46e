/*
Package mset implements an in-memory ordered multiset of integers.

Multisets

A multiset maps distinct elements to positive occurrence counts. Inserting an
element which is already present will increase its count instead of storing a
duplicate entry. Deleting occurrences decrements the count, and an element is
removed as soon as its count drops to zero.

Elements are kept in an AVL tree, keyed by element value. The nodes of the tree
are threaded with a doubly-linked list in ascending element order. The thread
is set up incrementally during insertion and deletion, and rotations will never
change the in-order neighbourhood of nodes, so it never has to be rebuilt.
This gives cursors O(1) steps to the next or previous element.

	Operation          |   Cost
	-------------------+--------------
	Insert / Delete    |   O(log n)
	Count              |   O(log n)
	Cursor step        |   O(1)
	Union, ...         |   O(n log n)
	MostCommon         |   O(n log n)

where n is the number of distinct elements.

The special value Undefined denotes “no element”. It is never stored and
insert operations will silently ignore it. In general, invalid arguments
(non-positive amounts, Undefined elements, non-positive k for MostCommon)
are absorbed as no-ops.

Multisets are not safe for concurrent use. Cursors are bound to the state
of a multiset at the time of their creation; mutating a multiset while a cursor
is in use results in unspecified (but memory-safe) cursor behaviour.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package mset

import (
	"math"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Undefined is a reserved element value, denoting “no element”.
// It is reported by cursors positioned at the start or end of a multiset.
const Undefined = math.MinInt

// Item is an (element, count) pair.
type Item struct {
	Elem  int
	Count int
}

// MsetError is an error type for the mset module
type MsetError string

func (e MsetError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MsetError("illegal arguments")

// ErrInvariantViolated is flagged by Check if the internal structure of a
// multiset is inconsistent.
const ErrInvariantViolated = MsetError("multiset invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
