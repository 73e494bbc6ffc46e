package mset

// Cursor navigates the elements of a multiset in sorted order.
//
// A cursor is positioned either on an element, or on one of two sentinels:
// “start” lies before the smallest element, “end” after the largest one.
// Moving beyond a sentinel is not possible.
//
// The cursor is bound to the multiset state at the time of its creation. If the
// multiset is modified afterwards, the cursor's behaviour is unspecified.
type Cursor struct {
	set         *Multiset
	start, end  sentinel
	at          position
	curr        ref // valid if at == onElement
	left, right ref // neighbours of curr in the thread
}

// sentinel is a cursor-owned boundary node. It carries no element; link
// points to the adjacent element (successor of start, predecessor of end).
type sentinel struct {
	link ref
}

type position uint8

const (
	atStart position = iota
	onElement
	atEnd
)

// NewCursor creates a cursor positioned at the start of s.
func (s *Multiset) NewCursor() *Cursor {
	c := &Cursor{set: s}
	if !s.IsEmpty() {
		c.start.link = s.head
		c.end.link = s.tail
	}
	c.right = c.start.link
	return c
}

// Release detaches the cursor from its multiset. A released cursor will
// report Undefined and will not move anymore.
func (c *Cursor) Release() {
	if c == nil {
		return
	}
	*c = Cursor{at: atEnd}
}

// Get returns the element at the cursor position together with its count, or
// (Undefined, 0) if the cursor is positioned at the start or end.
func (c *Cursor) Get() Item {
	if c == nil || c.at != onElement || !c.valid(c.curr) {
		return Item{Elem: Undefined}
	}
	return c.set.item(c.curr)
}

// AtStart reports whether the cursor is positioned before the first element.
func (c *Cursor) AtStart() bool {
	return c != nil && c.set != nil && c.at == atStart
}

// AtEnd reports whether the cursor is positioned after the last element.
func (c *Cursor) AtEnd() bool {
	return c == nil || c.set == nil || c.at == atEnd
}

// Next moves the cursor to the next greater element, or to the end if there
// is none. It does not move a cursor already at the end.
//
// Next returns false if the cursor is at the end after the move.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	var next ref
	if c.at == atStart {
		next = c.start.link
	} else if c.valid(c.curr) {
		next = c.set.nodes[c.curr].next
	}
	if next == none || !c.valid(next) {
		c.moveTo(atEnd, none)
		return false
	}
	c.moveTo(onElement, next)
	return true
}

// Prev moves the cursor to the next smaller element, or to the start if there
// is none. It does not move a cursor already at the start.
//
// Prev returns false if the cursor is at the start after the move.
func (c *Cursor) Prev() bool {
	if c == nil || c.set == nil || c.at == atStart {
		return false
	}
	var prev ref
	if c.at == atEnd {
		prev = c.end.link
	} else if c.valid(c.curr) {
		prev = c.set.nodes[c.curr].prev
	}
	if prev == none || !c.valid(prev) {
		c.moveTo(atStart, none)
		return false
	}
	c.moveTo(onElement, prev)
	return true
}

// PeekNext returns the item right of the cursor position without moving the
// cursor. ok is false if the next position is the end.
func (c *Cursor) PeekNext() (Item, bool) {
	if c.AtEnd() || c.right == none || !c.valid(c.right) {
		return Item{Elem: Undefined}, false
	}
	return c.set.item(c.right), true
}

// PeekPrev returns the item left of the cursor position without moving the
// cursor. ok is false if the previous position is the start.
func (c *Cursor) PeekPrev() (Item, bool) {
	if c == nil || c.set == nil || c.at == atStart || c.left == none || !c.valid(c.left) {
		return Item{Elem: Undefined}, false
	}
	return c.set.item(c.left), true
}

func (c *Cursor) moveTo(at position, r ref) {
	c.at, c.curr = at, r
	switch at {
	case atStart:
		c.left, c.right = none, c.start.link
	case atEnd:
		c.left, c.right = c.end.link, none
	default:
		n := &c.set.nodes[r]
		c.left, c.right = n.prev, n.next
	}
}

// valid guards against handles which have been invalidated by a Reset of
// the multiset.
func (c *Cursor) valid(r ref) bool {
	return int(r) < len(c.set.nodes)
}
