package mset

/*
BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Multiset stores integer elements together with their occurrence counts.
//
// A multiset created by
//
//	Multiset{}
//
// is a valid object and behaves like the empty multiset. Clients may use New
// as well.
//
// Nodes of the underlying AVL tree are held in an arena and addressed by
// handles. The tree owns its nodes by handle, the in-order thread merely
// references them.
type Multiset struct {
	nodes []node // node arena; slot 0 is unused
	free  []ref  // released arena slots
	root  ref
	head  ref // smallest element
	tail  ref // largest element
	size  int // number of distinct elements
	total int // sum of all counts
}

// New creates a new and empty multiset.
func New() *Multiset {
	return &Multiset{}
}

// Reset releases every node of the multiset. The multiset will be empty
// afterwards. Cursors created before Reset must not be used anymore.
func (s *Multiset) Reset() {
	if s == nil {
		return
	}
	T().Debugf("mset: releasing %d nodes", s.size)
	*s = Multiset{}
}

// Insert adds one occurrence of elem. Inserting Undefined is a no-op.
func (s *Multiset) Insert(elem int) {
	s.InsertMany(elem, 1)
}

// InsertMany adds amount occurrences of elem. It does nothing if elem is
// Undefined or amount is not positive.
func (s *Multiset) InsertMany(elem int, amount int) {
	if s == nil || elem == Undefined || amount <= 0 {
		return
	}
	s.root = s.insert(s.root, elem, amount, link{})
	s.total += amount
}

// Delete removes one occurrence of elem. Deleting an element not contained in
// s is a no-op.
func (s *Multiset) Delete(elem int) {
	s.DeleteMany(elem, 1)
}

// DeleteMany removes amount occurrences of elem. If amount is greater than or
// equal to the count of elem, elem is removed completely; the total count of s
// will then decrease by the count elem had, not by amount.
func (s *Multiset) DeleteMany(elem int, amount int) {
	if s == nil || amount <= 0 || s.root == none {
		return
	}
	s.root = s.delete(s.root, elem, amount)
}

// Size returns the number of distinct elements.
func (s *Multiset) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// TotalCount returns the sum of the counts of all elements.
func (s *Multiset) TotalCount() int {
	if s == nil {
		return 0
	}
	return s.total
}

// IsEmpty reports whether s has no elements.
func (s *Multiset) IsEmpty() bool {
	return s == nil || s.root == none
}

// Count returns the count of elem, or 0 if elem is not contained in s.
func (s *Multiset) Count(elem int) int {
	if s == nil {
		return 0
	}
	if r := s.find(elem); r != none {
		return s.nodes[r].count
	}
	return 0
}

// Contains reports whether elem occurs at least once in s.
func (s *Multiset) Contains(elem int) bool {
	return s.Count(elem) > 0
}

// Min returns the smallest element and its count. ok is false for an empty
// multiset.
func (s *Multiset) Min() (item Item, ok bool) {
	if s.IsEmpty() {
		return Item{Elem: Undefined}, false
	}
	return s.item(s.head), true
}

// Max returns the largest element and its count. ok is false for an empty
// multiset.
func (s *Multiset) Max() (item Item, ok bool) {
	if s.IsEmpty() {
		return Item{Elem: Undefined}, false
	}
	return s.item(s.tail), true
}

// Clone returns an independent copy of s.
func (s *Multiset) Clone() *Multiset {
	c := New()
	for e, n := range s.All() {
		c.InsertMany(e, n)
	}
	return c
}

func (s *Multiset) item(r ref) Item {
	n := &s.nodes[r]
	return Item{Elem: n.elem, Count: n.count}
}
