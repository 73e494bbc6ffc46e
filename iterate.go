package mset

import "iter"

// All returns an iterator over all (element, count) pairs of s, in ascending
// order of elements.
//
// The tree is walked with an explicit stack. Each call of the iterator starts
// a fresh traversal.
func (s *Multiset) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if s.IsEmpty() {
			return
		}
		stack := make([]ref, 0, s.height(s.root)+1)
		r := s.root
		for r != none || len(stack) > 0 {
			for r != none {
				stack = append(stack, r)
				r = s.nodes[r].left
			}
			r = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(s.nodes[r].elem, s.nodes[r].count) {
				return
			}
			r = s.nodes[r].right
		}
	}
}

// Items returns an iterator over all items of s, in ascending order of
// elements.
func (s *Multiset) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for e, n := range s.All() {
			if !yield(Item{Elem: e, Count: n}) {
				return
			}
		}
	}
}

// Backward returns an iterator over all (element, count) pairs of s, in
// descending order of elements. It follows the in-order thread.
func (s *Multiset) Backward() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if s.IsEmpty() {
			return
		}
		for r := s.tail; r != none; r = s.nodes[r].prev {
			if !yield(s.nodes[r].elem, s.nodes[r].count) {
				return
			}
		}
	}
}
