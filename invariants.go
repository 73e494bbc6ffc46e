package mset

import "fmt"

// Check validates the structural invariants of s: search tree ordering, AVL
// balance, cached heights, element counts, and the in-order thread.
//
// This checker is intentionally strict and is meant to be used in tests.
func (s *Multiset) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil multiset", ErrInvariantViolated)
	}
	if s.root == none {
		if s.size != 0 || s.total != 0 {
			return fmt.Errorf("%w: empty tree with size=%d, total=%d",
				ErrInvariantViolated, s.size, s.total)
		}
		if s.head != none || s.tail != none {
			return fmt.Errorf("%w: empty tree with non-nil thread", ErrInvariantViolated)
		}
		return nil
	}
	var inorder []ref
	nodes, total, _, err := s.checkNode(s.root, Undefined, false, Undefined, false, &inorder)
	if err != nil {
		return err
	}
	if nodes != s.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolated, nodes, s.size)
	}
	if total != s.total {
		return fmt.Errorf("%w: total count mismatch (%d != %d)", ErrInvariantViolated, total, s.total)
	}
	return s.checkThread(inorder)
}

// checkNode validates the subtree at r, where all elements have to lie
// within (lo, hi) if the respective bound is set.
func (s *Multiset) checkNode(r ref, lo int, hasLo bool, hi int, hasHi bool,
	inorder *[]ref) (nodes int, total int, height int, err error) {
	//
	if r == none {
		return 0, 0, -1, nil
	}
	if int(r) >= len(s.nodes) {
		return 0, 0, 0, fmt.Errorf("%w: node handle %d out of arena", ErrInvariantViolated, r)
	}
	n := &s.nodes[r]
	if n.count < 1 {
		return 0, 0, 0, fmt.Errorf("%w: element %d has count %d", ErrInvariantViolated, n.elem, n.count)
	}
	if (hasLo && n.elem <= lo) || (hasHi && n.elem >= hi) {
		return 0, 0, 0, fmt.Errorf("%w: element %d violates search order", ErrInvariantViolated, n.elem)
	}
	ln, lt, lh, err := s.checkNode(n.left, lo, hasLo, n.elem, true, inorder)
	if err != nil {
		return 0, 0, 0, err
	}
	*inorder = append(*inorder, r)
	rn, rt, rh, err := s.checkNode(n.right, n.elem, true, hi, hasHi, inorder)
	if err != nil {
		return 0, 0, 0, err
	}
	height = 1 + max(lh, rh)
	if height != n.height {
		return 0, 0, 0, fmt.Errorf("%w: height of %d cached as %d, is %d",
			ErrInvariantViolated, n.elem, n.height, height)
	}
	if d := lh - rh; d > 1 || d < -1 {
		return 0, 0, 0, fmt.Errorf("%w: node %d out of balance (%d)", ErrInvariantViolated, n.elem, d)
	}
	return ln + rn + 1, lt + rt + n.count, height, nil
}

// checkThread compares the in-order thread, in both directions, with the
// in-order sequence of tree nodes.
func (s *Multiset) checkThread(inorder []ref) error {
	if s.head != inorder[0] {
		return fmt.Errorf("%w: head is not the smallest element", ErrInvariantViolated)
	}
	if s.tail != inorder[len(inorder)-1] {
		return fmt.Errorf("%w: tail is not the largest element", ErrInvariantViolated)
	}
	r := s.head
	for i, want := range inorder {
		if r != want {
			return fmt.Errorf("%w: thread diverges from tree at position %d", ErrInvariantViolated, i)
		}
		if i > 0 && s.nodes[r].prev != inorder[i-1] {
			return fmt.Errorf("%w: broken prev link at element %d", ErrInvariantViolated, s.nodes[r].elem)
		}
		r = s.nodes[r].next
	}
	if r != none || s.nodes[s.head].prev != none {
		return fmt.Errorf("%w: thread is not terminated", ErrInvariantViolated)
	}
	return nil
}
