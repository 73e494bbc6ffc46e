package mset

// ref is a handle of a node in the node arena of a multiset.
// The zero handle is the nil reference.
type ref uint32

const none ref = 0

// node represents one distinct element. Children are owned by the node,
// next and prev form the in-order thread and are mere references.
type node struct {
	elem        int
	count       int
	height      int // leaf = 0
	left, right ref
	next, prev  ref
}

// link carries the in-order neighbours of an insertion position down the
// descent path: prev is the node of the last right turn, next the node of the
// last left turn.
type link struct {
	prev, next ref
}

// --- Arena -----------------------------------------------------------------

func (s *Multiset) alloc(elem, amount int) ref {
	if len(s.nodes) == 0 {
		s.nodes = append(s.nodes, node{}) // slot 0 is the nil handle
	}
	n := node{elem: elem, count: amount}
	if l := len(s.free); l > 0 {
		r := s.free[l-1]
		s.free = s.free[:l-1]
		s.nodes[r] = n
		return r
	}
	s.nodes = append(s.nodes, n)
	return ref(len(s.nodes) - 1)
}

func (s *Multiset) release(r ref) {
	s.nodes[r] = node{}
	s.free = append(s.free, r)
}

func (s *Multiset) height(r ref) int {
	if r == none {
		return -1
	}
	return s.nodes[r].height
}

func (s *Multiset) fixHeight(r ref) {
	n := &s.nodes[r]
	n.height = 1 + max(s.height(n.left), s.height(n.right))
}

func (s *Multiset) balance(r ref) int {
	return s.height(s.nodes[r].left) - s.height(s.nodes[r].right)
}

// --- Lookup ----------------------------------------------------------------

func (s *Multiset) find(elem int) ref {
	r := s.root
	for r != none {
		n := &s.nodes[r]
		switch {
		case elem < n.elem:
			r = n.left
		case elem > n.elem:
			r = n.right
		default:
			return r
		}
	}
	return none
}

// --- Insertion -------------------------------------------------------------

// insert adds amount occurrences of elem to the subtree rooted at t and
// returns the new subtree root.
//
// Arena slots may move during allocation, therefore no node pointers are held
// across the recursive call.
func (s *Multiset) insert(t ref, elem, amount int, lnk link) ref {
	if t == none {
		n := s.alloc(elem, amount)
		s.size++
		s.thread(n, lnk)
		return n
	}
	switch e := s.nodes[t].elem; {
	case elem < e:
		lnk.next = t
		child := s.insert(s.nodes[t].left, elem, amount, lnk)
		s.nodes[t].left = child
	case elem > e:
		lnk.prev = t
		child := s.insert(s.nodes[t].right, elem, amount, lnk)
		s.nodes[t].right = child
	default:
		s.nodes[t].count += amount
		return t
	}
	s.fixHeight(t)
	return s.rebalance(t)
}

// thread links a freshly created node n between its in-order neighbours.
func (s *Multiset) thread(n ref, lnk link) {
	s.nodes[n].prev = lnk.prev
	s.nodes[n].next = lnk.next
	if lnk.prev == none {
		s.head = n
	} else {
		s.nodes[lnk.prev].next = n
	}
	if lnk.next == none {
		s.tail = n
	} else {
		s.nodes[lnk.next].prev = n
	}
}

// --- Deletion --------------------------------------------------------------

// delete removes up to amount occurrences of elem from the subtree rooted at t
// and returns the new subtree root.
func (s *Multiset) delete(t ref, elem, amount int) ref {
	if t == none {
		return none
	}
	switch e := s.nodes[t].elem; {
	case elem < e:
		s.nodes[t].left = s.delete(s.nodes[t].left, elem, amount)
	case elem > e:
		s.nodes[t].right = s.delete(s.nodes[t].right, elem, amount)
	default:
		n := &s.nodes[t]
		if n.count > amount {
			n.count -= amount
			s.total -= amount
			return t
		}
		T().Debugf("mset: removing element %d (count %d)", n.elem, n.count)
		s.total -= n.count
		s.size--
		s.unthread(t)
		left, right := n.left, n.right
		s.release(t)
		return s.join(left, right)
	}
	s.fixHeight(t)
	return s.rebalance(t)
}

// unthread splices node r out of the in-order thread.
func (s *Multiset) unthread(r ref) {
	n := &s.nodes[r]
	if n.prev == none {
		s.head = n.next
	} else {
		s.nodes[n.prev].next = n.next
	}
	if n.next == none {
		s.tail = n.prev
	} else {
		s.nodes[n.next].prev = n.prev
	}
	n.prev, n.next = none, none
}

// join merges two subtrees, where all elements of left are smaller than all
// elements of right. The leftmost node of right becomes the new subtree root.
func (s *Multiset) join(left, right ref) ref {
	if left == none {
		return right
	}
	if right == none {
		return left
	}
	rest, leftmost := s.detachMin(right)
	s.nodes[leftmost].left = left
	s.nodes[leftmost].right = rest
	s.fixHeight(leftmost)
	return s.rebalance(leftmost)
}

// detachMin unlinks the leftmost node of subtree t. It returns the remaining
// (rebalanced) subtree and the detached node.
func (s *Multiset) detachMin(t ref) (rest, leftmost ref) {
	if s.nodes[t].left == none {
		return s.nodes[t].right, t
	}
	rest, leftmost = s.detachMin(s.nodes[t].left)
	s.nodes[t].left = rest
	s.fixHeight(t)
	return s.rebalance(t), leftmost
}

// --- Balancing -------------------------------------------------------------

// rebalance restores the AVL property at t, assuming both subtrees of t are
// balanced and differ in height by at most 2.
func (s *Multiset) rebalance(t ref) ref {
	switch bal := s.balance(t); {
	case bal > 1:
		if s.balance(s.nodes[t].left) < 0 {
			s.nodes[t].left = s.rotateLeft(s.nodes[t].left)
		}
		return s.rotateRight(t)
	case bal < -1:
		if s.balance(s.nodes[t].right) > 0 {
			s.nodes[t].right = s.rotateRight(s.nodes[t].right)
		}
		return s.rotateLeft(t)
	}
	return t
}

// rotateRight lifts the left child of t. Rotations keep the in-order sequence
// of nodes, thus thread links are left untouched.
func (s *Multiset) rotateRight(t ref) ref {
	root := s.nodes[t].left
	assert(root != none, "rotateRight without left child")
	T().Debugf("mset: rotate right at %d", s.nodes[t].elem)
	s.nodes[t].left = s.nodes[root].right
	s.nodes[root].right = t
	s.fixHeight(t)
	s.fixHeight(root)
	return root
}

// rotateLeft is the mirror of rotateRight.
func (s *Multiset) rotateLeft(t ref) ref {
	root := s.nodes[t].right
	assert(root != none, "rotateLeft without right child")
	T().Debugf("mset: rotate left at %d", s.nodes[t].elem)
	s.nodes[t].right = s.nodes[root].left
	s.nodes[root].left = t
	s.fixHeight(t)
	s.fixHeight(root)
	return root
}
