package mset

// Union returns a new multiset containing every element of a or b, with the
// greater of the two counts. Neither a nor b is modified; nil arguments are
// treated as empty multisets.
func Union(a, b *Multiset) *Multiset {
	u := a.Clone()
	for e, n := range b.All() {
		r := u.find(e)
		if r == none {
			u.InsertMany(e, n)
			continue
		}
		// the delta is not n, thus we cannot go through InsertMany
		if node := &u.nodes[r]; node.count < n {
			u.total += n - node.count
			node.count = n
		}
	}
	T().Debugf("mset: union of %d and %d elements has %d elements",
		a.Size(), b.Size(), u.Size())
	return u
}

// Intersection returns a new multiset containing the elements occurring in
// both a and b, with the smaller of the two counts. Neither a nor b is
// modified; nil arguments are treated as empty multisets.
func Intersection(a, b *Multiset) *Multiset {
	x := New()
	if a.IsEmpty() || b.IsEmpty() {
		return x
	}
	small, large := a, b
	if a.size >= b.size {
		small, large = b, a
	}
	for e, n := range small.All() {
		if m := large.Count(e); m > 0 {
			x.InsertMany(e, min(n, m))
		}
	}
	T().Debugf("mset: intersection of %d and %d elements has %d elements",
		a.Size(), b.Size(), x.Size())
	return x
}

// Included reports whether a is included in b, i.e., every element of a occurs
// in b at least as often as in a.
func Included(a, b *Multiset) bool {
	if a.Size() > b.Size() {
		return false
	}
	for e, n := range a.All() {
		if b.Count(e) < n {
			return false
		}
	}
	return true
}

// Equals reports whether a and b contain the same elements with the same
// counts.
func Equals(a, b *Multiset) bool {
	if a.Size() != b.Size() || a.TotalCount() != b.TotalCount() {
		return false
	}
	return Included(a, b) && Included(b, a)
}
