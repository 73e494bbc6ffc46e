package mset

// MostCommon stores the k most common elements of s into items, ordered by
// decreasing count. Elements with equal counts are ordered by increasing
// element value. items is expected to have room for k entries; MostCommon will
// never write beyond len(items).
//
// It returns the number of items stored, which is at most k and at most
// s.Size(). For k ≤ 0, MostCommon returns 0.
func (s *Multiset) MostCommon(k int, items []Item) int {
	if k <= 0 || s.IsEmpty() {
		return 0
	}
	sorted := s.byFrequency()
	return copy(items[:min(k, len(items))], sorted)
}

// TopK returns the k most common elements of s, ordered as by MostCommon.
func (s *Multiset) TopK(k int) []Item {
	if k <= 0 || s.IsEmpty() {
		return nil
	}
	sorted := s.byFrequency()
	return sorted[:min(k, len(sorted))]
}

// byFrequency flattens s in ascending element order, then sorts the items by
// decreasing count.
func (s *Multiset) byFrequency() []Item {
	items := make([]Item, 0, s.size)
	for e, n := range s.All() {
		items = append(items, Item{Elem: e, Count: n})
	}
	mergeSort(items)
	return items
}

// moreCommon is the ordering of MostCommon: count descending, then element
// ascending.
func moreCommon(a, b Item) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Elem < b.Elem
}

// mergeSort is a stable bottom-up merge sort of items by moreCommon.
func mergeSort(items []Item) {
	n := len(items)
	if n < 2 {
		return
	}
	src, dst := items, make([]Item, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(dst[lo:hi], src[lo:mid], src[mid:hi])
		}
		src, dst = dst, src
	}
	if &src[0] != &items[0] {
		copy(items, src)
	}
}

// merge merges the sorted runs left and right into out. On ties the item
// from left wins, which keeps the sort stable.
func merge(out, left, right []Item) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if moreCommon(right[j], left[i]) {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])
}
