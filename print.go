package mset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Print writes s to w, in the format
//
//	{(e1, c1), (e2, c2), ...}
//
// with elements in ascending order. An empty multiset is printed as “{}”.
func (s *Multiset) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('{')
	first := true
	for e, n := range s.All() {
		if !first {
			bw.WriteString(", ")
		}
		first = false
		bw.WriteString(PairString(e, n))
	}
	bw.WriteByte('}')
	return bw.Flush()
}

// String returns the textual representation of s, as written by Print.
func (s *Multiset) String() string {
	var sb strings.Builder
	_ = s.Print(&sb)
	return sb.String()
}

// PairString formats a single (element, count) pair as “(e, c)”.
func PairString(elem, count int) string {
	b := make([]byte, 0, 24)
	b = append(b, '(')
	b = strconv.AppendInt(b, int64(elem), 10)
	b = append(b, ", "...)
	b = strconv.AppendInt(b, int64(count), 10)
	b = append(b, ')')
	return string(b)
}

// String formats an item as “(e, c)”.
func (it Item) String() string {
	return PairString(it.Elem, it.Count)
}
