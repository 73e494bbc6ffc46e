package mset

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAscendingInsertStaysBalanced(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	s := New()
	for i := range 1023 {
		s.Insert(i)
		if err := s.Check(); err != nil {
			t.Fatalf("after insert of %d: %v", i, err)
		}
	}
	if h := s.height(s.root); h != 9 {
		t.Errorf("expected ascending insert of 1023 elements to yield height 9, is %d", h)
	}
}

func TestRotationCases(t *testing.T) {
	cases := [][]int{
		{3, 2, 1}, // left-left
		{1, 2, 3}, // right-right
		{3, 1, 2}, // left-right
		{1, 3, 2}, // right-left
	}
	for _, c := range cases {
		s := New()
		for _, e := range c {
			s.Insert(e)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("insert sequence %v: %v", c, err)
		}
		if s.nodes[s.root].elem != 2 || s.height(s.root) != 1 {
			t.Errorf("insert sequence %v: expected root 2 with height 1, have %d/%d",
				c, s.nodes[s.root].elem, s.height(s.root))
		}
		if s.String() != "{(1, 1), (2, 1), (3, 1)}" {
			t.Errorf("insert sequence %v: unexpected content %s", c, s)
		}
	}
}

func TestDeleteInnerNodesKeepsThread(t *testing.T) {
	s := New()
	for i := 1; i <= 31; i++ {
		s.Insert(i)
	}
	// delete nodes with two children, including the root
	for _, e := range []int{16, 8, 24, 4, 28} {
		s.Delete(e)
		if err := s.Check(); err != nil {
			t.Fatalf("after delete of %d: %v", e, err)
		}
		prev, next := e-1, e+1
		if s.Contains(prev) && s.Contains(next) {
			p := s.find(prev)
			if n := s.nodes[p].next; s.nodes[n].elem != next {
				t.Errorf("thread does not close gap of %d: %d -> %d", e, prev, s.nodes[n].elem)
			}
		}
	}
	if s.Size() != 26 {
		t.Errorf("expected 26 elements, have %d", s.Size())
	}
}

func TestDeleteExtremesUpdatesHeadTail(t *testing.T) {
	s := New()
	for _, e := range []int{5, 2, 9} {
		s.Insert(e)
	}
	s.Delete(2)
	s.Delete(9)
	if s.nodes[s.head].elem != 5 || s.nodes[s.tail].elem != 5 {
		t.Fatalf("expected 5 to be head and tail")
	}
	s.Delete(5)
	if s.head != none || s.tail != none || s.root != none {
		t.Errorf("expected empty thread after deleting last element")
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
}

// TestRandomOperationsAgainstModel runs random inserts and deletes against a
// map and validates all invariants after every single operation.
func TestRandomOperationsAgainstModel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewPCG(2521, 24))
	s := New()
	model := map[int]int{}
	for i := range 5000 {
		e := rnd.IntN(200) - 100
		n := rnd.IntN(4) + 1
		switch rnd.IntN(5) {
		case 0, 1:
			s.InsertMany(e, n)
			model[e] += n
		case 2:
			s.Insert(e)
			model[e]++
		case 3:
			s.DeleteMany(e, n)
			if model[e] <= n {
				delete(model, e)
			} else {
				model[e] -= n
			}
		case 4:
			s.Delete(e)
			if model[e] <= 1 {
				delete(model, e)
			} else {
				model[e]--
			}
		}
		if err := s.Check(); err != nil {
			t.Fatalf("operation %d: %v", i, err)
		}
		if s.Size() != len(model) {
			t.Fatalf("operation %d: size is %d, expected %d", i, s.Size(), len(model))
		}
	}
	total := 0
	for e, n := range model {
		if s.Count(e) != n {
			t.Errorf("count of %d is %d, expected %d", e, s.Count(e), n)
		}
		total += n
	}
	if s.TotalCount() != total {
		t.Errorf("total count is %d, expected %d", s.TotalCount(), total)
	}
	keys := make([]int, 0, len(model))
	for e := range model {
		keys = append(keys, e)
	}
	slices.Sort(keys)
	var thread []int
	for c := s.NewCursor(); c.Next(); {
		thread = append(thread, c.Get().Elem)
	}
	if !slices.Equal(keys, thread) {
		t.Errorf("thread order differs from sorted elements")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	s := New()
	for i := range 7 {
		s.Insert(i)
	}
	s.nodes[s.root].height = 7
	if err := s.Check(); err == nil {
		t.Errorf("expected Check to report a wrong height")
	}
	s.nodes[s.root].height = 2
	s.nodes[s.head].next = s.tail
	if err := s.Check(); err == nil {
		t.Errorf("expected Check to report a broken thread")
	}
}
