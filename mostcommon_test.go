package mset

import (
	"math/rand/v2"
	"testing"
)

func TestMostCommonTieBreak(t *testing.T) {
	s := fromItems(Item{3, 1}, Item{2, 5}, Item{1, 5})
	items := make([]Item, 2)
	n := s.MostCommon(2, items)
	if n != 2 {
		t.Fatalf("expected 2 items, have %d", n)
	}
	if items[0] != (Item{1, 5}) || items[1] != (Item{2, 5}) {
		t.Errorf("unexpected top-2 %v", items)
	}
}

func TestMostCommonBounds(t *testing.T) {
	s := fromItems(Item{10, 1}, Item{20, 3}, Item{30, 2})
	if n := s.MostCommon(0, make([]Item, 3)); n != 0 {
		t.Errorf("k=0 should yield no items, have %d", n)
	}
	if n := s.MostCommon(-2, make([]Item, 3)); n != 0 {
		t.Errorf("negative k should yield no items, have %d", n)
	}
	if n := New().MostCommon(3, make([]Item, 3)); n != 0 {
		t.Errorf("empty multiset should yield no items, have %d", n)
	}
	items := make([]Item, 10)
	n := s.MostCommon(10, items)
	if n != 3 {
		t.Fatalf("expected all 3 items, have %d", n)
	}
	want := []Item{{20, 3}, {30, 2}, {10, 1}}
	for i, it := range want {
		if items[i] != it {
			t.Errorf("item %d is %v, expected %v", i, items[i], it)
		}
	}
	short := make([]Item, 1)
	if n := s.MostCommon(3, short); n != 1 || short[0] != (Item{20, 3}) {
		t.Errorf("expected MostCommon to respect the buffer length, have %d / %v", n, short)
	}
}

func TestTopKIsSortedPrefix(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	s := randomMultiset(rnd, 300)
	all := s.TopK(s.Size() + 5)
	if len(all) != s.Size() {
		t.Fatalf("expected %d items, have %d", s.Size(), len(all))
	}
	for i := 1; i < len(all); i++ {
		if !moreCommon(all[i-1], all[i]) {
			t.Fatalf("items %v and %v out of order", all[i-1], all[i])
		}
	}
	top := s.TopK(7)
	for i := range top {
		if top[i] != all[i] {
			t.Errorf("TopK(7) is not a prefix of the full ordering at %d", i)
		}
	}
	if s.TopK(0) != nil {
		t.Errorf("expected TopK(0) to be nil")
	}
}

func TestMergeSortOrder(t *testing.T) {
	items := []Item{{5, 1}, {1, 2}, {4, 2}, {2, 9}, {3, 1}, {6, 2}, {0, 1}}
	mergeSort(items)
	want := []Item{{2, 9}, {1, 2}, {4, 2}, {6, 2}, {0, 1}, {3, 1}, {5, 1}}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("position %d: have %v, want %v (%v)", i, items[i], want[i], items)
		}
	}
}
