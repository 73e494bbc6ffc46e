package mset

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCursorForwardBackward(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := New()
	for _, e := range []int{40, 10, 30, 20, 50} {
		s.InsertMany(e, e/10)
	}
	c := s.NewCursor()
	defer c.Release()
	if !c.AtStart() || c.Get().Elem != Undefined || c.Get().Count != 0 {
		t.Fatalf("expected fresh cursor at start, get=%v", c.Get())
	}
	var fwd []int
	for c.Next() {
		it := c.Get()
		if it.Count != it.Elem/10 {
			t.Errorf("cursor reports wrong count for %v", it)
		}
		fwd = append(fwd, it.Elem)
	}
	want := []int{10, 20, 30, 40, 50}
	if len(fwd) != len(want) {
		t.Fatalf("forward traversal visited %v", fwd)
	}
	for i := range want {
		if fwd[i] != want[i] {
			t.Fatalf("forward traversal visited %v", fwd)
		}
	}
	if !c.AtEnd() || c.Get().Elem != Undefined {
		t.Fatalf("expected cursor at end")
	}
	if c.Next() || c.Next() || !c.AtEnd() {
		t.Errorf("advancing at end should be idempotent")
	}
	var bwd []int
	for c.Prev() {
		bwd = append(bwd, c.Get().Elem)
	}
	for i := range want {
		if bwd[i] != want[len(want)-1-i] {
			t.Fatalf("backward traversal visited %v", bwd)
		}
	}
	if !c.AtStart() || c.Prev() {
		t.Errorf("retreating at start should be idempotent")
	}
}

func TestCursorOnEmptyMultiset(t *testing.T) {
	c := New().NewCursor()
	if c.Next() {
		t.Errorf("expected Next on empty multiset to report end")
	}
	if !c.AtEnd() {
		t.Errorf("expected cursor to move to end")
	}
	if c.Prev() {
		t.Errorf("expected Prev on empty multiset to report start")
	}
	if !c.AtStart() || c.Get().Elem != Undefined {
		t.Errorf("expected cursor to move to start")
	}
}

func TestCursorSingleElement(t *testing.T) {
	s := New()
	s.InsertMany(-7, 3)
	c := s.NewCursor()
	if !c.Next() || c.Get() != (Item{-7, 3}) {
		t.Fatalf("expected cursor on (-7, 3), is on %v", c.Get())
	}
	if c.Next() {
		t.Fatalf("expected cursor to reach end")
	}
	if !c.Prev() || c.Get().Elem != -7 {
		t.Fatalf("expected cursor back on -7")
	}
	if c.Prev() || !c.AtStart() {
		t.Fatalf("expected cursor to reach start")
	}
}

func TestCursorChangesDirection(t *testing.T) {
	s := New()
	for i := 1; i <= 5; i++ {
		s.Insert(i)
	}
	c := s.NewCursor()
	c.Next()
	c.Next()
	c.Next()
	c.Prev()
	if c.Get().Elem != 2 {
		t.Errorf("expected cursor on 2, is on %v", c.Get())
	}
	if it, ok := c.PeekNext(); !ok || it.Elem != 3 {
		t.Errorf("expected right neighbour 3, is %v", it)
	}
	if it, ok := c.PeekPrev(); !ok || it.Elem != 1 {
		t.Errorf("expected left neighbour 1, is %v", it)
	}
	c.Prev()
	if _, ok := c.PeekPrev(); ok {
		t.Errorf("expected no left neighbour at smallest element")
	}
}

func TestCursorRelease(t *testing.T) {
	s := New()
	s.Insert(1)
	c := s.NewCursor()
	c.Next()
	c.Release()
	if c.Get().Elem != Undefined || c.Next() || c.Prev() {
		t.Errorf("released cursor should be inert")
	}
	var nilcursor *Cursor
	if nilcursor.Next() || nilcursor.Prev() || nilcursor.Get().Elem != Undefined {
		t.Errorf("nil cursor should be inert")
	}
}

func TestCursorAfterResetDoesNotPanic(t *testing.T) {
	s := New()
	for i := range 10 {
		s.Insert(i)
	}
	c := s.NewCursor()
	c.Next()
	c.Next()
	s.Reset()
	// behaviour is unspecified, but must be memory-safe
	_ = c.Get()
	for c.Next() {
	}
	for c.Prev() {
	}
}
