package store

import (
	"testing"

	"go.uber.org/zap"
)

func assertEq(t *testing.T, exp, got uint32) {
	t.Helper()
	if exp != got {
		t.Fatalf("expected %d, got %d", exp, got)
	}
}

func TestFetchAfterSortedCreate(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3, 4, 5}, zap.NewNop())
	assertEq(t, 5, s.Size())
	for i, want := range []int{1, 2, 3, 4, 5} {
		got, ok := s.Fetch(uint32(i))
		if !ok {
			t.Fatalf("fetch %d: not ok", i)
		}
		if *got != want {
			t.Fatalf("fetch %d: expected %d, got %d", i, want, *got)
		}
	}
}

func TestInsertAtBoundariesStaysArray(t *testing.T) {
	s := NewEmpty[int](zap.NewNop())
	s.InsertAt(2, 0)
	s.InsertAt(3, 1)
	s.InsertAt(1, 0)
	if !s.IsArray() {
		t.Fatalf("expected array form after boundary-only inserts")
	}
	assertEq(t, 3, s.Size())
	v0, _ := s.Fetch(0)
	v1, _ := s.Fetch(1)
	v2, _ := s.Fetch(2)
	if *v0 != 1 || *v1 != 2 || *v2 != 3 {
		t.Fatalf("unexpected order: %d %d %d", *v0, *v1, *v2)
	}
}

func TestDeleteAtFrontThenInsertAtFrontReusesLeadingSlack(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3, 4, 5}, zap.NewNop())
	s.DeleteAt(0)
	if !s.IsArray() {
		t.Fatalf("expected array form after a leading delete")
	}
	startAfterDelete := s.start
	if startAfterDelete == 0 {
		t.Fatalf("expected DeleteAt(0) to advance start, leaving leading slack")
	}
	s.InsertAt(0, 0)
	if !s.IsArray() {
		t.Fatalf("expected array form after reusing leading slack")
	}
	if s.start != startAfterDelete-1 {
		t.Fatalf("expected start to retreat by one, got %d (was %d)", s.start, startAfterDelete)
	}
	for i, want := range []int{0, 2, 3, 4, 5} {
		got, _ := s.Fetch(uint32(i))
		if *got != want {
			t.Fatalf("fetch %d: expected %d, got %d", i, want, *got)
		}
	}
}

func TestInsertAtMiddleConvertsToTree(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 4, 5}, zap.NewNop())
	s.InsertAt(3, 2)
	if s.IsArray() {
		t.Fatalf("expected tree form after a middle insert")
	}
	for i, want := range []int{1, 2, 3, 4, 5} {
		got, _ := s.Fetch(uint32(i))
		if *got != want {
			t.Fatalf("fetch %d: expected %d, got %d", i, want, *got)
		}
	}
}

func TestDeleteAtMiddleConvertsAndShifts(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3, 4, 5}, zap.NewNop())
	s.DeleteAt(2)
	assertEq(t, 4, s.Size())
	for i, want := range []int{1, 2, 4, 5} {
		got, _ := s.Fetch(uint32(i))
		if *got != want {
			t.Fatalf("fetch %d: expected %d, got %d", i, want, *got)
		}
	}
}

func TestInsertDeleteManyPreservesOrder(t *testing.T) {
	s := NewEmpty[int](zap.NewNop())
	n := 200
	for i := 0; i < n; i++ {
		s.InsertAt(i, uint32(i))
	}
	for i := 0; i < n; i += 2 {
		idx := uint32(i / 2)
		s.DeleteAt(idx)
	}
	assertEq(t, uint32(n/2), s.Size())
	for i := uint32(0); i < s.Size(); i++ {
		got, ok := s.Fetch(i)
		if !ok {
			t.Fatalf("fetch %d: not ok", i)
		}
		if *got != int(2*i+1) {
			t.Fatalf("fetch %d: expected %d, got %d", i, 2*i+1, *got)
		}
	}
}

func TestCapacityNeverBelowSize(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3}, zap.NewNop())
	if s.Capacity() < s.Size() {
		t.Fatalf("array form: capacity %d below size %d", s.Capacity(), s.Size())
	}
	s.InsertAt(4, 1)
	if s.IsArray() {
		t.Fatalf("expected interior insert to convert to tree form")
	}
	if s.Capacity() < s.Size() {
		t.Fatalf("tree form: capacity %d below size %d", s.Capacity(), s.Size())
	}
}

func TestSetOverwritesInPlace(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3}, zap.NewNop())
	if !s.Set(1, 99) {
		t.Fatalf("expected Set to succeed")
	}
	got, _ := s.Fetch(1)
	if *got != 99 {
		t.Fatalf("expected 99, got %d", *got)
	}
	assertEq(t, 3, s.Size())
}

func TestClearAndDestroy(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3}, zap.NewNop())
	s.Clear()
	assertEq(t, 0, s.Size())
	s.Destroy()
	assertEq(t, 0, s.Size())
}
