package store

import (
	"testing"

	"go.uber.org/zap"
)

func heavisideFor(target int) func(*int) int {
	return func(stored *int) int {
		switch {
		case *stored < target:
			return -1
		case *stored > target:
			return 1
		default:
			return 0
		}
	}
}

func TestFindZeroArrayForm(t *testing.T) {
	s := NewFromSorted([]int{10, 20, 30, 40}, zap.NewNop())
	v, idx, found := s.FindZero(heavisideFor(30))
	if !found || *v != 30 || idx != 2 {
		t.Fatalf("expected found=true v=30 idx=2, got found=%v v=%v idx=%d", found, v, idx)
	}
	_, idx, found = s.FindZero(heavisideFor(25))
	if found {
		t.Fatalf("expected not found for 25")
	}
	assertEq(t, 2, idx)
}

func TestFindZeroTreeForm(t *testing.T) {
	s := NewFromSorted([]int{10, 20, 40, 50}, zap.NewNop())
	s.InsertAt(30, 2)
	if s.IsArray() {
		t.Fatalf("expected tree form")
	}
	v, idx, found := s.FindZero(heavisideFor(30))
	if !found || *v != 30 || idx != 2 {
		t.Fatalf("expected found=true v=30 idx=2, got found=%v v=%v idx=%d", found, v, idx)
	}
}

func TestFindPlusAndMinus(t *testing.T) {
	s := NewFromSorted([]int{10, 20, 30, 40}, zap.NewNop())
	v, idx, found := s.FindPlus(heavisideFor(20))
	if !found || *v != 30 || idx != 2 {
		t.Fatalf("FindPlus(20): expected 30 at 2, got %v at %d found=%v", v, idx, found)
	}
	v, idx, found = s.FindMinus(heavisideFor(20))
	if !found || *v != 10 || idx != 0 {
		t.Fatalf("FindMinus(20): expected 10 at 0, got %v at %d found=%v", v, idx, found)
	}
	_, _, found = s.FindMinus(heavisideFor(10))
	if found {
		t.Fatalf("FindMinus(10): expected nothing smaller than the first element")
	}
	_, _, found = s.FindPlus(heavisideFor(40))
	if found {
		t.Fatalf("FindPlus(40): expected nothing larger than the last element")
	}
}
