package omt

import "testing"

func TestSplitAtAndMergeRoundTrip(t *testing.T) {
	tree := CreateFromSortedArray[int, int, ByValue[int]]([]int{1, 2, 3, 4, 5})
	right, err := tree.SplitAt(3)
	if err != nil {
		t.Fatalf("splitat: %v", err)
	}
	if tree.Size() != 3 || right.Size() != 2 {
		t.Fatalf("expected sizes 3 and 2, got %d and %d", tree.Size(), right.Size())
	}

	merged := Merge[int, int, ByValue[int]](tree, right, func(a, b *int) int {
		switch {
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		default:
			return 0
		}
	})
	want := []int{1, 2, 3, 4, 5}
	for i, exp := range want {
		got, err := merged.Fetch(uint32(i))
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if got != exp {
			t.Fatalf("fetch %d: expected %d, got %d", i, exp, got)
		}
	}
}

func TestSplitAtOutOfBounds(t *testing.T) {
	tree := CreateFromSortedArray[int, int, ByValue[int]]([]int{1, 2, 3})
	if _, err := tree.SplitAt(4); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
