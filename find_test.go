package omt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// findCase is one row exercising a single Heaviside sign-shape documented
// on Heaviside: V plus a target whose comparator produces that shape,
// and the FindZero or Find(direction) call expected to observe it.
type findCase struct {
	name      string
	values    []int
	target    int
	direction int // 0 means exercise FindZero instead of Find
	wantErr   error
	wantValue int
	wantIdx   uint32
}

func TestFindShapesTable(t *testing.T) {
	cases := []findCase{
		{name: "all-negative FindZero", values: []int{1, 2, 3}, target: 10, wantErr: ErrNotFound},
		{name: "all-negative Find(+1)", values: []int{1, 2, 3}, target: 10, direction: 1, wantErr: ErrNotFound},
		{name: "all-positive FindZero", values: []int{5, 6, 7}, target: 1, wantErr: ErrNotFound},
		{name: "all-positive Find(-1)", values: []int{5, 6, 7}, target: 1, direction: -1, wantErr: ErrNotFound},
		{name: "exact zero FindZero", values: []int{1, 2, 3, 4}, target: 3, wantValue: 3, wantIdx: 2},
		{name: "neg-then-zero Find(+1) past zero region", values: []int{1, 2, 3}, target: 3, direction: 1, wantErr: ErrNotFound},
		{name: "zero-then-pos Find(+1)", values: []int{3, 4, 5}, target: 3, direction: 1, wantValue: 4, wantIdx: 1},
		{name: "neg-then-pos FindZero missing boundary", values: []int{1, 2, 4, 5}, target: 3, wantErr: ErrNotFound},
		{name: "neg-then-pos Find(+1)", values: []int{1, 2, 4, 5}, target: 3, direction: 1, wantValue: 4, wantIdx: 2},
		{name: "neg-then-pos Find(-1)", values: []int{1, 2, 4, 5}, target: 3, direction: -1, wantValue: 2, wantIdx: 1},
		{name: "all-three-regions FindZero", values: []int{1, 2, 3, 4, 5, 6}, target: 3, wantValue: 3, wantIdx: 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := CreateFromSortedArray[int, int, ByValue[int]](c.values)
			var v int
			var idx uint32
			var err error
			if c.direction == 0 {
				v, idx, err = tree.FindZero(intCmp(c.target))
			} else {
				v, idx, err = tree.Find(intCmp(c.target), c.direction)
			}
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.wantValue, v)
			require.Equal(t, c.wantIdx, idx)
		})
	}
}

func TestFindDirectionZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for direction=0")
		}
	}()
	tree := CreateFromSortedArray[int, int, ByValue[int]]([]int{1, 2, 3})
	tree.Find(intCmp(2), 0)
}
