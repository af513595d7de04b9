package store

import "go.uber.org/zap"

// isBalanced reports whether a subtree with left weight L and right
// weight R is within the weight-balance criterion: trivially balanced at
// weight <= 2, otherwise the two children's weights may differ by at most
// 2, expressed without floating point as 2*max(L,R) < W+2 where
// W = 1+L+R.
func isBalanced(left, right uint32) bool {
	w := 1 + left + right
	if w <= 2 {
		return true
	}
	return 2*maxu32(left, right) < w+2
}

// rebuildAt flattens the subtree rooted at *slot into an index array by
// in-order traversal and reassembles a perfectly weight-balanced subtree
// over the same node slots, picking the median index as the new root and
// recursing on the halves.
func (s *Store[E]) rebuildAt(slot *uint32) {
	idx := *slot
	weight := s.weightOf(idx)
	idxs := make([]uint32, 0, weight)
	s.flattenIdxs(idx, &idxs)
	*slot = s.rebuildFromIdxs(idxs)
	if s.log != nil {
		s.log.Debug("omt: rebalanced subtree", zap.Uint32("weight", weight))
	}
}

func (s *Store[E]) flattenIdxs(idx uint32, out *[]uint32) {
	if idx == nullIdx {
		return
	}
	n := &s.pool.nodes[idx]
	s.flattenIdxs(n.left, out)
	*out = append(*out, idx)
	s.flattenIdxs(n.right, out)
}

func (s *Store[E]) rebuildFromIdxs(idxs []uint32) uint32 {
	if len(idxs) == 0 {
		return nullIdx
	}
	mid := len(idxs) / 2
	rootIdx := idxs[mid]
	left := s.rebuildFromIdxs(idxs[:mid])
	right := s.rebuildFromIdxs(idxs[mid+1:])
	n := &s.pool.nodes[rootIdx]
	n.left = left
	n.right = right
	n.weight = uint32(len(idxs))
	return rootIdx
}
