package store

import "sort"

// searchFirst returns the smallest index i in [0, Size()) for which pred
// holds, and a pointer to the value there, or Size() and nil if pred holds
// nowhere. pred's truth value is assumed monotonically non-decreasing over
// the in-order sequence.
func (s *Store[E]) searchFirst(pred func(*E) bool) (uint32, *E) {
	if s.isArray {
		return s.arraySearchFirst(pred)
	}
	return s.treeSearchFirst(pred)
}

func (s *Store[E]) arraySearchFirst(pred func(*E) bool) (uint32, *E) {
	n := int(s.numValues)
	i := sort.Search(n, func(i int) bool { return pred(&s.values[s.start+uint32(i)]) })
	if i == n {
		return s.numValues, nil
	}
	return uint32(i), &s.values[s.start+uint32(i)]
}

// treeSearchFirst descends the tree using subtree weights to track the
// rank of the current node, the tree-form analogue of binary search:
// whenever pred holds at the current node, that node is a candidate
// answer and we continue left looking for something smaller that also
// satisfies pred; otherwise we move right, since this node and its whole
// left subtree are known to fail pred.
func (s *Store[E]) treeSearchFirst(pred func(*E) bool) (uint32, *E) {
	cur := s.root
	result := s.Size()
	var resPtr *E
	offset := uint32(0)
	for cur != nullIdx {
		n := &s.pool.nodes[cur]
		leftWeight := s.weightOf(n.left)
		if pred(&n.value) {
			result = offset + leftWeight
			resPtr = &n.value
			cur = n.left
		} else {
			offset += leftWeight + 1
			cur = n.right
		}
	}
	return result, resPtr
}

// FindZero returns the smallest i with h(V[i])=0, or on failure, the
// smallest i with h(V[i])>0 (Size() if none).
func (s *Store[E]) FindZero(h func(*E) int) (value *E, idx uint32, found bool) {
	j, ptr := s.searchFirst(func(v *E) bool { return h(v) >= 0 })
	if ptr != nil && h(ptr) == 0 {
		return ptr, j, true
	}
	return nil, j, false
}

// FindPlus returns the smallest i with h(V[i])>0.
func (s *Store[E]) FindPlus(h func(*E) int) (value *E, idx uint32, found bool) {
	j, ptr := s.searchFirst(func(v *E) bool { return h(v) > 0 })
	if ptr == nil {
		return nil, 0, false
	}
	return ptr, j, true
}

// FindMinus returns the largest i with h(V[i])<0.
func (s *Store[E]) FindMinus(h func(*E) int) (value *E, idx uint32, found bool) {
	j, _ := s.searchFirst(func(v *E) bool { return h(v) >= 0 })
	if j == 0 {
		return nil, 0, false
	}
	ptr, _ := s.Fetch(j - 1)
	return ptr, j - 1, true
}
