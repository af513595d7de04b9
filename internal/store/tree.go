package store

func (s *Store[E]) weightOf(idx uint32) uint32 {
	if idx == nullIdx {
		return 0
	}
	return s.pool.nodes[idx].weight
}

// fetchTreeNode is like fetchTree but named for callers in this file that
// need the slot's node pointer directly (predecessor lookup on delete).
func (s *Store[E]) fetchTreeNode(idx uint32, i uint32) *treeNode[E] {
	n := &s.pool.nodes[idx]
	leftWeight := s.weightOf(n.left)
	switch {
	case i < leftWeight:
		return s.fetchTreeNode(n.left, i)
	case i == leftWeight:
		return n
	default:
		return s.fetchTreeNode(n.right, i-leftWeight-1)
	}
}

// insertTree inserts value at rank i into the tree form. The node pool is
// grown, if needed, before descending, so no pointer obtained during the
// descent is invalidated by a mid-traversal reallocation.
func (s *Store[E]) insertTree(value E, i uint32) {
	s.pool.ensureFree(1)
	var rebalanceSlot *uint32
	s.insertInternal(&s.root, value, i, &rebalanceSlot)
	if rebalanceSlot != nil {
		s.rebuildAt(rebalanceSlot)
	}
}

func (s *Store[E]) insertInternal(slot *uint32, value E, i uint32, rebalanceSlot **uint32) {
	idx := *slot
	if idx == nullIdx {
		newIdx := s.pool.allocate()
		s.pool.nodes[newIdx] = treeNode[E]{weight: 1, left: nullIdx, right: nullIdx, value: value}
		*slot = newIdx
		return
	}
	n := &s.pool.nodes[idx]
	leftWeight := s.weightOf(n.left)
	if i <= leftWeight {
		s.insertInternal(&n.left, value, i, rebalanceSlot)
	} else {
		s.insertInternal(&n.right, value, i-leftWeight-1, rebalanceSlot)
	}
	n.weight++
	if !isBalanced(s.weightOf(n.left), s.weightOf(n.right)) {
		*rebalanceSlot = slot
	}
}

// deleteTree removes the element at rank i from the tree form.
func (s *Store[E]) deleteTree(i uint32) {
	var rebalanceSlot *uint32
	s.deleteInternal(&s.root, i, &rebalanceSlot)
	if rebalanceSlot != nil {
		s.rebuildAt(rebalanceSlot)
	}
}

func (s *Store[E]) deleteInternal(slot *uint32, i uint32, rebalanceSlot **uint32) {
	idx := *slot
	n := &s.pool.nodes[idx]
	leftWeight := s.weightOf(n.left)
	switch {
	case i < leftWeight:
		s.deleteInternal(&n.left, i, rebalanceSlot)
	case i > leftWeight:
		s.deleteInternal(&n.right, i-leftWeight-1, rebalanceSlot)
	default:
		switch {
		case n.left == nullIdx && n.right == nullIdx:
			s.pool.free(idx)
			*slot = nullIdx
			return
		case n.left == nullIdx:
			*slot = n.right
			s.pool.free(idx)
			return
		case n.right == nullIdx:
			*slot = n.left
			s.pool.free(idx)
			return
		default:
			predRank := leftWeight - 1
			pred := s.fetchTreeNode(n.left, predRank)
			n.value = pred.value
			s.deleteInternal(&n.left, predRank, rebalanceSlot)
		}
	}
	n.weight--
	if !isBalanced(s.weightOf(n.left), s.weightOf(n.right)) {
		*rebalanceSlot = slot
	}
}
