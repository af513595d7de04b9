package store

import "go.uber.org/zap"

// convertToTree builds a perfectly weight-balanced tree from the live
// portion of the array buffer by the standard recursive midpoint
// procedure, then releases the array buffer.
func (s *Store[E]) convertToTree() {
	live := s.numValues
	capacity := maxu32(s.capacity, live)
	pool := newNodePool[E](capacity)
	pool.log = s.log
	root := uint32(nullIdx)
	if live > 0 {
		root = buildBalanced(pool, s.values[s.start:s.start+live])
	}
	s.isArray = false
	s.values = nil
	s.start = 0
	s.numValues = 0
	s.capacity = 0
	s.pool = pool
	s.root = root
	if s.log != nil {
		s.log.Debug("omt: converted to tree form", zap.Uint32("live", live), zap.Uint32("capacity", capacity))
	}
}

// buildBalanced assembles a perfectly weight-balanced subtree over a
// freshly allocated set of node slots from a sorted slice: the root is
// the median of the range, the left subtree is built from the left half,
// the right subtree from the right half.
func buildBalanced[E any](pool *nodePool[E], values []E) uint32 {
	if len(values) == 0 {
		return nullIdx
	}
	mid := len(values) / 2
	idx := pool.allocate()
	left := buildBalanced(pool, values[:mid])
	right := buildBalanced(pool, values[mid+1:])
	pool.nodes[idx] = treeNode[E]{
		weight: uint32(len(values)),
		left:   left,
		right:  right,
		value:  values[mid],
	}
	return idx
}

// convertToArray copies the tree's values out by in-order traversal into
// a freshly allocated array sized to the pool's capacity, then releases
// the node pool.
func (s *Store[E]) convertToArray() {
	live := s.Size()
	capacity := s.pool.cap()
	buf := make([]E, capacity)
	if s.root != nullIdx {
		var pos uint32
		s.fillInOrder(s.root, buf, &pos)
	}
	s.isArray = true
	s.values = buf
	s.start = 0
	s.numValues = live
	s.capacity = capacity
	s.pool = nil
	s.root = nullIdx
	if s.log != nil {
		s.log.Debug("omt: converted to array form", zap.Uint32("live", live), zap.Uint32("capacity", capacity))
	}
}

func (s *Store[E]) fillInOrder(idx uint32, out []E, pos *uint32) {
	if idx == nullIdx {
		return
	}
	n := &s.pool.nodes[idx]
	s.fillInOrder(n.left, out, pos)
	out[*pos] = n.value
	*pos++
	s.fillInOrder(n.right, out, pos)
}
