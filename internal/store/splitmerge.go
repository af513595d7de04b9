package store

import "go.uber.org/zap"

// Clone returns a value-wise copy of s: array form if s is array form,
// tree form otherwise. Elements are copied by assignment; if E is itself
// a pointer type, the pointee is not duplicated.
func (s *Store[E]) Clone(log *zap.Logger) *Store[E] {
	clone := &Store[E]{isArray: s.isArray, log: log}
	if s.isArray {
		clone.capacity = s.capacity
		clone.start = s.start
		clone.numValues = s.numValues
		clone.values = make([]E, len(s.values))
		copy(clone.values, s.values)
		return clone
	}
	nodesCopy := make([]treeNode[E], len(s.pool.nodes))
	copy(nodesCopy, s.pool.nodes)
	clone.pool = &nodePool[E]{nodes: nodesCopy, freeHead: s.pool.freeHead, freeSlots: s.pool.freeSlots, log: log}
	clone.root = s.root
	return clone
}

// SplitAt mutates s in place to hold V[0, i) and returns a freshly
// created store holding V[i, n). Both halves end up in array form: a
// tree-form s is first converted to array form in place, then copied
// into two fresh, independent buffers so that a later in-place append on
// one half can never reach into the other's backing array.
func (s *Store[E]) SplitAt(i uint32, log *zap.Logger) *Store[E] {
	if !s.isArray {
		s.convertToArray()
	}
	n := s.numValues
	leftBuf := make([]E, i)
	copy(leftBuf, s.values[s.start:s.start+i])
	rightBuf := make([]E, n-i)
	copy(rightBuf, s.values[s.start+i:s.start+n])
	*s = Store[E]{isArray: true, capacity: i, values: leftBuf, numValues: i, log: log}
	return &Store[E]{isArray: true, capacity: n - i, values: rightBuf, numValues: n - i, log: log}
}

// Merge concatenates left and right, in that order, into a freshly
// created array-form store. The caller guarantees right's values sort
// after left's; Merge does not re-sort. left and right must not be used
// again afterward.
func Merge[E any](left, right *Store[E], log *zap.Logger) *Store[E] {
	ln, rn := left.Size(), right.Size()
	buf := make([]E, ln+rn)
	_ = left.IterateRange(0, ln, func(v *E, idx uint32) error {
		buf[idx] = *v
		return nil
	})
	_ = right.IterateRange(0, rn, func(v *E, idx uint32) error {
		buf[ln+idx] = *v
		return nil
	})
	return NewSteal(&buf, uint32(len(buf)), log)
}

// AssertMergeOrder compares the last element of left against the first
// of right using cmp, for the omtdebug-only precondition check: the
// merge precondition is never enforced outside debug builds.
func AssertMergeOrder[E any](left, right *Store[E], cmp func(a, b *E) int) bool {
	ln, rn := left.Size(), right.Size()
	if ln == 0 || rn == 0 {
		return true
	}
	lastLeft, _ := left.Fetch(ln - 1)
	firstRight, _ := right.Fetch(0)
	return cmp(lastLeft, firstRight) <= 0
}
