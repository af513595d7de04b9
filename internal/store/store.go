package store

import (
	"unsafe"

	"go.uber.org/zap"
)

// Store is the dual array/tree representation underlying an OMT. Exactly
// one of the array fields or the tree fields is live at a time, selected by
// isArray.
type Store[E any] struct {
	isArray  bool
	capacity uint32

	// array form
	values    []E
	start     uint32
	numValues uint32

	// tree form
	pool *nodePool[E]
	root uint32

	log *zap.Logger
}

// NewEmpty returns an empty array-form store with no backing allocation.
// This is the Go equivalent of both omt-tmpl.h's create() and
// create_no_array(): a nil slice already carries zero capacity and no
// heap allocation, so the two constructors collapse to one here.
func NewEmpty[E any](log *zap.Logger) *Store[E] {
	return &Store[E]{isArray: true, log: log}
}

// NewFromSorted copies values into a fresh array-form store.
func NewFromSorted[E any](values []E, log *zap.Logger) *Store[E] {
	buf := make([]E, len(values))
	copy(buf, values)
	return &Store[E]{
		isArray:   true,
		capacity:  uint32(len(buf)),
		values:    buf,
		numValues: uint32(len(buf)),
		log:       log,
	}
}

// NewSteal takes ownership of *values, which the caller may not access
// again; *values is nulled on return, mirroring
// create_steal_sorted_array's "caller's pointer is nulled."
func NewSteal[E any](values *[]E, newCapacity uint32, log *zap.Logger) *Store[E] {
	buf := *values
	*values = nil
	s := &Store[E]{
		isArray:   true,
		capacity:  newCapacity,
		values:    buf[:cap(buf)],
		numValues: uint32(len(buf)),
		log:       log,
	}
	if uint32(cap(buf)) < newCapacity {
		grown := make([]E, newCapacity)
		copy(grown, buf)
		s.values = grown
	}
	return s
}

// Size returns the number of live elements.
func (s *Store[E]) Size() uint32 {
	if s.isArray {
		return s.numValues
	}
	if s.root == nullIdx {
		return 0
	}
	return s.pool.nodes[s.root].weight
}

// IsArray reports whether the store is currently in array form.
func (s *Store[E]) IsArray() bool { return s.isArray }

// Logger returns the store's logger, for callers that create a new store
// (Clone, SplitAt, Merge) and want to carry the same sink forward.
func (s *Store[E]) Logger() *zap.Logger { return s.log }

// Capacity returns the number of slots currently backing the store: array
// capacity in array form, node-pool capacity in tree form.
func (s *Store[E]) Capacity() uint32 {
	if s.isArray {
		return s.capacity
	}
	return s.pool.cap()
}

// Clear empties the store logically without releasing buffers.
func (s *Store[E]) Clear() {
	if s.isArray {
		s.start = 0
		s.numValues = 0
		return
	}
	if s.root != nullIdx {
		s.freeSubtree(s.root)
	}
	s.root = nullIdx
}

// Destroy releases container-owned storage. Pointees of pointer-valued
// elements are untouched; see FreeItems for releasing those explicitly
// first.
func (s *Store[E]) Destroy() {
	s.values = nil
	s.pool = nil
	s.root = nullIdx
	s.start = 0
	s.numValues = 0
	s.capacity = 0
}

func (s *Store[E]) freeSubtree(idx uint32) {
	n := &s.pool.nodes[idx]
	left, right := n.left, n.right
	s.pool.free(idx)
	if left != nullIdx {
		s.freeSubtree(left)
	}
	if right != nullIdx {
		s.freeSubtree(right)
	}
}

// MemorySize returns the approximate number of heap bytes owned by the
// store's backing buffer, excluding the pointees of pointer-valued
// elements.
func (s *Store[E]) MemorySize() uintptr {
	var zero E
	elemSize := unsafe.Sizeof(zero)
	if s.isArray {
		return uintptr(s.Capacity()) * elemSize
	}
	var nodeZero treeNode[E]
	return uintptr(s.Capacity()) * unsafe.Sizeof(nodeZero)
}

// Fetch returns a pointer to the value at logical position i, valid until
// the next structural mutation.
func (s *Store[E]) Fetch(i uint32) (*E, bool) {
	if i >= s.Size() {
		return nil, false
	}
	if s.isArray {
		return &s.values[s.start+i], true
	}
	return s.fetchTree(s.root, i), true
}

// fetchTree descends using subtree weights to skip whole subtrees, the
// same rank-descent shape as ajwerner-btree/orderstat's Nth, specialized
// to a binary tree.
func (s *Store[E]) fetchTree(idx uint32, i uint32) *E {
	n := &s.pool.nodes[idx]
	leftWeight := uint32(0)
	if n.left != nullIdx {
		leftWeight = s.pool.nodes[n.left].weight
	}
	switch {
	case i < leftWeight:
		return s.fetchTree(n.left, i)
	case i == leftWeight:
		return &n.value
	default:
		return s.fetchTree(n.right, i-leftWeight-1)
	}
}

// Set overwrites the value at logical position i in place; it never
// changes the structure.
func (s *Store[E]) Set(i uint32, value E) bool {
	if i >= s.Size() {
		return false
	}
	if s.isArray {
		s.values[s.start+i] = value
		return true
	}
	ptr := s.fetchTree(s.root, i)
	*ptr = value
	return true
}

func maxu32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
