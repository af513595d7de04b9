// Package store implements the dual array/tree representation that backs
// the OMT: a node allocator with an index-based free list, the two storage
// forms, the weight-balance rebalance engine, and the comparator-driven
// search family that both forms share.
package store

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// errPoolExhausted is wrapped with context and raised as a fatal panic
// when the node pool cannot grow to satisfy a request: there is no
// defined recovery from a failed allocation.
var errPoolExhausted = errors.New("omt: node pool exhausted")

// nullIdx is the sentinel "no child" / "end of free list" index, the
// all-ones pattern of the index width (omt-tmpl.h's NODE_NULL).
const nullIdx = ^uint32(0)

// minTreeCapacity is the smallest pool size allocated on first conversion
// to tree form.
const minTreeCapacity = 2

// treeNode is a single node slot. weight is 1 plus the weight of both
// children; left and right are nullIdx for absent children. A free slot
// threads the next free index through left.
type treeNode[E any] struct {
	weight uint32
	left   uint32
	right  uint32
	value  E
}

// nodePool is a contiguous arena of node slots addressed by uint32 index,
// with a singly-linked free list threaded through free slots' left field.
// freeSlots tracks the free list's length incrementally so ensureFree
// never has to walk it.
type nodePool[E any] struct {
	nodes     []treeNode[E]
	freeHead  uint32
	freeSlots uint32
	log       *zap.Logger
}

// newNodePool allocates a pool of the given capacity (at least
// minTreeCapacity) with every slot on the free list.
func newNodePool[E any](capacity uint32) *nodePool[E] {
	if capacity < minTreeCapacity {
		capacity = minTreeCapacity
	}
	np := &nodePool[E]{nodes: make([]treeNode[E], capacity)}
	np.threadFreeList(0, nullIdx)
	np.freeSlots = capacity
	return np
}

// threadFreeList links slots [from, len(nodes)) into a free chain ending in
// tail, and makes that chain the pool's free list.
func (np *nodePool[E]) threadFreeList(from uint32, tail uint32) {
	n := uint32(len(np.nodes))
	if from >= n {
		np.freeHead = tail
		return
	}
	for i := from; i < n; i++ {
		if i+1 < n {
			np.nodes[i].left = i + 1
		} else {
			np.nodes[i].left = tail
		}
	}
	np.freeHead = from
}

func (np *nodePool[E]) cap() uint32 { return uint32(len(np.nodes)) }

// grow extends the pool to newCapacity, threading the new slots onto the
// front of the existing free list. newCapacity must exceed the current
// capacity.
func (np *nodePool[E]) grow(newCapacity uint32) {
	old := np.cap()
	if newCapacity <= old {
		return
	}
	grown := make([]treeNode[E], newCapacity)
	copy(grown, np.nodes)
	np.nodes = grown
	np.threadFreeList(old, np.freeHead)
	np.freeSlots += newCapacity - old
}

// ensureFree guarantees at least n free slots, growing geometrically
// (doubling, rounded up to the next power of two) if needed.
func (np *nodePool[E]) ensureFree(n uint32) {
	if np.freeSlots >= n {
		return
	}
	live := np.cap() - np.freeSlots
	need := live + n
	if need < live {
		np.logFatal("capacity overflow", live, n)
		panic(errors.Wrapf(errPoolExhausted, "capacity overflow: live=%d requested=%d", live, n))
	}
	newCap := nextPow2(need)
	if newCap < need {
		np.logFatal("capacity overflow rounding to power of two", live, n)
		panic(errors.Wrapf(errPoolExhausted, "capacity overflow rounding to power of two: need=%d", need))
	}
	np.grow(newCap)
}

func (np *nodePool[E]) logFatal(msg string, live, requested uint32) {
	if np.log == nil {
		return
	}
	np.log.Error("omt: node pool exhausted",
		zap.String("reason", msg), zap.Uint32("live", live), zap.Uint32("requested", requested))
}

// allocate pops a slot off the free list, growing the pool first if the
// free list is exhausted. The returned slot's fields are zeroed except
// that the caller is expected to overwrite them immediately.
func (np *nodePool[E]) allocate() uint32 {
	if np.freeHead == nullIdx {
		np.grow(nextPow2(np.cap() + 1))
	}
	idx := np.freeHead
	np.freeHead = np.nodes[idx].left
	np.nodes[idx] = treeNode[E]{}
	np.freeSlots--
	return idx
}

// free returns idx to the free list. The caller must not reuse idx
// afterward.
func (np *nodePool[E]) free(idx uint32) {
	np.nodes[idx] = treeNode[E]{left: np.freeHead, right: nullIdx}
	np.freeHead = idx
	np.freeSlots++
}

// nextPow2 returns the smallest power of two >= n, or 0 if n is 0.
func nextPow2(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	p := uint32(1)
	for p < n {
		p <<= 1
	}
	return p
}
