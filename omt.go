// Package omt implements an Order Maintenance Tree: an in-memory mutable
// ordered sequence supporting positional access, ordered insertion and
// deletion guided by a caller-supplied comparator, and bulk construction
// and splitting. It is meant as a building block for a storage engine's
// leaf-level indexing structures, where many small ordered collections
// need to be maintained with predictable latency and low overhead.
//
// An OMT transparently adapts between two internal representations: a
// packed sorted array (cheap for freshly built or append/prepend-only
// sequences) and a weight-balanced binary tree over an index-addressed
// node pool (needed once mutation happens away from either end). See
// internal/store for the representations themselves.
package omt

import "github.com/banfarns666/omt/internal/store"

// OMT is an ordered sequence of E, instantiated for one specific output
// form O via the Copyout implementation C (ByValue[E] or ByRef[E]).
type OMT[E, O any, C Copyout[E, O]] struct {
	s *store.Store[E]
}

// Create returns an empty OMT.
func Create[E, O any, C Copyout[E, O]](opts ...Option) *OMT[E, O, C] {
	c := resolveConfig(opts)
	return &OMT[E, O, C]{s: store.NewEmpty[E](c.log)}
}

// CreateNoArray returns an empty OMT with no backing allocation. In Go, a
// nil slice already carries no allocation and zero capacity, so this is
// equivalent to Create; it exists to mirror omt-tmpl.h's two constructors
// for callers translating from that API.
func CreateNoArray[E, O any, C Copyout[E, O]](opts ...Option) *OMT[E, O, C] {
	return Create[E, O, C](opts...)
}

// CreateFromSortedArray copies values, which must already be sorted per
// the caller's intended order, into a new array-form OMT.
func CreateFromSortedArray[E, O any, C Copyout[E, O]](values []E, opts ...Option) *OMT[E, O, C] {
	c := resolveConfig(opts)
	return &OMT[E, O, C]{s: store.NewFromSorted(values, c.log)}
}

// CreateStealSortedArray takes ownership of *values, which must already
// be sorted and have capacity newCapacity; *values is set to nil on
// return and the caller must not use it again.
func CreateStealSortedArray[E, O any, C Copyout[E, O]](values *[]E, newCapacity uint32, opts ...Option) *OMT[E, O, C] {
	c := resolveConfig(opts)
	return &OMT[E, O, C]{s: store.NewSteal(values, newCapacity, c.log)}
}

// Clone returns a value-wise copy of src: array form if src is array
// form, tree form otherwise. If E is a pointer type, pointees are not
// duplicated; see DeepClone.
func Clone[E, O any, C Copyout[E, O]](src *OMT[E, O, C]) *OMT[E, O, C] {
	return &OMT[E, O, C]{s: src.s.Clone(src.s.Logger())}
}

// DeepClone returns a copy of src in which deepCopy has been applied to
// every element on the way in, for element types (typically pointers)
// whose pointee must be duplicated rather than shared.
func DeepClone[E, O any, C Copyout[E, O]](src *OMT[E, O, C], deepCopy func(E) E) *OMT[E, O, C] {
	dst := Create[E, O, C](WithLogger(src.s.Logger()))
	_ = src.s.IterateRange(0, src.s.Size(), func(v *E, idx uint32) error {
		dst.s.InsertAt(deepCopy(*v), idx)
		return nil
	})
	return dst
}

// Size returns the number of elements in the OMT.
func (t *OMT[E, O, C]) Size() uint32 { return t.s.Size() }

// MemorySize returns the approximate number of heap bytes owned by the
// OMT's backing storage, excluding the pointees of pointer-valued
// elements.
func (t *OMT[E, O, C]) MemorySize() uintptr { return t.s.MemorySize() }

// Fetch returns the element at logical position i.
func (t *OMT[E, O, C]) Fetch(i uint32) (O, error) {
	var zero O
	ptr, ok := t.s.Fetch(i)
	if !ok {
		return zero, ErrInvalidArgument
	}
	var c C
	return c.CopyOut(ptr), nil
}

// InsertAt inserts value at position i, shifting elements at or after i
// one position later. i must be <= Size().
func (t *OMT[E, O, C]) InsertAt(value E, i uint32) error {
	if i > t.s.Size() {
		return ErrInvalidArgument
	}
	t.s.InsertAt(value, i)
	return nil
}

// SetAt overwrites the element at position i without changing structure.
func (t *OMT[E, O, C]) SetAt(value E, i uint32) error {
	if !t.s.Set(i, value) {
		return ErrInvalidArgument
	}
	return nil
}

// DeleteAt removes the element at position i, shifting elements after i
// one position earlier.
func (t *OMT[E, O, C]) DeleteAt(i uint32) error {
	if i >= t.s.Size() {
		return ErrInvalidArgument
	}
	t.s.DeleteAt(i)
	return nil
}

// Insert locates the smallest i such that h(V[i]) > 0 and inserts value
// there. If h(V[j]) == 0 for some j, Insert does nothing and returns
// ErrKeyExists along with that j.
func (t *OMT[E, O, C]) Insert(value E, h Heaviside[E]) (uint32, error) {
	_, idx, found := t.s.FindZero(h)
	if found {
		return idx, ErrKeyExists
	}
	t.s.InsertAt(value, idx)
	return idx, nil
}

// FindZero returns the smallest i with h(V[i]) == 0. If no zero exists,
// it returns ErrNotFound; idx is still set to the smallest i with
// h(V[i]) > 0, or Size() if none.
func (t *OMT[E, O, C]) FindZero(h Heaviside[E]) (O, uint32, error) {
	var zero O
	ptr, idx, found := t.s.FindZero(h)
	if !found {
		return zero, idx, ErrNotFound
	}
	var c C
	return c.CopyOut(ptr), idx, nil
}

// Find locates an element by direction: direction > 0 returns the
// smallest i with h(V[i]) > 0; direction < 0 returns the largest i with
// h(V[i]) < 0. direction must not be 0.
func (t *OMT[E, O, C]) Find(h Heaviside[E], direction int) (O, uint32, error) {
	var zero O
	if direction == 0 {
		panic("omt: Find direction must be nonzero")
	}
	var ptr *E
	var idx uint32
	var found bool
	if direction > 0 {
		ptr, idx, found = t.s.FindPlus(h)
	} else {
		ptr, idx, found = t.s.FindMinus(h)
	}
	if !found {
		return zero, 0, ErrNotFound
	}
	var c C
	return c.CopyOut(ptr), idx, nil
}

// SplitAt leaves t holding V[0, i) and returns a freshly created OMT
// holding V[i, Size()).
func (t *OMT[E, O, C]) SplitAt(i uint32) (*OMT[E, O, C], error) {
	if i > t.s.Size() {
		return nil, ErrInvalidArgument
	}
	right := t.s.SplitAt(i, t.s.Logger())
	return &OMT[E, O, C]{s: right}, nil
}

// Merge concatenates left and right, in that order, into a freshly
// returned OMT. left and right must not be used again afterward. The
// caller guarantees right's elements sort after left's per cmp; Merge
// does not re-sort, it only concatenates. Builds tagged omtdebug verify
// that guarantee and panic if it is violated; other builds trust it
// silently, per the precondition's documented implicit, unenforced
// nature.
func Merge[E, O any, C Copyout[E, O]](left, right *OMT[E, O, C], cmp func(a, b *E) int) *OMT[E, O, C] {
	assertMergeOrder(left.s, right.s, cmp)
	merged := store.Merge(left.s, right.s, left.s.Logger())
	left.s, right.s = nil, nil
	return &OMT[E, O, C]{s: merged}
}

// Clear empties the OMT logically without releasing backing buffers.
func (t *OMT[E, O, C]) Clear() { t.s.Clear() }

// Destroy releases the OMT's container-owned storage. The pointees of
// pointer-valued elements are untouched; call FreeItems first if they
// need releasing.
func (t *OMT[E, O, C]) Destroy() { t.s.Destroy() }
