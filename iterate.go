package omt

// Iterate calls f on every element, left to right, stopping and
// returning the first error f returns.
func (t *OMT[E, O, C]) Iterate(f func(value O, idx uint32) error) error {
	var c C
	return t.s.IterateRange(0, t.s.Size(), func(v *E, idx uint32) error {
		return f(c.CopyOut(v), idx)
	})
}

// IterateOnRange calls f on every element at logical index [l, r), left
// to right. r must be <= Size().
func (t *OMT[E, O, C]) IterateOnRange(l, r uint32, f func(value O, idx uint32) error) error {
	if r > t.s.Size() || l > r {
		return ErrInvalidArgument
	}
	var c C
	return t.s.IterateRange(l, r, func(v *E, idx uint32) error {
		return f(c.CopyOut(v), idx)
	})
}

// IteratePtr calls f with a pointer into internal storage for every
// element, left to right, regardless of the OMT's Copyout instantiation.
// The pointer is valid only for the duration of the call to f.
func (t *OMT[E, O, C]) IteratePtr(f func(value *E, idx uint32) error) error {
	return t.s.IterateRange(0, t.s.Size(), f)
}

// FreeItems calls release on every element, left to right, then empties
// the OMT. Use this before Destroy when E is a pointer type whose
// pointees need releasing; the OMT itself never frees them.
func (t *OMT[E, O, C]) FreeItems(release func(E)) {
	t.s.FreeItems(release)
}
