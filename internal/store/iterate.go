package store

// IterateRange calls f on each value at logical index [l, r), left to
// right, stopping and propagating the first non-nil error f returns.
// Callers are responsible for validating l <= r <= Size().
func (s *Store[E]) IterateRange(l, r uint32, f func(value *E, idx uint32) error) error {
	if s.isArray {
		for i := l; i < r; i++ {
			if err := f(&s.values[s.start+i], i); err != nil {
				return err
			}
		}
		return nil
	}
	if l >= r {
		return nil
	}
	st := &idxStack{}
	s.pushPathToRank(s.root, l, st)
	for i := l; i < r; i++ {
		idx := s.popVisit(st)
		n := &s.pool.nodes[idx]
		if err := f(&n.value, i); err != nil {
			return err
		}
	}
	return nil
}

// FreeItems calls release on every element, left to right, then empties
// the store. It is the Go analogue of omt-tmpl.h's free_items: the OMT
// never frees pointee storage itself, so a caller whose element type is a
// pointer must pass the release function explicitly.
func (s *Store[E]) FreeItems(release func(E)) {
	_ = s.IterateRange(0, s.Size(), func(v *E, idx uint32) error {
		release(*v)
		return nil
	})
	s.Clear()
}
