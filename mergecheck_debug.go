//go:build omtdebug

package omt

import "github.com/banfarns666/omt/internal/store"

// assertMergeOrder panics if left's last element does not sort at or
// before right's first element under cmp. Only present in builds tagged
// omtdebug; see mergecheck_release.go for the trusting counterpart.
func assertMergeOrder[E any](left, right *store.Store[E], cmp func(a, b *E) int) {
	if !store.AssertMergeOrder(left, right, cmp) {
		panic("omt: Merge precondition violated: left's last element does not sort before right's first")
	}
}
