//go:build !omtdebug

package omt

import "github.com/banfarns666/omt/internal/store"

// assertMergeOrder is a no-op outside omtdebug builds: the merge
// precondition is documented as the caller's responsibility and is not
// enforced by default.
func assertMergeOrder[E any](left, right *store.Store[E], cmp func(a, b *E) int) {}
