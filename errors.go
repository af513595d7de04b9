package omt

import "github.com/pkg/errors"

// Sentinel errors returned by the OMT's mutation and search operations,
// in the style of npillmayer-cords/btree/errors.go's Err* sentinel block.
var (
	// ErrKeyExists is returned by Insert when the comparator reports a
	// zero for some existing element.
	ErrKeyExists = errors.New("omt: key exists")
	// ErrNotFound is returned by FindZero and Find when no element
	// satisfies the search predicate.
	ErrNotFound = errors.New("omt: not found")
	// ErrInvalidArgument is returned when an index argument is out of
	// range. The OMT is left unchanged.
	ErrInvalidArgument = errors.New("omt: invalid argument")
)
