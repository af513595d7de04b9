package omt

// Heaviside is a comparator used by FindZero, Find, and Insert. Its sign
// must be monotonically non-decreasing along the OMT's in-order sequence:
// negative for a prefix, optionally zero over some middle region, then
// positive for a suffix. Callers close over whatever key they are
// comparing against.
//
// For a Heaviside function h, find behavior is characterized entirely by
// the shape of h's sign along V:
//
//	-...-          FindZero -> NOT_FOUND at idx Size(); Find(+1) -> NOT_FOUND; Find(-1) -> last
//	+...+          Find(-1) -> nothing; FindZero -> NOT_FOUND at idx 0
//	0...0          FindZero -> first zero
//	-...-0...0     FindZero -> first zero; Find(+1) -> NOT_FOUND
//	0...0+...+     FindZero -> first zero; Find(+1) -> first +
//	-...-+...+     FindZero -> NOT_FOUND at the + boundary; Find(+1)/Find(-1) bracket it
//	-...-0...0+...+ all three regions present
type Heaviside[E any] func(stored *E) int
