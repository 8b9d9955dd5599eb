package array

import "unsafe"

// Equality decides whether a stored element matches a query.
type Equality[T any] func(stored, query T) bool

// Equal matches elements by value.
func Equal[T comparable](stored, query T) bool {
	return stored == query
}

// SameString matches only the same string instance: both values must share
// the backing bytes, not merely hold equal text. Empty strings are always
// the same instance.
func SameString(stored, query string) bool {
	if len(stored) != len(query) {
		return false
	}
	if len(stored) == 0 {
		return true
	}
	return unsafe.StringData(stored) == unsafe.StringData(query)
}

// SamePointer matches pointers to the same variable.
func SamePointer[E any](stored, query *E) bool {
	return stored == query
}
