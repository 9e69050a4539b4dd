// Package api define types, errors and contracts common to all
// collection engines implemented by this module.
package api

import "cmp"

// CompareFn imposes a total ordering over items of type T. Return
// value is negative when a sorts before b, zero when a and b are
// equal, positive when a sorts after b.
type CompareFn[T any] func(a, b T) int

// HashFn computes a 64-bit hash for key. Engines fold the result
// down to 31 bits before bucketing. Two keys that compare equal
// must hash to the same value.
type HashFn[K any] func(key K) uint64

// Compare return the natural ordering for ordered types, for use
// as the default CompareFn.
func Compare[T cmp.Ordered]() CompareFn[T] {
	return func(a, b T) int {
		return cmp.Compare(a, b)
	}
}
