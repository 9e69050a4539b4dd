package collections

import "cmp"

import s "github.com/bnclabs/gosettings"

import "github.com/OndrejPetrzilka/Rock.Collections/api"
import "github.com/OndrejPetrzilka/Rock.Collections/rbtree"

// SortedSet is a set that iterates in comparator order. All
// structural work is delegated to the rbtree engine.
type SortedSet[T any] struct {
	engine *rbtree.Tree[T]
}

// NewSortedSet create an empty set ordered by compare, with a
// capacity hint, zero for on-demand growth.
func NewSortedSet[T any](name string, compare api.CompareFn[T], capacity int64) *SortedSet[T] {
	setts := s.Settings{"capacity": capacity}
	return &SortedSet[T]{engine: rbtree.New[T](name, compare, setts)}
}

// NewSortedSetNatural create an empty set of naturally ordered
// values.
func NewSortedSetNatural[T cmp.Ordered](name string, capacity int64) *SortedSet[T] {
	return NewSortedSet[T](name, api.Compare[T](), capacity)
}

// NewSortedSetFrom create a set holding the distinct values of the
// slice. The result does not depend on the order of the slice.
func NewSortedSetFrom[T any](name string, compare api.CompareFn[T], values []T) *SortedSet[T] {
	return &SortedSet[T]{engine: rbtree.NewFromSlice[T](name, compare, values, nil)}
}

// Add value to the set. Return true when it was not yet present.
func (set *SortedSet[T]) Add(value T) bool {
	return set.engine.Insert(value)
}

// Has return whether value is present.
func (set *SortedSet[T]) Has(value T) bool {
	return set.engine.Has(value)
}

// Remove value from the set. Return false when absent.
func (set *SortedSet[T]) Remove(value T) bool {
	return set.engine.Delete(value)
}

// Count return the number of values.
func (set *SortedSet[T]) Count() int64 {
	return set.engine.Count()
}

// Clear remove all values, retaining capacity.
func (set *SortedSet[T]) Clear() {
	set.engine.Clear()
}

// TrimToSize shrink the backing arena to the live value count.
func (set *SortedSet[T]) TrimToSize() {
	set.engine.TrimToSize()
}

// Min return the smallest value.
func (set *SortedSet[T]) Min() (T, bool) {
	return set.engine.Min()
}

// Max return the largest value.
func (set *SortedSet[T]) Max() (T, bool) {
	return set.engine.Max()
}

// Next return the smallest member strictly greater than value,
// which need not be a member.
func (set *SortedSet[T]) Next(value T) (T, bool) {
	if nd := set.engine.FindNext(value); nd != nil {
		return nd.Item(), true
	}
	var empty T
	return empty, false
}

// Previous return the largest member strictly smaller than value,
// which need not be a member.
func (set *SortedSet[T]) Previous(value T) (T, bool) {
	if nd := set.engine.FindPrevious(value); nd != nil {
		return nd.Item(), true
	}
	var empty T
	return empty, false
}

// ToSlice return all values in ascending order.
func (set *SortedSet[T]) ToSlice() []T {
	return set.engine.ToSlice()
}

// Each call fn for every value in ascending order until fn returns
// false.
func (set *SortedSet[T]) Each(fn func(value T) bool) {
	set.engine.Ascend(fn)
}

// EachReverse call fn for every value in descending order until fn
// returns false.
func (set *SortedSet[T]) EachReverse(fn func(value T) bool) {
	set.engine.Descend(fn)
}

// Iterate return an iterator over the values, ascending or
// descending.
func (set *SortedSet[T]) Iterate(reverse bool) *rbtree.Iterator[T] {
	return set.engine.Iterate(reverse)
}
