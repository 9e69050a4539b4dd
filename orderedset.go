package collections

import s "github.com/bnclabs/gosettings"

import "github.com/OndrejPetrzilka/Rock.Collections/omap"

// OrderedSet is a value-only set that iterates in insertion order,
// as amended by the Move* calls. Backed by the omap engine with an
// empty payload.
type OrderedSet[T comparable] struct {
	engine *omap.Map[T, struct{}]
}

// NewOrderedSet create an empty set with a capacity hint, zero for
// on-demand growth.
func NewOrderedSet[T comparable](name string, capacity int64) *OrderedSet[T] {
	setts := s.Settings{"capacity": capacity}
	return &OrderedSet[T]{engine: omap.NewMap[T, struct{}](name, setts)}
}

// NewOrderedSetFrom create a set holding the distinct values of
// the slice, preserving first-occurrence order.
func NewOrderedSetFrom[T comparable](name string, values []T) *OrderedSet[T] {
	set := NewOrderedSet[T](name, int64(len(values)))
	for _, value := range values {
		set.engine.Set(value, struct{}{})
	}
	return set
}

// Add value to the set. Return true when it was not yet present.
func (set *OrderedSet[T]) Add(value T) bool {
	return set.engine.Set(value, struct{}{})
}

// Has return whether value is present.
func (set *OrderedSet[T]) Has(value T) bool {
	return set.engine.Has(value)
}

// Remove value from the set. Return false when absent.
func (set *OrderedSet[T]) Remove(value T) bool {
	return set.engine.Delete(value)
}

// Count return the number of values.
func (set *OrderedSet[T]) Count() int64 {
	return set.engine.Count()
}

// Clear remove all values, retaining capacity.
func (set *OrderedSet[T]) Clear() {
	set.engine.Clear()
}

// TrimToSize shrink the backing arena to the live value count.
func (set *OrderedSet[T]) TrimToSize() {
	set.engine.TrimToSize()
}

// MoveFirst make value the first in iteration order.
func (set *OrderedSet[T]) MoveFirst(value T) bool {
	return set.engine.MoveFirst(value)
}

// MoveLast make value the last in iteration order.
func (set *OrderedSet[T]) MoveLast(value T) bool {
	return set.engine.MoveLast(value)
}

// MoveBefore place value immediately before mark.
func (set *OrderedSet[T]) MoveBefore(value, mark T) bool {
	return set.engine.MoveBefore(value, mark)
}

// MoveAfter place value immediately after mark.
func (set *OrderedSet[T]) MoveAfter(value, mark T) bool {
	return set.engine.MoveAfter(value, mark)
}

// ToSlice return all values in iteration order.
func (set *OrderedSet[T]) ToSlice() []T {
	return set.engine.Keys()
}

// Each call fn for every value in iteration order until fn returns
// false.
func (set *OrderedSet[T]) Each(fn func(value T) bool) {
	set.engine.Ascend(func(key T, _ struct{}) bool {
		return fn(key)
	})
}

// EachReverse call fn for every value in reverse iteration order
// until fn returns false.
func (set *OrderedSet[T]) EachReverse(fn func(value T) bool) {
	set.engine.Descend(func(key T, _ struct{}) bool {
		return fn(key)
	})
}
