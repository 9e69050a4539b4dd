package rbtree

import "github.com/OndrejPetrzilka/Rock.Collections/api"

// Iterator walks the tree in sort order. It captures the tree's
// structural version on creation, a structural mutation makes the
// next call to Next panic with api.ErrorConcurrentModification.
type Iterator[T any] struct {
	tree    *Tree[T]
	index   int32
	reverse bool
	version uint32
}

// Iterate return an iterator positioned at the smallest item, or
// the largest when reverse is true.
func (t *Tree[T]) Iterate(reverse bool) *Iterator[T] {
	index := t.minslot(t.root)
	if reverse {
		index = t.maxslot(t.root)
	}
	return &Iterator[T]{tree: t, index: index, reverse: reverse, version: t.version}
}

// Next return the next item, ok is false once the iterator is
// exhausted.
func (it *Iterator[T]) Next() (item T, ok bool) {
	if it.version != it.tree.version {
		panic(api.ErrorConcurrentModification)
	}
	if it.index == nilslot {
		return item, false
	}
	item = it.tree.items[it.index]
	if it.reverse {
		it.index = it.tree.predecessor(it.index)
	} else {
		it.index = it.tree.successor(it.index)
	}
	return item, true
}

// Ascend call fn for every item in ascending order until fn
// returns false. fn must not mutate the tree.
func (t *Tree[T]) Ascend(fn func(item T) bool) {
	version := t.version
	for index := t.minslot(t.root); index != nilslot; index = t.successor(index) {
		if fn(t.items[index]) == false {
			return
		}
		if version != t.version {
			panic(api.ErrorConcurrentModification)
		}
	}
}

// Descend call fn for every item in descending order until fn
// returns false. fn must not mutate the tree.
func (t *Tree[T]) Descend(fn func(item T) bool) {
	version := t.version
	for index := t.maxslot(t.root); index != nilslot; index = t.predecessor(index) {
		if fn(t.items[index]) == false {
			return
		}
		if version != t.version {
			panic(api.ErrorConcurrentModification)
		}
	}
}

// ToSlice return all items in ascending order.
func (t *Tree[T]) ToSlice() []T {
	items := make([]T, 0, t.n_count)
	for index := t.minslot(t.root); index != nilslot; index = t.successor(index) {
		items = append(items, t.items[index])
	}
	return items
}
