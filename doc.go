// Package collections provide allocation-averse collection types
// for performance sensitive applications: an insertion-ordered
// dictionary and set, and a comparator-ordered sorted set.
//
// The adapter types here are thin conveniences. All structural
// work happens in the engines: rbtree, a red-black tree over a
// flat slot arena, and omap, a hash table threaded with an
// intrusive order list over the same kind of arena. Both recycle
// vacated slots through free lists and invalidate in-flight
// iterators and handles with a cheap structural version counter.
package collections
