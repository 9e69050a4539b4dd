// Package omap implement an in-memory hash map that preserves
// insertion order.
//
// A separate-chaining hash table and an intrusive doubly-linked
// order list share one flat entry arena addressed by integer
// index. Vacated entries are recycled through a free list, so
// mutation after initial growth does not allocate. Besides O(1)
// average lookup, insert and remove, the order list gives O(1)
// move-to-front, move-to-back and relative repositioning, plus
// bidirectional iteration from either end or any present key.
// Iterators and node handles are stamped with the map's structural
// version and fail fast once it changes.
package omap
