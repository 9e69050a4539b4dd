// Package rbtree implement an in-memory sorted collection as a
// red-black tree over a flat, reusable slot arena.
//
// Nodes are addressed by integer index into parallel item and slot
// arrays instead of heap references, vacated slots are recycled
// through a free list, so mutation after initial growth does not
// allocate. Insertion uses top-down 2-3-4 splitting and deletion a
// top-down pass that never reaches a pure 2-node, both after
// Sedgewick. Iterators and node handles are stamped with the
// tree's structural version and fail fast once it changes.
package rbtree
