package rbtree

import "github.com/OndrejPetrzilka/Rock.Collections/api"

// Node is a position handle into the tree. It does not own the
// slot it points to, it is a (tree, position, version) relation
// revalidated on every access: once the tree underwent a
// structural mutation, using the handle panics with
// api.ErrorConcurrentModification.
type Node[T any] struct {
	tree    *Tree[T]
	index   int32
	version uint32
}

func (t *Tree[T]) node(index int32) *Node[T] {
	if index == nilslot {
		return nil
	}
	return &Node[T]{tree: t, index: index, version: t.version}
}

// First return a handle to the smallest item, nil when empty.
func (t *Tree[T]) First() *Node[T] {
	return t.node(t.minslot(t.root))
}

// Last return a handle to the largest item, nil when empty.
func (t *Tree[T]) Last() *Node[T] {
	return t.node(t.maxslot(t.root))
}

// FindNode return a handle to the item equal to the given one, nil
// when absent.
func (t *Tree[T]) FindNode(item T) *Node[T] {
	return t.node(t.findslot(item))
}

// FindNext return a handle to the smallest item strictly greater
// than the given one, which need not be present. Nil when no such
// item exists.
func (t *Tree[T]) FindNext(item T) *Node[T] {
	return t.node(t.findnext(item))
}

// FindPrevious return a handle to the largest item strictly
// smaller than the given one, which need not be present. Nil when
// no such item exists.
func (t *Tree[T]) FindPrevious(item T) *Node[T] {
	return t.node(t.findprevious(item))
}

func (nd *Node[T]) validate() {
	if nd.version != nd.tree.version {
		panic(api.ErrorConcurrentModification)
	}
}

// Item return the item at the handle's position.
func (nd *Node[T]) Item() T {
	nd.validate()
	return nd.tree.items[nd.index]
}

// Next return a handle to the in-order successor, nil at the end.
func (nd *Node[T]) Next() *Node[T] {
	nd.validate()
	return nd.tree.node(nd.tree.successor(nd.index))
}

// Prev return a handle to the in-order predecessor, nil at the
// beginning.
func (nd *Node[T]) Prev() *Node[T] {
	nd.validate()
	return nd.tree.node(nd.tree.predecessor(nd.index))
}
