package omap

import "github.com/OndrejPetrzilka/Rock.Collections/api"

// Node is a position handle into the map. It does not own the
// entry it points to, it is a (map, position, version) relation
// revalidated on every access: once the map underwent a structural
// mutation, using the handle panics with
// api.ErrorConcurrentModification.
type Node[K comparable, V any] struct {
	m       *Map[K, V]
	index   int32
	version uint32
}

func (m *Map[K, V]) node(index int32) *Node[K, V] {
	if index == nilentry {
		return nil
	}
	return &Node[K, V]{m: m, index: index, version: m.version}
}

// First return a handle to the first entry in iteration order, nil
// when empty.
func (m *Map[K, V]) First() *Node[K, V] {
	return m.node(m.first)
}

// Last return a handle to the last entry in iteration order, nil
// when empty.
func (m *Map[K, V]) Last() *Node[K, V] {
	return m.node(m.last)
}

// FindNode return a handle to key's entry, nil when absent.
func (m *Map[K, V]) FindNode(key K) *Node[K, V] {
	return m.node(m.lookup(key))
}

func (nd *Node[K, V]) validate() {
	if nd.version != nd.m.version {
		panic(api.ErrorConcurrentModification)
	}
}

// Key return the key at the handle's position.
func (nd *Node[K, V]) Key() K {
	nd.validate()
	return nd.m.entries[nd.index].key
}

// Value return the value at the handle's position.
func (nd *Node[K, V]) Value() V {
	nd.validate()
	return nd.m.entries[nd.index].value
}

// SetValue overwrite the value in place. Order and outstanding
// handles are unaffected.
func (nd *Node[K, V]) SetValue(value V) {
	nd.validate()
	nd.m.entries[nd.index].value = value
	nd.m.n_updates++
}

// Next return a handle to the following entry in iteration order,
// nil at the end.
func (nd *Node[K, V]) Next() *Node[K, V] {
	nd.validate()
	return nd.m.node(nd.m.entries[nd.index].ordernext)
}

// Prev return a handle to the preceding entry in iteration order,
// nil at the beginning.
func (nd *Node[K, V]) Prev() *Node[K, V] {
	nd.validate()
	return nd.m.node(nd.m.entries[nd.index].orderprev)
}
