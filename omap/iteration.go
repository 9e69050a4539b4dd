package omap

import "github.com/OndrejPetrzilka/Rock.Collections/api"

// Iterator walks the map in iteration order. It captures the
// map's structural version on creation, a structural mutation
// makes the next call to Next panic with
// api.ErrorConcurrentModification.
type Iterator[K comparable, V any] struct {
	m       *Map[K, V]
	index   int32
	reverse bool
	version uint32
}

// Iterate return an iterator positioned at the first entry in
// iteration order, or the last when reverse is true.
func (m *Map[K, V]) Iterate(reverse bool) *Iterator[K, V] {
	index := m.first
	if reverse {
		index = m.last
	}
	return &Iterator[K, V]{m: m, index: index, reverse: reverse, version: m.version}
}

// IterateFrom return an iterator positioned at key, seeking in
// O(1). The iterator is exhausted when key is absent.
func (m *Map[K, V]) IterateFrom(key K, reverse bool) *Iterator[K, V] {
	return &Iterator[K, V]{m: m, index: m.lookup(key), reverse: reverse, version: m.version}
}

// Next return the next entry, ok is false once the iterator is
// exhausted.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if it.version != it.m.version {
		panic(api.ErrorConcurrentModification)
	}
	if it.index == nilentry {
		return key, value, false
	}
	e := &it.m.entries[it.index]
	key, value = e.key, e.value
	if it.reverse {
		it.index = e.orderprev
	} else {
		it.index = e.ordernext
	}
	return key, value, true
}

// Ascend call fn for every entry in iteration order until fn
// returns false. fn must not mutate the map.
func (m *Map[K, V]) Ascend(fn func(key K, value V) bool) {
	version := m.version
	for index := m.first; index != nilentry; index = m.entries[index].ordernext {
		if fn(m.entries[index].key, m.entries[index].value) == false {
			return
		}
		if version != m.version {
			panic(api.ErrorConcurrentModification)
		}
	}
}

// Descend call fn for every entry in reverse iteration order until
// fn returns false. fn must not mutate the map.
func (m *Map[K, V]) Descend(fn func(key K, value V) bool) {
	version := m.version
	for index := m.last; index != nilentry; index = m.entries[index].orderprev {
		if fn(m.entries[index].key, m.entries[index].value) == false {
			return
		}
		if version != m.version {
			panic(api.ErrorConcurrentModification)
		}
	}
}

// Keys return all keys in iteration order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.n_count)
	for index := m.first; index != nilentry; index = m.entries[index].ordernext {
		keys = append(keys, m.entries[index].key)
	}
	return keys
}

// Values return all values in iteration order.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.n_count)
	for index := m.first; index != nilentry; index = m.entries[index].ordernext {
		values = append(values, m.entries[index].value)
	}
	return values
}
