package omap

// Order-list surgery. The intrusive doubly-linked list threads all
// live entries once each, in insertion order as amended by the
// Move* calls. Every helper is O(1): detach the entry, patch its
// neighbors and the head/tail trackers, splice it at the target.

func (m *Map[K, V]) linklast(index int32) {
	m.entries[index].orderprev = m.last
	m.entries[index].ordernext = nilentry
	if m.last != nilentry {
		m.entries[m.last].ordernext = index
	} else {
		m.first = index
	}
	m.last = index
}

func (m *Map[K, V]) linkfirst(index int32) {
	m.entries[index].ordernext = m.first
	m.entries[index].orderprev = nilentry
	if m.first != nilentry {
		m.entries[m.first].orderprev = index
	} else {
		m.last = index
	}
	m.first = index
}

func (m *Map[K, V]) linkbefore(index, mark int32) {
	previous := m.entries[mark].orderprev
	m.entries[index].orderprev = previous
	m.entries[index].ordernext = mark
	m.entries[mark].orderprev = index
	if previous != nilentry {
		m.entries[previous].ordernext = index
	} else {
		m.first = index
	}
}

func (m *Map[K, V]) linkafter(index, mark int32) {
	next := m.entries[mark].ordernext
	m.entries[index].ordernext = next
	m.entries[index].orderprev = mark
	m.entries[mark].ordernext = index
	if next != nilentry {
		m.entries[next].orderprev = index
	} else {
		m.last = index
	}
}

func (m *Map[K, V]) unlinkorder(index int32) {
	previous, next := m.entries[index].orderprev, m.entries[index].ordernext
	if previous != nilentry {
		m.entries[previous].ordernext = next
	} else {
		m.first = next
	}
	if next != nilentry {
		m.entries[next].orderprev = previous
	} else {
		m.last = previous
	}
}

// MoveFirst make key the first entry in iteration order. Return
// whether key is present.
func (m *Map[K, V]) MoveFirst(key K) bool {
	index := m.lookup(key)
	if index == nilentry {
		return false
	}
	if m.first != index {
		m.version++
		m.unlinkorder(index)
		m.linkfirst(index)
		m.n_moves++
	}
	return true
}

// MoveLast make key the last entry in iteration order. Return
// whether key is present.
func (m *Map[K, V]) MoveLast(key K) bool {
	index := m.lookup(key)
	if index == nilentry {
		return false
	}
	if m.last != index {
		m.version++
		m.unlinkorder(index)
		m.linklast(index)
		m.n_moves++
	}
	return true
}

// MoveBefore place key immediately before mark in iteration order.
// A missing mark, or key equal to mark, is a no-op. The return
// value reports the key's own existence either way.
func (m *Map[K, V]) MoveBefore(key, mark K) bool {
	index := m.lookup(key)
	if index == nilentry {
		return false
	}
	target := m.lookup(mark)
	if target == nilentry || target == index {
		return true
	}
	if m.entries[index].ordernext != target {
		m.version++
		m.unlinkorder(index)
		m.linkbefore(index, target)
		m.n_moves++
	}
	return true
}

// MoveAfter place key immediately after mark in iteration order.
// A missing mark, or key equal to mark, is a no-op. The return
// value reports the key's own existence either way.
func (m *Map[K, V]) MoveAfter(key, mark K) bool {
	index := m.lookup(key)
	if index == nilentry {
		return false
	}
	target := m.lookup(mark)
	if target == nilentry || target == index {
		return true
	}
	if m.entries[index].orderprev != target {
		m.version++
		m.unlinkorder(index)
		m.linkafter(index, target)
		m.n_moves++
	}
	return true
}
