package rbtree

// nilslot is the index sentinel playing the role of a nil pointer.
const nilslot = int32(-1)

// slot hold the structural fields of one tree node. Item payloads
// live in a parallel array, indexed by the same position. A slot is
// either live, reachable from the root, or threaded into the free
// list through its parent field.
type slot struct {
	left   int32
	right  int32
	parent int32
	red    bool
}

func (t *Tree[T]) obtainslot() int32 {
	if t.free != nilslot {
		index := t.free
		t.free = t.slots[index].parent
		t.nfree--
		return index
	}
	if int(t.used) == len(t.slots) {
		t.grow()
	}
	index := t.used
	t.used++
	return index
}

func (t *Tree[T]) returnslot(index int32) {
	var empty T
	t.items[index] = empty // release the payload
	t.slots[index] = slot{left: nilslot, right: nilslot, parent: t.free}
	t.free = index
	t.nfree++
	t.n_frees++
}

func (t *Tree[T]) grow() {
	capacity := int64(len(t.slots)) * 2
	if capacity < t.mincapacity {
		capacity = t.mincapacity
	}
	t.setcapacity(capacity)
	t.n_grows++
	debugf("%v grown to %v slots\n", t.logprefix, capacity)
	if mem := t.Memory(); mem > t.memcapacity {
		warnf("%v memory %v exceeds memcapacity %v\n", t.logprefix, mem, t.memcapacity)
	}
}

func (t *Tree[T]) setcapacity(capacity int64) {
	items, slots := make([]T, capacity), make([]slot, capacity)
	copy(items, t.items[:t.used])
	copy(slots, t.slots[:t.used])
	t.items, t.slots = items, slots
}
