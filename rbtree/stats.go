package rbtree

import "unsafe"

import humanize "github.com/dustin/go-humanize"

// Isactive return false once the tree is destroyed.
func (t *Tree[T]) Isactive() bool {
	return t.dead == false
}

// Memory return the arena footprint in bytes.
func (t *Tree[T]) Memory() int64 {
	var item T
	var sl slot
	itemsz := int64(unsafe.Sizeof(item))
	slotsz := int64(unsafe.Sizeof(sl))
	return int64(cap(t.items))*itemsz + int64(cap(t.slots))*slotsz
}

// Stats return accumulated statistics for this tree.
func (t *Tree[T]) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["n_count"] = t.n_count
	stats["n_inserts"] = t.n_inserts
	stats["n_deletes"] = t.n_deletes
	stats["n_frees"] = t.n_frees
	stats["n_lookups"] = t.n_lookups
	stats["n_grows"] = t.n_grows
	stats["capacity"] = int64(len(t.slots))
	stats["freeslots"] = t.nfree
	stats["memory"] = t.Memory()
	stats["insertdepth.mean"] = t.h_insertdepth.Mean()
	stats["insertdepth.max"] = t.h_insertdepth.Max()
	return stats
}

// Log arena and operation statistics.
func (t *Tree[T]) Log() {
	stats := t.Stats()
	mem := humanize.Bytes(uint64(stats["memory"].(int64)))
	fmsg := "%v count %v, capacity %v, free %v, memory %v\n"
	infof(fmsg, t.logprefix, stats["n_count"], stats["capacity"], stats["freeslots"], mem)
	fmsg = "%v inserts %v, deletes %v, lookups %v, grows %v, depth ~%v\n"
	infof(
		fmsg, t.logprefix, stats["n_inserts"], stats["n_deletes"],
		stats["n_lookups"], stats["n_grows"], stats["insertdepth.mean"])
}
