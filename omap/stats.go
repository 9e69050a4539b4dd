package omap

import "unsafe"

import humanize "github.com/dustin/go-humanize"

// Isactive return false once the map is destroyed.
func (m *Map[K, V]) Isactive() bool {
	return m.dead == false
}

// Memory return the arena footprint in bytes.
func (m *Map[K, V]) Memory() int64 {
	var e entry[K, V]
	entrysz := int64(unsafe.Sizeof(e))
	bucketsz := int64(unsafe.Sizeof(int32(0)))
	return int64(cap(m.entries))*entrysz + int64(cap(m.buckets))*bucketsz
}

// Stats return accumulated statistics for this map.
func (m *Map[K, V]) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["n_count"] = m.n_count
	stats["n_inserts"] = m.n_inserts
	stats["n_updates"] = m.n_updates
	stats["n_deletes"] = m.n_deletes
	stats["n_moves"] = m.n_moves
	stats["n_frees"] = m.n_frees
	stats["n_lookups"] = m.n_lookups
	stats["n_collisions"] = m.n_collisions
	stats["n_grows"] = m.n_grows
	stats["capacity"] = int64(len(m.entries))
	stats["buckets"] = int64(len(m.buckets))
	stats["freeentries"] = m.nfree
	stats["memory"] = m.Memory()
	return stats
}

// Log arena and operation statistics.
func (m *Map[K, V]) Log() {
	stats := m.Stats()
	mem := humanize.Bytes(uint64(stats["memory"].(int64)))
	fmsg := "%v count %v, capacity %v, buckets %v, free %v, memory %v\n"
	infof(
		fmsg, m.logprefix, stats["n_count"], stats["capacity"],
		stats["buckets"], stats["freeentries"], mem)
	fmsg = "%v inserts %v, updates %v, deletes %v, moves %v, collisions %v\n"
	infof(
		fmsg, m.logprefix, stats["n_inserts"], stats["n_updates"],
		stats["n_deletes"], stats["n_moves"], stats["n_collisions"])
}
