package omap

import "fmt"
import "hash/maphash"

import "github.com/OndrejPetrzilka/Rock.Collections/api"
import "github.com/OndrejPetrzilka/Rock.Collections/lib"
import s "github.com/bnclabs/gosettings"

// nilentry is the index sentinel playing the role of a nil pointer.
const nilentry = int32(-1)

// entry is one slot of the arena: hash-chain fields, order-list
// fields and the payload. A free entry is threaded into the free
// list through next, with key and value zeroed.
type entry[K comparable, V any] struct {
	hash      uint32
	next      int32 // bucket chain, or free list when vacant
	ordernext int32
	orderprev int32
	key       K
	value     V
}

// Map manage a single instance of in-memory hash map that also
// remembers insertion order. Entries live in a flat, reusable
// arena chained from prime-sized buckets, with an intrusive
// doubly-linked list recording traversal order independent of
// bucket layout. Lookups, inserts, removes and the four reorder
// primitives are O(1) average.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	name      string
	logprefix string
	hashfn    api.HashFn[K]

	buckets []int32
	entries []entry[K, V]
	used    int32 // tail high-watermark of handed out entries
	free    int32 // head of the free list, threaded through next
	nfree   int64
	first   int32 // head of the order list
	last    int32 // tail of the order list

	version uint32
	dead    bool

	// settings
	mincapacity int64
	memcapacity int64
	setts       s.Settings

	// statistics
	n_count      int64
	n_inserts    int64
	n_updates    int64
	n_deletes    int64
	n_moves      int64
	n_frees      int64
	n_lookups    int64
	n_collisions int64
	n_grows      int64
}

// NewMap create an empty map hashing keys with maphash. Settings
// not present in setts take their value from Defaultsettings().
func NewMap[K comparable, V any](name string, setts s.Settings) *Map[K, V] {
	seed := maphash.MakeSeed()
	hashfn := func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
	return NewMapWith[K, V](name, hashfn, setts)
}

// NewMapWith create an empty map hashing keys with hashfn. Keys
// that compare equal must hash equal.
func NewMapWith[K comparable, V any](name string, hashfn api.HashFn[K], setts s.Settings) *Map[K, V] {
	if hashfn == nil {
		panic("omap.NewMapWith(): nil hash function")
	}
	m := &Map[K, V]{name: name, hashfn: hashfn}
	m.logprefix = fmt.Sprintf("omap [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	m.readsettings(setts)
	m.setts = setts

	capacity := setts.Int64("capacity")
	if capacity < 0 {
		panic(api.ErrorInvalidCapacity)
	}
	m.free, m.first, m.last = nilentry, nilentry, nilentry
	if capacity > 0 {
		m.setcapacity(lib.NextPrime(capacity))
	} else {
		m.buckets = []int32{}
		m.entries = []entry[K, V]{}
	}

	infof("%v started with capacity %v ...\n", m.logprefix, capacity)
	return m
}

// NewMapFromPairs create a map from alternating key insertions,
// preserving the order of pairs.
func NewMapFromPairs[K comparable, V any](name string, keys []K, values []V, setts s.Settings) *Map[K, V] {
	if len(keys) != len(values) {
		panic(fmt.Errorf("omap.NewMapFromPairs(): %v keys, %v values", len(keys), len(values)))
	}
	m := NewMap[K, V](name, setts)
	for i, key := range keys {
		m.Set(key, values[i])
	}
	return m
}

func (m *Map[K, V]) readsettings(setts s.Settings) {
	m.mincapacity = setts.Int64("mincapacity")
	m.memcapacity = setts.Int64("memcapacity")
}

// ID return the name of this map instance.
func (m *Map[K, V]) ID() string {
	return m.name
}

// Count return the number of entries in the map.
func (m *Map[K, V]) Count() int64 {
	return m.n_count
}

// Has return whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	m.n_lookups++
	return m.lookup(key) != nilentry
}

// Get return the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.n_lookups++
	if index := m.lookup(key); index != nilentry {
		return m.entries[index].value, true
	}
	var empty V
	return empty, false
}

// Set store value under key. A new key is appended to the end of
// the iteration order and true is returned. An existing key keeps
// its position, only the value is overwritten in place, and false
// is returned.
func (m *Map[K, V]) Set(key K, value V) bool {
	inserted, _ := m.upsert(key, value, false)
	return inserted
}

// Add store value under a key that must not be present. Returns
// api.ErrorDuplicateKey, leaving the map unchanged, when it is.
func (m *Map[K, V]) Add(key K, value V) error {
	_, err := m.upsert(key, value, true)
	return err
}

func (m *Map[K, V]) upsert(key K, value V, failondup bool) (bool, error) {
	if len(m.buckets) == 0 {
		m.grow()
	}
	hash := m.hashkey(key)
	bucket := hash % uint32(len(m.buckets))
	for index := m.buckets[bucket]; index != nilentry; index = m.entries[index].next {
		if m.entries[index].hash == hash && m.entries[index].key == key {
			if failondup {
				return false, api.ErrorDuplicateKey
			}
			// in-place overwrite, order and version untouched
			m.entries[index].value = value
			m.n_updates++
			return false, nil
		}
		m.n_collisions++
	}

	m.version++
	if m.free == nilentry && int(m.used) == len(m.entries) {
		m.grow()
		bucket = hash % uint32(len(m.buckets))
	}
	index := m.obtainentry()
	e := &m.entries[index]
	e.hash, e.key, e.value = hash, key, value
	e.next = m.buckets[bucket]
	m.buckets[bucket] = index
	m.linklast(index)
	m.n_count++
	m.n_inserts++
	return true, nil
}

// Update overwrite the value under a key that must be present.
// Returns api.ErrorKeyMissing, leaving the map unchanged, when it
// is not. Like Set on an existing key this is non-structural,
// order and outstanding handles are unaffected.
func (m *Map[K, V]) Update(key K, value V) error {
	index := m.lookup(key)
	if index == nilentry {
		return api.ErrorKeyMissing
	}
	m.entries[index].value = value
	m.n_updates++
	return nil
}

// Delete remove key. Return false when absent.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.remove(key)
	return ok
}

// DeleteGet remove key and return the value it held.
func (m *Map[K, V]) DeleteGet(key K) (V, bool) {
	return m.remove(key)
}

func (m *Map[K, V]) remove(key K) (V, bool) {
	var empty V
	if len(m.buckets) == 0 {
		return empty, false
	}
	hash := m.hashkey(key)
	bucket := hash % uint32(len(m.buckets))
	previous := nilentry
	for index := m.buckets[bucket]; index != nilentry; index = m.entries[index].next {
		if m.entries[index].hash == hash && m.entries[index].key == key {
			m.version++
			if previous == nilentry {
				m.buckets[bucket] = m.entries[index].next
			} else {
				m.entries[previous].next = m.entries[index].next
			}
			m.unlinkorder(index)
			value := m.entries[index].value
			m.returnentry(index)
			m.n_count--
			m.n_deletes++
			return value, true
		}
		previous = index
	}
	return empty, false
}

// Clear remove all entries. Arena capacity is retained, use
// TrimToSize to release it.
func (m *Map[K, V]) Clear() {
	m.version++
	for i := range m.buckets {
		m.buckets[i] = nilentry
	}
	clear(m.entries[:m.used])
	m.used, m.free, m.nfree = 0, nilentry, 0
	m.first, m.last = nilentry, nilentry
	m.n_count = 0
}

// TrimToSize reallocate the arena to exactly the live entry count,
// preserving iteration order. Outstanding node handles and
// iterators are invalidated.
func (m *Map[K, V]) TrimToSize() {
	m.version++
	count := m.n_count
	entries := make([]entry[K, V], 0, count)
	for index := m.first; index != nilentry; index = m.entries[index].ordernext {
		entries = append(entries, m.entries[index])
	}

	// compaction renumbers entries, relink the order list to the
	// new sequential positions
	for i := range entries {
		entries[i].orderprev = int32(i) - 1
		entries[i].ordernext = int32(i) + 1
	}
	m.first, m.last = nilentry, nilentry
	if len(entries) > 0 {
		entries[len(entries)-1].ordernext = nilentry
		m.first, m.last = 0, int32(len(entries)-1)
	}

	m.entries = entries
	m.used, m.free, m.nfree = int32(len(entries)), nilentry, 0
	capacity := int64(0)
	if count > 0 {
		capacity = lib.NextPrime(count)
	}
	m.buckets = make([]int32, capacity)
	m.rebuild()
	debugf("%v trimmed to %v entries\n", m.logprefix, count)
}

// Destroy release the arena. The map must not be used afterwards.
func (m *Map[K, V]) Destroy() {
	m.version++
	m.buckets, m.entries = nil, nil
	m.used, m.free, m.nfree = 0, nilentry, 0
	m.first, m.last = nilentry, nilentry
	m.n_count, m.dead = 0, true
	infof("%v destroyed\n", m.logprefix)
}

//---- arena plumbing

func (m *Map[K, V]) hashkey(key K) uint32 {
	hash := m.hashfn(key)
	return uint32(hash^(hash>>32)) & 0x7FFFFFFF
}

func (m *Map[K, V]) lookup(key K) int32 {
	if len(m.buckets) == 0 {
		return nilentry
	}
	hash := m.hashkey(key)
	for index := m.buckets[hash%uint32(len(m.buckets))]; index != nilentry; index = m.entries[index].next {
		if m.entries[index].hash == hash && m.entries[index].key == key {
			return index
		}
	}
	return nilentry
}

func (m *Map[K, V]) obtainentry() int32 {
	if m.free != nilentry {
		index := m.free
		m.free = m.entries[index].next
		m.nfree--
		return index
	}
	index := m.used
	m.used++
	return index
}

func (m *Map[K, V]) returnentry(index int32) {
	var empty entry[K, V] // release key and value
	m.entries[index] = empty
	m.entries[index].next = m.free
	m.entries[index].ordernext, m.entries[index].orderprev = nilentry, nilentry
	m.free = index
	m.nfree++
	m.n_frees++
}

// grow the entry arena and the buckets together to the next table
// prime. Bucket chains are rebuilt, the order list is untouched.
func (m *Map[K, V]) grow() {
	capacity := int64(len(m.entries)) * 2
	if capacity < m.mincapacity {
		capacity = m.mincapacity
	}
	m.setcapacity(lib.NextPrime(capacity))
	m.n_grows++
	debugf("%v grown to %v entries\n", m.logprefix, len(m.entries))
	if mem := m.Memory(); mem > m.memcapacity {
		warnf("%v memory %v exceeds memcapacity %v\n", m.logprefix, mem, m.memcapacity)
	}
}

func (m *Map[K, V]) setcapacity(capacity int64) {
	entries := make([]entry[K, V], capacity)
	copy(entries, m.entries[:m.used])
	m.entries = entries
	m.buckets = make([]int32, capacity)
	m.rebuild()
}

// rebuild bucket chains from the order list after the bucket count
// changed.
func (m *Map[K, V]) rebuild() {
	for i := range m.buckets {
		m.buckets[i] = nilentry
	}
	for index := m.first; index != nilentry; index = m.entries[index].ordernext {
		bucket := m.entries[index].hash % uint32(len(m.buckets))
		m.entries[index].next = m.buckets[bucket]
		m.buckets[bucket] = index
	}
}
