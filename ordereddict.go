package collections

import s "github.com/bnclabs/gosettings"

import "github.com/OndrejPetrzilka/Rock.Collections/omap"

// Pair is one key-value item of an OrderedDict.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedDict is a keyed map that iterates in insertion order, as
// amended by the Move* calls. All structural work is delegated to
// the omap engine.
type OrderedDict[K comparable, V any] struct {
	engine *omap.Map[K, V]
}

// NewOrderedDict create an empty dictionary with a capacity hint,
// zero for on-demand growth.
func NewOrderedDict[K comparable, V any](name string, capacity int64) *OrderedDict[K, V] {
	setts := s.Settings{"capacity": capacity}
	return &OrderedDict[K, V]{engine: omap.NewMap[K, V](name, setts)}
}

// NewOrderedDictFromPairs create a dictionary holding pairs in the
// given order. A repeated key keeps its first position with the
// last value.
func NewOrderedDictFromPairs[K comparable, V any](name string, pairs []Pair[K, V]) *OrderedDict[K, V] {
	d := NewOrderedDict[K, V](name, int64(len(pairs)))
	for _, pair := range pairs {
		d.engine.Set(pair.Key, pair.Value)
	}
	return d
}

// NewOrderedDictFromMap create a dictionary holding the entries of
// a Go map. The iteration order of the result follows the map's
// traversal and is therefore unspecified.
func NewOrderedDictFromMap[K comparable, V any](name string, src map[K]V) *OrderedDict[K, V] {
	d := NewOrderedDict[K, V](name, int64(len(src)))
	for key, value := range src {
		d.engine.Set(key, value)
	}
	return d
}

// Set store value under key, appending new keys to the iteration
// order. Return true when the key was new.
func (d *OrderedDict[K, V]) Set(key K, value V) bool {
	return d.engine.Set(key, value)
}

// Add store value under a key that must not be present. Returns
// api.ErrorDuplicateKey when it is.
func (d *OrderedDict[K, V]) Add(key K, value V) error {
	return d.engine.Add(key, value)
}

// Update overwrite the value under a key that must be present.
// Returns api.ErrorKeyMissing when it is not.
func (d *OrderedDict[K, V]) Update(key K, value V) error {
	return d.engine.Update(key, value)
}

// Get return the value stored under key.
func (d *OrderedDict[K, V]) Get(key K) (V, bool) {
	return d.engine.Get(key)
}

// Has return whether key is present.
func (d *OrderedDict[K, V]) Has(key K) bool {
	return d.engine.Has(key)
}

// Delete remove key. Return false when absent.
func (d *OrderedDict[K, V]) Delete(key K) bool {
	return d.engine.Delete(key)
}

// Count return the number of entries.
func (d *OrderedDict[K, V]) Count() int64 {
	return d.engine.Count()
}

// Clear remove all entries, retaining capacity.
func (d *OrderedDict[K, V]) Clear() {
	d.engine.Clear()
}

// TrimToSize shrink the backing arena to the live entry count.
func (d *OrderedDict[K, V]) TrimToSize() {
	d.engine.TrimToSize()
}

// MoveFirst make key the first entry in iteration order.
func (d *OrderedDict[K, V]) MoveFirst(key K) bool {
	return d.engine.MoveFirst(key)
}

// MoveLast make key the last entry in iteration order.
func (d *OrderedDict[K, V]) MoveLast(key K) bool {
	return d.engine.MoveLast(key)
}

// MoveBefore place key immediately before mark.
func (d *OrderedDict[K, V]) MoveBefore(key, mark K) bool {
	return d.engine.MoveBefore(key, mark)
}

// MoveAfter place key immediately after mark.
func (d *OrderedDict[K, V]) MoveAfter(key, mark K) bool {
	return d.engine.MoveAfter(key, mark)
}

// Keys return all keys in iteration order.
func (d *OrderedDict[K, V]) Keys() []K {
	return d.engine.Keys()
}

// Values return all values in iteration order.
func (d *OrderedDict[K, V]) Values() []V {
	return d.engine.Values()
}

// Items return all entries in iteration order.
func (d *OrderedDict[K, V]) Items() []Pair[K, V] {
	items := make([]Pair[K, V], 0, d.engine.Count())
	d.engine.Ascend(func(key K, value V) bool {
		items = append(items, Pair[K, V]{Key: key, Value: value})
		return true
	})
	return items
}

// CopyTo fill dst with entries in iteration order and return the
// number copied.
func (d *OrderedDict[K, V]) CopyTo(dst []Pair[K, V]) int {
	n := 0
	d.engine.Ascend(func(key K, value V) bool {
		if n == len(dst) {
			return false
		}
		dst[n] = Pair[K, V]{Key: key, Value: value}
		n++
		return true
	})
	return n
}

// Iterate return an iterator over the entries, in iteration order
// or reversed.
func (d *OrderedDict[K, V]) Iterate(reverse bool) *omap.Iterator[K, V] {
	return d.engine.Iterate(reverse)
}

// IterateFrom return an iterator positioned at key.
func (d *OrderedDict[K, V]) IterateFrom(key K, reverse bool) *omap.Iterator[K, V] {
	return d.engine.IterateFrom(key, reverse)
}

// Stats return the engine statistics.
func (d *OrderedDict[K, V]) Stats() map[string]interface{} {
	return d.engine.Stats()
}
