package rbtree

import "fmt"
import "sort"

import "github.com/OndrejPetrzilka/Rock.Collections/api"
import "github.com/OndrejPetrzilka/Rock.Collections/lib"
import s "github.com/bnclabs/gosettings"

// Tree manage a single instance of in-memory sorted collection
// using a red-black tree. Nodes live in flat, reusable slot arrays
// addressed by integer index, vacated slots are recycled through a
// free list, so steady-state mutation does not allocate.
//
// Tree is not safe for concurrent use.
type Tree[T any] struct {
	name      string
	logprefix string
	cmp       api.CompareFn[T]

	items []T
	slots []slot
	root  int32
	free  int32 // head of the free list, threaded through parent
	used  int32 // tail high-watermark of handed out slots
	nfree int64

	version uint32
	dead    bool

	// settings
	mincapacity int64
	memcapacity int64
	setts       s.Settings

	// statistics
	n_count       int64
	n_inserts     int64
	n_deletes     int64
	n_frees       int64
	n_lookups     int64
	n_grows       int64
	h_insertdepth *lib.AverageInt64
}

// New create an empty tree ordered by cmp. Settings not present in
// setts take their value from Defaultsettings().
func New[T any](name string, cmp api.CompareFn[T], setts s.Settings) *Tree[T] {
	if cmp == nil {
		panic("rbtree.New(): nil compare function")
	}
	t := &Tree[T]{name: name, cmp: cmp}
	t.logprefix = fmt.Sprintf("rbtree [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	capacity := setts.Int64("capacity")
	if capacity < 0 {
		panic(api.ErrorInvalidCapacity)
	}
	t.root, t.free = nilslot, nilslot
	t.setcapacity(capacity)
	t.h_insertdepth = &lib.AverageInt64{}

	infof("%v started with capacity %v ...\n", t.logprefix, capacity)
	return t
}

// NewFromSlice create a tree holding the distinct items of slice,
// ordered by cmp. Equivalent to repeated Insert, the final order
// does not depend on the order of the slice.
func NewFromSlice[T any](name string, cmp api.CompareFn[T], items []T, setts s.Settings) *Tree[T] {
	t := New[T](name, cmp, setts)
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return cmp(sorted[i], sorted[j]) < 0 })
	distinct := sorted[:0]
	for i, item := range sorted {
		if i == 0 || cmp(distinct[len(distinct)-1], item) != 0 {
			distinct = append(distinct, item)
		}
	}
	t.buildfromsorted(distinct)
	return t
}

func (t *Tree[T]) readsettings(setts s.Settings) {
	t.mincapacity = setts.Int64("mincapacity")
	t.memcapacity = setts.Int64("memcapacity")
}

// ID return the name of this tree instance.
func (t *Tree[T]) ID() string {
	return t.name
}

// Count return the number of items in the tree.
func (t *Tree[T]) Count() int64 {
	return t.n_count
}

// Has return whether an item equal to the given one, by the tree's
// compare function, is present.
func (t *Tree[T]) Has(item T) bool {
	t.n_lookups++
	return t.findslot(item) != nilslot
}

// Get return the stored item equal to the given one. Useful when
// the compare function only inspects part of the payload.
func (t *Tree[T]) Get(item T) (T, bool) {
	t.n_lookups++
	if index := t.findslot(item); index != nilslot {
		return t.items[index], true
	}
	var empty T
	return empty, false
}

// Min return the smallest item.
func (t *Tree[T]) Min() (T, bool) {
	if index := t.minslot(t.root); index != nilslot {
		return t.items[index], true
	}
	var empty T
	return empty, false
}

// Max return the largest item.
func (t *Tree[T]) Max() (T, bool) {
	if index := t.maxslot(t.root); index != nilslot {
		return t.items[index], true
	}
	var empty T
	return empty, false
}

// Insert add item to the tree. Return false, leaving the tree
// membership unchanged, when an equal item is already present.
func (t *Tree[T]) Insert(item T) bool {
	if t.root == nilslot {
		t.version++
		index := t.obtainslot()
		t.items[index] = item
		t.slots[index] = slot{left: nilslot, right: nilslot, parent: nilslot}
		t.root = index
		t.n_count++
		t.n_inserts++
		t.h_insertdepth.Add(1)
		return true
	}

	// Search for insertion point, splitting 4-nodes on the way
	// down so the leaf always has room for a red child.
	t.version++
	current, parent := t.root, nilslot
	grandparent, greatgrand := nilslot, nilslot
	order, depth := 0, int64(1)
	for current != nilslot {
		order = t.cmp(item, t.items[current])
		if order == 0 {
			t.slots[t.root].red = false
			return false
		}
		if t.is4node(current) {
			t.split4node(current)
			if t.isred(parent) {
				parent = t.insertionbalance(current, parent, grandparent, greatgrand)
			}
		}
		greatgrand, grandparent, parent = grandparent, parent, current
		if order < 0 {
			current = t.slots[current].left
		} else {
			current = t.slots[current].right
		}
		depth++
	}

	index := t.obtainslot()
	t.items[index] = item
	t.slots[index] = slot{left: nilslot, right: nilslot, parent: parent, red: true}
	if order > 0 {
		t.slots[parent].right = index
	} else {
		t.slots[parent].left = index
	}
	if t.slots[parent].red {
		t.insertionbalance(index, parent, grandparent, greatgrand)
	}
	t.slots[t.root].red = false
	t.n_count++
	t.n_inserts++
	t.h_insertdepth.Add(depth)
	return true
}

// Delete remove the item equal to the given one. Return false when
// no such item is present.
func (t *Tree[T]) Delete(item T) bool {
	if t.root == nilslot {
		return false
	}

	// Top-down pass transforming every 2-node on the search path
	// into a 3-node or 4-node, so the node finally unlinked is
	// never a pure 2-node. The matched slot is remembered and
	// later spliced with its in-order successor.
	t.version++
	current := t.root
	parent, grandparent := nilslot, nilslot
	match, parentofmatch := nilslot, nilslot
	found := false
	for current != nilslot {
		if t.is2node(current) {
			if parent == nilslot {
				t.slots[current].red = true
			} else {
				sibling := t.sibling(current, parent)
				if t.slots[sibling].red {
					// parent must be black here; rotate the red
					// sibling over parent.
					if t.slots[parent].right == sibling {
						t.rotateleft(parent)
					} else {
						t.rotateright(parent)
					}
					t.slots[parent].red = true
					t.slots[sibling].red = false
					t.replacechild(grandparent, parent, sibling)
					grandparent = sibling
					if parent == match {
						parentofmatch = sibling
					}
					sibling = t.sibling(current, parent)
				}
				if t.is2node(sibling) {
					t.merge2nodes(parent, current, sibling)
				} else {
					newgrand := t.deletionbalance(parent, current, sibling)
					t.slots[newgrand].red = t.slots[parent].red
					t.slots[parent].red = false
					t.slots[current].red = true
					t.replacechild(grandparent, parent, newgrand)
					if parent == match {
						parentofmatch = newgrand
					}
					grandparent = newgrand
				}
			}
		}

		order := -1
		if found == false {
			order = t.cmp(item, t.items[current])
		}
		if order == 0 {
			found = true
			match, parentofmatch = current, parent
		}
		grandparent, parent = parent, current
		if order < 0 {
			current = t.slots[current].left
		} else {
			current = t.slots[current].right
		}
	}

	if match != nilslot {
		t.replacenode(match, parentofmatch, parent, grandparent)
		t.n_count--
		t.n_deletes++
	}
	if t.root != nilslot {
		t.slots[t.root].red = false
	}
	return found
}

// Clear remove all items. Arena capacity is retained, use
// TrimToSize to release it.
func (t *Tree[T]) Clear() {
	t.version++
	clear(t.items[:t.used])
	for i := range t.slots[:t.used] {
		t.slots[i] = slot{}
	}
	t.root, t.free, t.used = nilslot, nilslot, 0
	t.nfree, t.n_count = 0, 0
}

// TrimToSize reallocate the arena to exactly the live item count.
// The tree is rebuilt in balanced form, outstanding node handles
// and iterators are invalidated.
func (t *Tree[T]) TrimToSize() {
	t.version++
	items := make([]T, 0, t.n_count)
	for index := t.minslot(t.root); index != nilslot; index = t.successor(index) {
		items = append(items, t.items[index])
	}
	t.buildfromsorted(items)
	debugf("%v trimmed to %v slots\n", t.logprefix, len(items))
}

// Destroy release the arena. The tree must not be used afterwards.
func (t *Tree[T]) Destroy() {
	t.version++
	t.items, t.slots = nil, nil
	t.root, t.free, t.used, t.nfree = nilslot, nilslot, 0, 0
	t.n_count, t.dead = 0, true
	infof("%v destroyed\n", t.logprefix)
}

// buildfromsorted replace the tree content with the given sorted,
// duplicate-free items, allocating exactly len(items) slots. Nodes
// on the lowest incomplete level are colored red, every other
// level is black, which matches what repeated insertion settles
// into for a full tree.
func (t *Tree[T]) buildfromsorted(items []T) {
	t.items = make([]T, len(items))
	t.slots = make([]slot, len(items))
	t.root, t.free = nilslot, nilslot
	t.used, t.nfree = 0, 0
	t.n_count = int64(len(items))
	t.root = t.build(items, 0, len(items)-1, redlevel(len(items)), 0, nilslot)
}

func (t *Tree[T]) build(items []T, lo, hi, redlvl, level int, parent int32) int32 {
	if lo > hi {
		return nilslot
	}
	mid := lo + (hi-lo)/2
	index := t.obtainslot()
	t.items[index] = items[mid]
	t.slots[index] = slot{left: nilslot, right: nilslot, parent: parent, red: level == redlvl}
	t.slots[index].left = t.build(items, lo, mid-1, redlvl, level+1, index)
	t.slots[index].right = t.build(items, mid+1, hi, redlvl, level+1, index)
	return index
}

// redlevel return the level, root being level zero, at which nodes
// of a complete tree of size sz spill over and must be red.
func redlevel(sz int) int {
	level := 0
	for m := sz - 1; m >= 0; m = m/2 - 1 {
		level++
	}
	return level
}

//---- search helpers

func (t *Tree[T]) findslot(item T) int32 {
	current := t.root
	for current != nilslot {
		order := t.cmp(item, t.items[current])
		if order == 0 {
			return current
		} else if order < 0 {
			current = t.slots[current].left
		} else {
			current = t.slots[current].right
		}
	}
	return nilslot
}

func (t *Tree[T]) minslot(index int32) int32 {
	if index == nilslot {
		return nilslot
	}
	for t.slots[index].left != nilslot {
		index = t.slots[index].left
	}
	return index
}

func (t *Tree[T]) maxslot(index int32) int32 {
	if index == nilslot {
		return nilslot
	}
	for t.slots[index].right != nilslot {
		index = t.slots[index].right
	}
	return index
}

// findnext return the slot of the smallest item strictly greater
// than the given one, present or absent.
func (t *Tree[T]) findnext(item T) int32 {
	best, current := nilslot, t.root
	for current != nilslot {
		if t.cmp(item, t.items[current]) < 0 {
			best = current
			current = t.slots[current].left
		} else {
			current = t.slots[current].right
		}
	}
	return best
}

// findprevious return the slot of the largest item strictly smaller
// than the given one, present or absent.
func (t *Tree[T]) findprevious(item T) int32 {
	best, current := nilslot, t.root
	for current != nilslot {
		if t.cmp(item, t.items[current]) > 0 {
			best = current
			current = t.slots[current].right
		} else {
			current = t.slots[current].left
		}
	}
	return best
}

// successor walks to the next slot in sort order using parent
// links, without recursion or an explicit stack.
func (t *Tree[T]) successor(index int32) int32 {
	if right := t.slots[index].right; right != nilslot {
		return t.minslot(right)
	}
	parent := t.slots[index].parent
	for parent != nilslot && t.slots[parent].right == index {
		index, parent = parent, t.slots[parent].parent
	}
	return parent
}

// predecessor is the mirror image of successor.
func (t *Tree[T]) predecessor(index int32) int32 {
	if left := t.slots[index].left; left != nilslot {
		return t.maxslot(left)
	}
	parent := t.slots[index].parent
	for parent != nilslot && t.slots[parent].left == index {
		index, parent = parent, t.slots[parent].parent
	}
	return parent
}
