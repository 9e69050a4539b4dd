package rbtree

import "fmt"

// Validate check every red-black and arena invariant and panic on
// the first violation. A failure here is a defect in the engine,
// not a user-recoverable condition.
func (t *Tree[T]) Validate() {
	if t.root != nilslot {
		if t.slots[t.root].red {
			panic(fmt.Errorf("validate(): root %v is red", t.root))
		}
		if t.slots[t.root].parent != nilslot {
			panic(fmt.Errorf("validate(): root %v has parent", t.root))
		}
	}
	t.blackheight(t.root)
	n := t.validatetree(t.root, nilslot)
	if n != t.n_count {
		panic(fmt.Errorf("validate(): reachable %v != count %v", n, t.n_count))
	}
	t.validatefreelist()
}

// validatetree return the number of live slots under index, after
// checking ordering, parent links, red-red violations and black
// height.
func (t *Tree[T]) validatetree(index, parent int32) int64 {
	if index == nilslot {
		return 0
	}
	if t.slots[index].parent != parent {
		fmsg := "validate(): slot %v parent %v, expected %v"
		panic(fmt.Errorf(fmsg, index, t.slots[index].parent, parent))
	}
	left, right := t.slots[index].left, t.slots[index].right
	if left != nilslot && t.cmp(t.items[left], t.items[index]) >= 0 {
		panic(fmt.Errorf("validate(): slot %v left child out of order", index))
	}
	if right != nilslot && t.cmp(t.items[index], t.items[right]) >= 0 {
		panic(fmt.Errorf("validate(): slot %v right child out of order", index))
	}
	return 1 + t.validatetree(left, index) + t.validatetree(right, index)
}

// blackheight return the black height under index, panicking on
// unequal heights or consecutive reds, the Sedgewick rules.
func (t *Tree[T]) blackheight(index int32) int64 {
	if index == nilslot {
		return 0
	}
	if t.slots[index].red {
		if t.isred(t.slots[index].left) || t.isred(t.slots[index].right) {
			panic(fmt.Errorf("validate(): consecutive reds at slot %v", index))
		}
	}
	lblacks := t.blackheight(t.slots[index].left)
	rblacks := t.blackheight(t.slots[index].right)
	if lblacks != rblacks {
		fmsg := "validate(): unbalanced blacks at slot %v {%v,%v}"
		panic(fmt.Errorf(fmsg, index, lblacks, rblacks))
	}
	if t.slots[index].red {
		return lblacks
	}
	return lblacks + 1
}

// validatefreelist check that free slots and live slots partition
// the handed-out arena exactly.
func (t *Tree[T]) validatefreelist() {
	nfree := int64(0)
	for index := t.free; index != nilslot; index = t.slots[index].parent {
		nfree++
		if nfree > int64(t.used) {
			panic(fmt.Errorf("validate(): free list cycles"))
		}
	}
	if nfree != t.nfree {
		panic(fmt.Errorf("validate(): free list %v != nfree %v", nfree, t.nfree))
	}
	if t.n_count+t.nfree != int64(t.used) {
		fmsg := "validate(): live %v + free %v != used %v"
		panic(fmt.Errorf(fmsg, t.n_count, t.nfree, t.used))
	}
}
