package rbtree

// rotation kinds dispatched during top-down deletion, keyed on
// which child of the sibling carries the red that must move over
// to the current node.
type rotationkind byte

const (
	rotationleft rotationkind = iota
	rotationright
	rotationleftright
	rotationrightleft
)

func (t *Tree[T]) isred(index int32) bool {
	return index != nilslot && t.slots[index].red
}

func (t *Tree[T]) isblack(index int32) bool {
	return index != nilslot && t.slots[index].red == false
}

// is2node report a black slot whose children are both nil or black.
func (t *Tree[T]) is2node(index int32) bool {
	return t.isblack(index) &&
		t.isred(t.slots[index].left) == false &&
		t.isred(t.slots[index].right) == false
}

// is4node report a slot with two red children.
func (t *Tree[T]) is4node(index int32) bool {
	return t.isred(t.slots[index].left) && t.isred(t.slots[index].right)
}

// split4node color-flips a 4-node while descending for insertion.
func (t *Tree[T]) split4node(index int32) {
	t.slots[index].red = true
	t.slots[t.slots[index].left].red = false
	t.slots[t.slots[index].right].red = false
}

// merge2nodes fuses a red parent with its two black 2-node children
// into a 4-node.
func (t *Tree[T]) merge2nodes(parent, child1, child2 int32) {
	t.slots[parent].red = false
	t.slots[child1].red = true
	t.slots[child2].red = true
}

func (t *Tree[T]) sibling(index, parent int32) int32 {
	if t.slots[parent].left == index {
		return t.slots[parent].right
	}
	return t.slots[parent].left
}

// replacechild rewire parent's link from child to newchild, or the
// root when parent is nil.
func (t *Tree[T]) replacechild(parent, child, newchild int32) {
	if parent == nilslot {
		t.root = newchild
	} else if t.slots[parent].left == child {
		t.slots[parent].left = newchild
	} else {
		t.slots[parent].right = newchild
	}
	if newchild != nilslot {
		t.slots[newchild].parent = parent
	}
}

// insertionbalance fix two consecutive red slots created by a
// 4-node split or a fresh red leaf. Returns the node to continue
// the descent from as parent, it changes when a double rotation
// pulls the great-grandparent into that role.
func (t *Tree[T]) insertionbalance(current, parent, grandparent, greatgrand int32) int32 {
	parentright := t.slots[grandparent].right == parent
	currentright := t.slots[parent].right == current

	var newchild int32
	if parentright == currentright { // single rotation
		if currentright {
			newchild = t.rotateleft(grandparent)
		} else {
			newchild = t.rotateright(grandparent)
		}
	} else { // double rotation
		if currentright {
			newchild = t.rotateleftright(grandparent)
		} else {
			newchild = t.rotaterightleft(grandparent)
		}
		parent = greatgrand
	}
	t.slots[newchild].red = false
	t.slots[grandparent].red = true
	t.replacechild(greatgrand, grandparent, newchild)
	return parent
}

// deletionbalance move a red from the sibling side into the current
// 2-node, preserving black height. The sibling is known to have at
// least one red child. Returns the subtree root that replaces
// parent, uncolored, the caller assigns colors.
func (t *Tree[T]) deletionbalance(parent, current, sibling int32) int32 {
	switch t.rotationneeded(parent, current, sibling) {
	case rotationright:
		t.slots[t.slots[sibling].left].red = false
		return t.rotateright(parent)
	case rotationleft:
		t.slots[t.slots[sibling].right].red = false
		return t.rotateleft(parent)
	case rotationrightleft:
		return t.rotaterightleft(parent)
	default: // rotationleftright
		return t.rotateleftright(parent)
	}
}

func (t *Tree[T]) rotationneeded(parent, current, sibling int32) rotationkind {
	if t.isred(t.slots[sibling].left) {
		if t.slots[parent].left == sibling {
			return rotationright
		}
		return rotationrightleft
	}
	if t.slots[parent].left == sibling {
		return rotationleftright
	}
	return rotationleft
}

//---- rotations. Every child rewire also rewrites that child's
//---- parent link; the caller reattaches the returned subtree root
//---- through replacechild.

func (t *Tree[T]) rotateleft(index int32) int32 {
	child := t.slots[index].right
	inner := t.slots[child].left

	t.slots[index].right = inner
	if inner != nilslot {
		t.slots[inner].parent = index
	}
	t.slots[child].left = index
	t.slots[child].parent = t.slots[index].parent
	t.slots[index].parent = child
	return child
}

func (t *Tree[T]) rotateright(index int32) int32 {
	child := t.slots[index].left
	inner := t.slots[child].right

	t.slots[index].left = inner
	if inner != nilslot {
		t.slots[inner].parent = index
	}
	t.slots[child].right = index
	t.slots[child].parent = t.slots[index].parent
	t.slots[index].parent = child
	return child
}

func (t *Tree[T]) rotateleftright(index int32) int32 {
	child := t.slots[index].left
	grand := t.slots[child].right

	t.slots[index].left = t.slots[grand].right
	if t.slots[grand].right != nilslot {
		t.slots[t.slots[grand].right].parent = index
	}
	t.slots[child].right = t.slots[grand].left
	if t.slots[grand].left != nilslot {
		t.slots[t.slots[grand].left].parent = child
	}
	t.slots[grand].parent = t.slots[index].parent
	t.slots[grand].right = index
	t.slots[index].parent = grand
	t.slots[grand].left = child
	t.slots[child].parent = grand
	return grand
}

func (t *Tree[T]) rotaterightleft(index int32) int32 {
	child := t.slots[index].right
	grand := t.slots[child].left

	t.slots[index].right = t.slots[grand].left
	if t.slots[grand].left != nilslot {
		t.slots[t.slots[grand].left].parent = index
	}
	t.slots[child].left = t.slots[grand].right
	if t.slots[grand].right != nilslot {
		t.slots[t.slots[grand].right].parent = child
	}
	t.slots[grand].parent = t.slots[index].parent
	t.slots[grand].left = index
	t.slots[index].parent = grand
	t.slots[grand].right = child
	t.slots[child].parent = grand
	return grand
}

// replacenode splice successor into match's position and return
// match's slot to the free list.
func (t *Tree[T]) replacenode(match, parentofmatch, successor, parentofsuccessor int32) {
	if successor == match {
		// match has no right child
		successor = t.slots[match].left
	} else {
		if right := t.slots[successor].right; right != nilslot {
			t.slots[right].red = false
		}
		if parentofsuccessor != match {
			// detach successor, adopt match's right subtree
			t.slots[parentofsuccessor].left = t.slots[successor].right
			if right := t.slots[successor].right; right != nilslot {
				t.slots[right].parent = parentofsuccessor
			}
			t.slots[successor].right = t.slots[match].right
			t.slots[t.slots[match].right].parent = successor
		}
		t.slots[successor].left = t.slots[match].left
		if left := t.slots[match].left; left != nilslot {
			t.slots[left].parent = successor
		}
	}

	if successor != nilslot {
		t.slots[successor].red = t.slots[match].red
	}
	t.replacechild(parentofmatch, match, successor)
	t.returnslot(match)
}
