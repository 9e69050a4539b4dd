package rbtree

import "testing"

import "github.com/OndrejPetrzilka/Rock.Collections/api"

func paniced(fn func()) (r interface{}) {
	defer func() { r = recover() }()
	fn()
	return
}

func TestTreeIterate(t *testing.T) {
	tree := New[int]("iterate", intcmp, nil)
	defer tree.Destroy()

	keys := []int{4, 2, 6, 1, 3, 5, 7}
	for _, key := range keys {
		tree.Insert(key)
	}

	iter, expected := tree.Iterate(false), 1
	for key, ok := iter.Next(); ok; key, ok = iter.Next() {
		if key != expected {
			t.Errorf("expected %v, got %v", expected, key)
		}
		expected++
	}
	if expected != 8 {
		t.Errorf("iteration stopped at %v", expected)
	}
	// exhausted iterators stay exhausted
	if _, ok := iter.Next(); ok {
		t.Errorf("expected exhausted iterator")
	}

	iter, expected = tree.Iterate(true), 7
	for key, ok := iter.Next(); ok; key, ok = iter.Next() {
		if key != expected {
			t.Errorf("expected %v, got %v", expected, key)
		}
		expected--
	}
	if expected != 0 {
		t.Errorf("iteration stopped at %v", expected)
	}
}

func TestTreeAscendDescend(t *testing.T) {
	tree := New[int]("ascend", intcmp, nil)
	defer tree.Destroy()

	for key := 1; key <= 10; key++ {
		tree.Insert(key)
	}

	got := []int{}
	tree.Ascend(func(key int) bool {
		got = append(got, key)
		return key < 5 // early stop
	})
	if len(got) != 5 || got[4] != 5 {
		t.Errorf("unexpected %v", got)
	}

	got = got[:0]
	tree.Descend(func(key int) bool {
		got = append(got, key)
		return true
	})
	if len(got) != 10 || got[0] != 10 || got[9] != 1 {
		t.Errorf("unexpected %v", got)
	}
}

func TestTreeNodeWalk(t *testing.T) {
	tree := New[int]("nodewalk", intcmp, nil)
	defer tree.Destroy()

	for _, key := range []int{3, 1, 2} {
		tree.Insert(key)
	}

	nd, expected := tree.First(), 1
	for nd != nil {
		if nd.Item() != expected {
			t.Errorf("expected %v, got %v", expected, nd.Item())
		}
		nd, expected = nd.Next(), expected+1
	}
	if expected != 4 {
		t.Errorf("walk stopped at %v", expected)
	}

	nd, expected = tree.Last(), 3
	for nd != nil {
		if nd.Item() != expected {
			t.Errorf("expected %v, got %v", expected, nd.Item())
		}
		nd, expected = nd.Prev(), expected-1
	}
	if expected != 0 {
		t.Errorf("walk stopped at %v", expected)
	}
}

func TestTreeStaleIterator(t *testing.T) {
	tree := New[int]("staleiter", intcmp, nil)
	defer tree.Destroy()

	for key := 1; key <= 5; key++ {
		tree.Insert(key)
	}
	iter := tree.Iterate(false)
	iter.Next()
	tree.Insert(6)
	if r := paniced(func() { iter.Next() }); r != api.ErrorConcurrentModification {
		t.Errorf("expected %v, got %v", api.ErrorConcurrentModification, r)
	}
}

func TestTreeStaleNode(t *testing.T) {
	tree := New[int]("stalenode", intcmp, nil)
	defer tree.Destroy()

	for key := 1; key <= 5; key++ {
		tree.Insert(key)
	}
	nd := tree.FindNode(3)
	tree.Delete(1)
	if r := paniced(func() { nd.Item() }); r != api.ErrorConcurrentModification {
		t.Errorf("expected %v, got %v", api.ErrorConcurrentModification, r)
	}

	// a failed insert still rebalances on the way down
	nd = tree.FindNode(3)
	tree.Insert(3)
	if r := paniced(func() { nd.Next() }); r != api.ErrorConcurrentModification {
		t.Errorf("expected %v, got %v", api.ErrorConcurrentModification, r)
	}
}

func TestTreeStaleAscend(t *testing.T) {
	tree := New[int]("staleascend", intcmp, nil)
	defer tree.Destroy()

	for key := 1; key <= 5; key++ {
		tree.Insert(key)
	}
	r := paniced(func() {
		tree.Ascend(func(key int) bool {
			tree.Delete(key)
			return true
		})
	})
	if r != api.ErrorConcurrentModification {
		t.Errorf("expected %v, got %v", api.ErrorConcurrentModification, r)
	}
}
