package omap

import "testing"

func orderedkeys(m *Map[string, int]) []string {
	return m.Keys()
}

func expectorder(t *testing.T, m *Map[string, int], expected ...string) {
	t.Helper()
	keys := orderedkeys(m)
	if len(keys) != len(expected) {
		t.Fatalf("expected %v keys, got %v", len(expected), len(keys))
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Fatalf("expected %v at %v, got %v", key, i, keys[i])
		}
	}
}

func newordermap(t *testing.T, name string) *Map[string, int] {
	m := NewMap[string, int](name, nil)
	for i, key := range []string{"a", "b", "c", "d", "e"} {
		m.Set(key, i)
	}
	return m
}

func TestMapMoveFirst(t *testing.T) {
	m := newordermap(t, "movefirst")
	defer m.Destroy()

	if m.MoveFirst("c") == false {
		t.Errorf("movefirst failed")
	}
	expectorder(t, m, "c", "a", "b", "d", "e")

	// idempotent
	version := m.version
	if m.MoveFirst("c") == false {
		t.Errorf("movefirst failed")
	}
	expectorder(t, m, "c", "a", "b", "d", "e")
	if m.version != version {
		t.Errorf("no-op move bumped version")
	}

	if m.MoveFirst("missing") == true {
		t.Errorf("moved absent key")
	}
}

func TestMapMoveLast(t *testing.T) {
	m := newordermap(t, "movelast")
	defer m.Destroy()

	if m.MoveLast("b") == false {
		t.Errorf("movelast failed")
	}
	expectorder(t, m, "a", "c", "d", "e", "b")

	if m.MoveLast("b") == false {
		t.Errorf("movelast failed")
	}
	expectorder(t, m, "a", "c", "d", "e", "b")

	if m.MoveLast("missing") == true {
		t.Errorf("moved absent key")
	}
}

func TestMapMoveBefore(t *testing.T) {
	m := newordermap(t, "movebefore")
	defer m.Destroy()

	if m.MoveBefore("e", "b") == false {
		t.Errorf("movebefore failed")
	}
	expectorder(t, m, "a", "e", "b", "c", "d")

	// moving to the front via the first key
	if m.MoveBefore("d", "a") == false {
		t.Errorf("movebefore failed")
	}
	expectorder(t, m, "d", "a", "e", "b", "c")

	// self move is a no-op reporting presence
	if m.MoveBefore("b", "b") == false {
		t.Errorf("self move reported absent")
	}
	expectorder(t, m, "d", "a", "e", "b", "c")

	// missing mark is a no-op reporting presence
	if m.MoveBefore("b", "missing") == false {
		t.Errorf("missing mark reported absent")
	}
	expectorder(t, m, "d", "a", "e", "b", "c")

	if m.MoveBefore("missing", "b") == true {
		t.Errorf("moved absent key")
	}
}

func TestMapMoveAfter(t *testing.T) {
	m := newordermap(t, "moveafter")
	defer m.Destroy()

	if m.MoveAfter("a", "d") == false {
		t.Errorf("moveafter failed")
	}
	expectorder(t, m, "b", "c", "d", "a", "e")

	// moving to the back via the last key
	if m.MoveAfter("b", "e") == false {
		t.Errorf("moveafter failed")
	}
	expectorder(t, m, "c", "d", "a", "e", "b")

	if m.MoveAfter("c", "c") == false {
		t.Errorf("self move reported absent")
	}
	expectorder(t, m, "c", "d", "a", "e", "b")

	if m.MoveAfter("c", "missing") == false {
		t.Errorf("missing mark reported absent")
	}
	if m.MoveAfter("missing", "c") == true {
		t.Errorf("moved absent key")
	}
}

func TestMapMoveNeighbors(t *testing.T) {
	m := newordermap(t, "neighbors")
	defer m.Destroy()

	// already in position, still a successful no-op
	version := m.version
	if m.MoveBefore("a", "b") == false {
		t.Errorf("movebefore failed")
	}
	if m.MoveAfter("b", "a") == false {
		t.Errorf("moveafter failed")
	}
	expectorder(t, m, "a", "b", "c", "d", "e")
	if m.version != version {
		t.Errorf("no-op move bumped version")
	}

	// swapping adjacent entries
	if m.MoveAfter("a", "b") == false {
		t.Errorf("moveafter failed")
	}
	expectorder(t, m, "b", "a", "c", "d", "e")
	if m.MoveBefore("a", "b") == false {
		t.Errorf("movebefore failed")
	}
	expectorder(t, m, "a", "b", "c", "d", "e")
}

func TestMapMoveSingleton(t *testing.T) {
	m := NewMap[string, int]("singleton", nil)
	defer m.Destroy()

	m.Set("only", 1)
	if m.MoveFirst("only") == false || m.MoveLast("only") == false {
		t.Errorf("move failed")
	}
	if m.MoveBefore("only", "only") == false || m.MoveAfter("only", "only") == false {
		t.Errorf("self move reported absent")
	}
	expectorder(t, m, "only")
}

func TestMapMoveThenDelete(t *testing.T) {
	m := newordermap(t, "movedelete")
	defer m.Destroy()

	m.MoveFirst("e")
	m.Delete("e")
	expectorder(t, m, "a", "b", "c", "d")
	m.MoveLast("a")
	m.Delete("a")
	expectorder(t, m, "b", "c", "d")
	m.Set("f", 6)
	expectorder(t, m, "b", "c", "d", "f")
}
