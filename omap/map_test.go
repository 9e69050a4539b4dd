package omap

import "fmt"
import "math/rand"
import "testing"

import "github.com/OndrejPetrzilka/Rock.Collections/api"
import s "github.com/bnclabs/gosettings"

func TestMapEmpty(t *testing.T) {
	m := NewMap[string, int]("empty", nil)
	defer m.Destroy()

	if m.ID() != "empty" {
		t.Errorf("unexpected %v", m.ID())
	}
	if m.Count() != 0 {
		t.Errorf("unexpected %v", m.Count())
	}
	if m.Has("missing") {
		t.Errorf("unexpected key")
	}
	if m.Delete("missing") {
		t.Errorf("unexpected delete")
	}
	if m.First() != nil || m.Last() != nil {
		t.Errorf("expected nil handles")
	}

	stats := m.Stats()
	if x := stats["n_count"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_inserts"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_deletes"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	m.Log()
}

func TestMapNegativeCapacity(t *testing.T) {
	defer func() {
		if recover() != api.ErrorInvalidCapacity {
			t.Errorf("expected %v", api.ErrorInvalidCapacity)
		}
	}()
	NewMap[string, int]("negative", s.Settings{"capacity": int64(-1)})
}

func TestMapSetGetDelete(t *testing.T) {
	m := NewMap[string, int]("setget", nil)
	defer m.Destroy()

	keys := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i, key := range keys {
		if m.Set(key, i) == false {
			t.Errorf("set %v failed", key)
		}
	}
	if m.Count() != int64(len(keys)) {
		t.Errorf("unexpected %v", m.Count())
	}
	for i, key := range keys {
		if value, ok := m.Get(key); !ok || value != i {
			t.Errorf("expected %v, got %v %v", i, value, ok)
		}
	}

	// overwrite keeps the key's order position
	if m.Set("gamma", 100) == true {
		t.Errorf("expected update, not insert")
	}
	if value, _ := m.Get("gamma"); value != 100 {
		t.Errorf("unexpected %v", value)
	}
	for i, key := range m.Keys() {
		if key != keys[i] {
			t.Errorf("expected %v at %v, got %v", keys[i], i, key)
		}
	}

	if m.Delete("beta") == false {
		t.Errorf("delete failed")
	}
	if m.Has("beta") {
		t.Errorf("beta still present")
	}
	if m.Count() != int64(len(keys)-1) {
		t.Errorf("unexpected %v", m.Count())
	}
	if m.Delete("beta") == true {
		t.Errorf("deleted absent key")
	}
}

func TestMapAddDuplicate(t *testing.T) {
	m := NewMap[string, int]("adddup", nil)
	defer m.Destroy()

	if err := m.Add("key1", 1); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if err := m.Add("key1", 2); err != api.ErrorDuplicateKey {
		t.Errorf("expected %v, got %v", api.ErrorDuplicateKey, err)
	}
	// the failed add must leave value and order untouched
	if value, _ := m.Get("key1"); value != 1 {
		t.Errorf("unexpected %v", value)
	}
	if m.Count() != 1 {
		t.Errorf("unexpected %v", m.Count())
	}
}

func TestMapUpdate(t *testing.T) {
	m := NewMap[string, int]("update", nil)
	defer m.Destroy()

	m.Set("key1", 1)
	if err := m.Update("key2", 2); err != api.ErrorKeyMissing {
		t.Errorf("expected %v, got %v", api.ErrorKeyMissing, err)
	}
	version := m.version
	if err := m.Update("key1", 10); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if value, _ := m.Get("key1"); value != 10 {
		t.Errorf("unexpected %v", value)
	}
	// in-place overwrite is non-structural
	if m.version != version {
		t.Errorf("unexpected version bump %v -> %v", version, m.version)
	}
}

func TestMapDeleteGet(t *testing.T) {
	m := NewMap[string, int]("delget", nil)
	defer m.Destroy()

	m.Set("key1", 10)
	if value, ok := m.DeleteGet("key1"); !ok || value != 10 {
		t.Errorf("unexpected %v %v", value, ok)
	}
	if _, ok := m.DeleteGet("key1"); ok {
		t.Errorf("expected missing key")
	}
}

func TestMapOrderFidelity(t *testing.T) {
	m := NewMap[int, int]("orderfidelity", nil)
	defer m.Destroy()

	// mirror every operation on a reference key list
	reference := []int{}
	refdelete := func(key int) bool {
		for i, k := range reference {
			if k == key {
				reference = append(reference[:i], reference[i+1:]...)
				return true
			}
		}
		return false
	}
	refhas := func(key int) bool {
		for _, k := range reference {
			if k == key {
				return true
			}
		}
		return false
	}

	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 3000; i++ {
		key := rnd.Intn(300)
		switch rnd.Intn(4) {
		case 0:
			if m.Delete(key) != refdelete(key) {
				t.Fatalf("delete %v disagrees", key)
			}
		case 1:
			if m.MoveFirst(key) != refhas(key) {
				t.Fatalf("movefirst %v disagrees", key)
			}
			if refdelete(key) {
				reference = append([]int{key}, reference...)
			}
		case 2:
			if m.MoveLast(key) != refhas(key) {
				t.Fatalf("movelast %v disagrees", key)
			}
			if refdelete(key) {
				reference = append(reference, key)
			}
		default:
			if m.Set(key, key) {
				reference = append(reference, key)
			}
		}
	}

	keys := m.Keys()
	if len(keys) != len(reference) {
		t.Fatalf("expected %v keys, got %v", len(reference), len(keys))
	}
	for i, key := range reference {
		if keys[i] != key {
			t.Fatalf("expected %v at %v, got %v", key, i, keys[i])
		}
	}

	// reverse iteration is the exact reverse
	i := len(reference) - 1
	iter := m.Iterate(true)
	for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
		if key != reference[i] {
			t.Fatalf("expected %v at %v, got %v", reference[i], i, key)
		}
		i--
	}
	if i != -1 {
		t.Fatalf("reverse iteration stopped at %v", i)
	}
}

func TestMapClearRoundTrip(t *testing.T) {
	m := NewMap[string, int]("roundtrip", nil)
	defer m.Destroy()

	keys := []string{"one", "two", "three", "four"}
	for i, key := range keys {
		m.Set(key, i)
	}
	before := m.Keys()

	m.Clear()
	if m.Count() != 0 {
		t.Errorf("unexpected %v", m.Count())
	}
	if len(m.Keys()) != 0 {
		t.Errorf("unexpected keys after clear")
	}

	for i, key := range keys {
		m.Set(key, i)
	}
	after := m.Keys()
	if len(before) != len(after) {
		t.Fatalf("expected %v keys, got %v", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("expected %v at %v, got %v", before[i], i, after[i])
		}
	}
}

func TestMapCapacityTransparency(t *testing.T) {
	sized := NewMap[string, int]("sized", s.Settings{"capacity": int64(1000)})
	unsized := NewMap[string, int]("unsized", nil)
	defer sized.Destroy()
	defer unsized.Destroy()

	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("key-%04d", i)
		sized.Set(key, i)
		unsized.Set(key, i)
	}

	a, b := sized.Keys(), unsized.Keys()
	if len(a) != len(b) {
		t.Fatalf("expected %v keys, got %v", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected %v at %v, got %v", a[i], i, b[i])
		}
	}
}

func TestMapGrowthKeepsOrder(t *testing.T) {
	m := NewMap[int, int]("growth", nil)
	defer m.Destroy()

	grows := int64(0)
	for i := 0; i < 10000; i++ {
		m.Set(i, i)
		if x := m.Stats()["n_grows"].(int64); x != grows {
			// growth must not reorder live entries
			grows = x
			for j, key := range m.Keys() {
				if key != j {
					t.Fatalf("expected %v at %v, got %v", j, j, key)
				}
			}
		}
	}
	if grows == 0 {
		t.Errorf("expected at least one growth")
	}
}

func TestMapTrimToSize(t *testing.T) {
	m := NewMap[int, int]("trim", nil)
	defer m.Destroy()

	for i := 0; i < 100; i++ {
		m.Set(i, i*i)
	}
	for i := 0; i < 100; i += 2 {
		m.Delete(i)
	}
	before := m.Keys()

	m.TrimToSize()
	stats := m.Stats()
	if x := stats["capacity"].(int64); x != m.Count() {
		t.Errorf("expected %v, got %v", m.Count(), x)
	}
	if x := stats["freeentries"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	}

	after := m.Keys()
	if len(before) != len(after) {
		t.Fatalf("expected %v keys, got %v", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("expected %v at %v, got %v", before[i], i, after[i])
		}
		if value, ok := m.Get(after[i]); !ok || value != after[i]*after[i] {
			t.Errorf("unexpected %v %v", value, ok)
		}
	}
}

func TestMapEntryReuse(t *testing.T) {
	m := NewMap[int, int]("entryreuse", nil)
	defer m.Destroy()

	for i := 0; i < 64; i++ {
		m.Set(i, i)
	}
	capacity := m.Stats()["capacity"].(int64)

	// churn should be absorbed by the free list
	for round := 0; round < 10; round++ {
		for i := 0; i < 32; i++ {
			m.Delete(i)
		}
		for i := 0; i < 32; i++ {
			m.Set(i, i)
		}
	}
	if x := m.Stats()["capacity"].(int64); x != capacity {
		t.Errorf("expected %v, got %v", capacity, x)
	}
}

func TestMapCustomHash(t *testing.T) {
	// a deliberately terrible hash still yields a correct map
	hashfn := func(key int) uint64 { return 1 }
	m := NewMapWith[int, int]("customhash", hashfn, nil)
	defer m.Destroy()

	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}
	for i := 0; i < 100; i++ {
		if value, ok := m.Get(i); !ok || value != i {
			t.Errorf("unexpected %v %v", value, ok)
		}
	}
	if x := m.Stats()["n_collisions"].(int64); x == 0 {
		t.Errorf("expected collisions")
	}
}

func BenchmarkMapSet(b *testing.B) {
	m := NewMap[int, int]("bench", nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(i, i)
	}
}

func BenchmarkMapGet(b *testing.B) {
	m := NewMap[int, int]("bench", nil)
	for i := 0; i < 100000; i++ {
		m.Set(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(i % 100000)
	}
}

func BenchmarkMapMoveFirst(b *testing.B) {
	m := NewMap[int, int]("bench", nil)
	for i := 0; i < 100000; i++ {
		m.Set(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MoveFirst(i % 100000)
	}
}
