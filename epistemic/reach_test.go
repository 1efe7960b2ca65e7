package epistemic

import (
	"errors"
	"testing"
)

func chainModel() *Model {
	// w0 -a-> w1 -a-> w2, w0 -b-> w2
	m := NewModel()
	m.AddWorld(nil)
	m.AddWorld(nil)
	m.AddWorld(nil)
	m.AddTransition(0, 1, "a")
	m.AddTransition(1, 2, "a")
	m.AddTransition(0, 2, "b")
	return m
}

func TestAllReachable(t *testing.T) {
	m := chainModel()

	got := AllReachable(m, 0, "a")
	want := WorldSet{1: {}, 2: {}}
	if !got.Equals(want) {
		t.Errorf("Expected a-closure {1 2} from w0, got %v", got.ToSlice())
	}

	// one agent's closure never borrows another agent's edges
	got = AllReachable(m, 0, "b")
	if !got.Equals(WorldSet{2: {}}) {
		t.Errorf("Expected b-closure {2} from w0, got %v", got.ToSlice())
	}

	// the start world is not reachable without a cycle back to it
	if got.Has(0) {
		t.Error("Expected w0 outside its own closure")
	}

	if AllReachable(m, 2, "a").Size() != 0 {
		t.Error("Expected empty closure at a dead end")
	}
}

func TestAllReachableCycle(t *testing.T) {
	m := NewModel()
	m.AddWorld(nil)
	m.AddWorld(nil)
	m.AddTransition(0, 1, "a")
	m.AddTransition(1, 0, "a")

	got := AllReachable(m, 0, "a")
	if !got.Equals(WorldSet{0: {}, 1: {}}) {
		t.Errorf("Expected cyclic closure {0 1}, got %v", got.ToSlice())
	}
}

func TestUnionReachable(t *testing.T) {
	m := chainModel()

	union := UnionReachable(m, 0, []string{"a", "b"})
	for _, agent := range []string{"a", "b"} {
		for w := range AllReachable(m, 0, agent) {
			if !union.Has(w) {
				t.Errorf("Expected union to contain %d from agent %s", w, agent)
			}
		}
	}

	if UnionReachable(m, 0, nil).Size() != 0 {
		t.Error("Expected empty union for empty agent set")
	}
}

func TestIntersectReachable(t *testing.T) {
	m := chainModel()

	inter, err := IntersectReachable(m, 0, []string{"a", "b"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !inter.Equals(WorldSet{2: {}}) {
		t.Errorf("Expected intersection {2}, got %v", inter.ToSlice())
	}
	for w := range inter {
		if !AllReachable(m, 0, "a").Has(w) || !AllReachable(m, 0, "b").Has(w) {
			t.Errorf("Expected intersection member %d in both closures", w)
		}
	}
}

func TestIntersectReachableEmptyGroup(t *testing.T) {
	m := chainModel()
	if _, err := IntersectReachable(m, 0, nil); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("Expected ErrEmptyGroup, got %v", err)
	}
}
