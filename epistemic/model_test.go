package epistemic

import (
	"errors"
	"testing"
)

func TestModelBasics(t *testing.T) {
	m := NewModel()
	w0 := m.AddWorld(map[string]bool{"p": true, "q": false})
	w1 := m.AddWorld(nil)

	if w0 != 0 || w1 != 1 {
		t.Errorf("Expected indices 0 and 1, got %d and %d", w0, w1)
	}

	v, err := m.Valuation("p", w0)
	if err != nil || !v {
		t.Errorf("Expected p true at w0, got %v, %v", v, err)
	}

	// q was handed in as false and must not be stored
	v, err = m.Valuation("q", w0)
	if err != nil || v {
		t.Errorf("Expected q false at w0, got %v, %v", v, err)
	}

	// propositions never mentioned are false, not an error
	v, err = m.Valuation("r", w1)
	if err != nil || v {
		t.Errorf("Expected r false at w1, got %v, %v", v, err)
	}
}

func TestValuationAbsentWorld(t *testing.T) {
	m := NewModel()
	m.AddWorld(nil)

	if _, err := m.Valuation("p", 5); !errors.Is(err, ErrStateNotFound) {
		t.Errorf("Expected ErrStateNotFound for out-of-range world, got %v", err)
	}

	m.RemoveWorld(0)
	if _, err := m.Valuation("p", 0); !errors.Is(err, ErrStateNotFound) {
		t.Errorf("Expected ErrStateNotFound for deleted world, got %v", err)
	}
}

func TestAddTransition(t *testing.T) {
	m := NewModel()
	m.AddWorld(nil)
	m.AddWorld(nil)

	m.AddTransition(0, 1, "a", "b")
	m.AddTransition(0, 1, "a") // duplicates are allowed

	succs, ok := m.Successors(0, "a")
	if !ok || len(succs) != 2 || succs[0] != 1 || succs[1] != 1 {
		t.Errorf("Expected a-successors [1 1] at w0, got %v (ok=%v)", succs, ok)
	}

	succs, ok = m.Successors(0, "b")
	if !ok || len(succs) != 1 || succs[0] != 1 {
		t.Errorf("Expected b-successors [1] at w0, got %v (ok=%v)", succs, ok)
	}

	// absent endpoints make it a no-op
	m.AddTransition(0, 7, "a")
	m.AddTransition(7, 0, "a")
	succs, _ = m.Successors(0, "a")
	if len(succs) != 2 {
		t.Errorf("Expected no-op for absent endpoints, got %v", succs)
	}
}

func TestRemoveTransition(t *testing.T) {
	m := NewModel()
	m.AddWorld(nil)
	m.AddWorld(nil)
	m.AddWorld(nil)

	m.AddTransition(0, 1, "a")
	m.AddTransition(0, 2, "a")
	m.AddTransition(0, 1, "a")

	// only the first occurrence goes
	m.RemoveTransition(0, 1, "a")
	succs, _ := m.Successors(0, "a")
	if len(succs) != 2 || succs[0] != 2 || succs[1] != 1 {
		t.Errorf("Expected a-successors [2 1] after removal, got %v", succs)
	}

	// agents with no relation at the source are skipped
	m.RemoveTransition(0, 1, "b")
	m.RemoveTransition(5, 1, "a")
}

func TestRemoveWorld(t *testing.T) {
	m := NewModel()
	m.AddWorld(map[string]bool{"p": true})
	m.AddWorld(nil)
	m.AddWorld(nil)

	m.AddTransition(0, 1, "a")
	m.AddTransition(0, 2, "a")
	m.AddTransition(2, 1, "b")
	m.AddTransition(1, 0, "a")

	m.RemoveWorld(1)

	if m.HasWorld(1) {
		t.Error("Expected w1 to be deleted")
	}
	if _, ok := m.Successors(1, "a"); ok {
		t.Error("Expected Successors at deleted world to report absence")
	}

	// indices stay stable and every transition targeting w1 is gone
	succs, _ := m.Successors(0, "a")
	if len(succs) != 1 || succs[0] != 2 {
		t.Errorf("Expected a-successors [2] at w0, got %v", succs)
	}
	succs, _ = m.Successors(2, "b")
	if len(succs) != 0 {
		t.Errorf("Expected b-successors at w2 emptied, got %v", succs)
	}

	// removing twice is a no-op, as is an out-of-range index
	m.RemoveWorld(1)
	m.RemoveWorld(-1)
	m.RemoveWorld(9)
}

func TestEditValuation(t *testing.T) {
	m := NewModel()
	m.AddWorld(map[string]bool{"p": true})

	m.EditValuation(0, map[string]bool{"p": false, "q": true})

	if v, _ := m.Valuation("p", 0); v {
		t.Error("Expected p false after edit")
	}
	if v, _ := m.Valuation("q", 0); !v {
		t.Error("Expected q true after edit")
	}

	// the valuation stores true entries only
	worlds := m.ListWorlds()
	if len(worlds[0]) != 1 {
		t.Errorf("Expected a single stored proposition, got %v", worlds[0])
	}

	m.EditValuation(3, map[string]bool{"p": true}) // no-op
}

func TestAllSuccessors(t *testing.T) {
	m := NewModel()
	m.AddWorld(nil)
	m.AddWorld(nil)
	m.AddWorld(nil)

	m.AddTransition(0, 1, "a")
	m.AddTransition(0, 2, "b")
	m.AddTransition(0, 1, "b") // shared target appears once in the union

	all := m.AllSuccessors(0)
	if len(all) != 2 {
		t.Errorf("Expected merged successors of size 2, got %v", all)
	}
	if m.AllSuccessors(9) != nil {
		t.Error("Expected nil merged successors at absent world")
	}
}

func TestAgents(t *testing.T) {
	m := NewModel()
	m.AddWorld(nil)
	m.AddWorld(nil)
	m.AddTransition(0, 1, "b", "a")
	m.AddTransition(1, 0, "c")

	agents := m.Agents()
	if len(agents) != 3 || agents[0] != "a" || agents[1] != "b" || agents[2] != "c" {
		t.Errorf("Expected agents [a b c], got %v", agents)
	}

	// deleting a world hides its relation keys from the scan
	m.RemoveWorld(1)
	agents = m.Agents()
	if len(agents) != 2 || agents[0] != "a" || agents[1] != "b" {
		t.Errorf("Expected agents [a b] after deletion, got %v", agents)
	}
}

func TestListWorldsPreservesPositions(t *testing.T) {
	m := NewModel()
	m.AddWorld(map[string]bool{"p": true})
	m.AddWorld(map[string]bool{"q": true})
	m.AddWorld(nil)
	m.RemoveWorld(1)

	worlds := m.ListWorlds()
	if len(worlds) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(worlds))
	}
	if worlds[0] == nil || !worlds[0]["p"] {
		t.Errorf("Expected {p} at slot 0, got %v", worlds[0])
	}
	if worlds[1] != nil {
		t.Errorf("Expected nil marker at slot 1, got %v", worlds[1])
	}
	if worlds[2] == nil || len(worlds[2]) != 0 {
		t.Errorf("Expected empty valuation at slot 2, got %v", worlds[2])
	}
}
