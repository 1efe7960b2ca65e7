// Package epistemic implements a model checker for multi-agent epistemic
// modal logic over explicit Kripke models: finite sets of possible worlds
// with a propositional valuation per world and one directed accessibility
// relation per agent.
package epistemic

import (
	"fmt"
	"sort"
)

// World holds the state of one possible world: the set of propositions true
// there and, per agent, an ordered list of successor world indices.
type World struct {
	valuation  map[string]bool
	successors map[string][]int
}

// Model is a mutable Kripke model. Worlds are identified by their position
// in the arena; deleting a world leaves a nil hole so that the indices held
// by transitions, callers and the wire format stay stable.
type Model struct {
	worlds []*World
}

// NewModel creates an empty Kripke model.
func NewModel() *Model {
	return &Model{}
}

// NumWorlds returns the length of the world arena, counting deleted slots.
func (m *Model) NumWorlds() int {
	return len(m.worlds)
}

// HasWorld reports whether index i names a live (non-deleted) world.
func (m *Model) HasWorld(i int) bool {
	return i >= 0 && i < len(m.worlds) && m.worlds[i] != nil
}

// AddWorld appends a new world with the given initial valuation and an
// empty relation, and returns its index. Only propositions mapped to true
// are stored; false entries are dropped.
func (m *Model) AddWorld(valuation map[string]bool) int {
	w := &World{
		valuation:  make(map[string]bool),
		successors: make(map[string][]int),
	}
	for prop, v := range valuation {
		if v {
			w.valuation[prop] = true
		}
	}
	m.worlds = append(m.worlds, w)
	return len(m.worlds) - 1
}

// RemoveWorld deletes world i, leaving a hole at its index, and removes
// every transition in every remaining world that targets i. It is a no-op
// if i is out of range or already deleted.
func (m *Model) RemoveWorld(i int) {
	if !m.HasWorld(i) {
		return
	}
	m.worlds[i] = nil
	for _, w := range m.worlds {
		if w == nil {
			continue
		}
		for agent, targets := range w.successors {
			w.successors[agent] = removeAll(targets, i)
		}
	}
}

// AddTransition appends target to each given agent's successor list at
// source, creating the list if the agent has none there. Duplicate
// transitions are allowed. It is a no-op if either endpoint is absent.
func (m *Model) AddTransition(source, target int, agents ...string) {
	if !m.HasWorld(source) || !m.HasWorld(target) {
		return
	}
	w := m.worlds[source]
	for _, agent := range agents {
		w.successors[agent] = append(w.successors[agent], target)
	}
}

// RemoveTransition removes, for each given agent, the first occurrence of
// target from that agent's successor list at source. Agents with no
// relation at source are skipped. It is a no-op if source is absent.
func (m *Model) RemoveTransition(source, target int, agents ...string) {
	if !m.HasWorld(source) {
		return
	}
	w := m.worlds[source]
	for _, agent := range agents {
		targets, ok := w.successors[agent]
		if !ok {
			continue
		}
		for idx, t := range targets {
			if t == target {
				w.successors[agent] = append(targets[:idx:idx], targets[idx+1:]...)
				break
			}
		}
	}
}

// EditValuation sets each proposition in partial true (insert) or false
// (delete) at world i. False propositions are removed outright so that the
// valuation only ever stores true entries. It is a no-op if i is absent.
func (m *Model) EditValuation(i int, partial map[string]bool) {
	if !m.HasWorld(i) {
		return
	}
	w := m.worlds[i]
	for prop, v := range partial {
		if v {
			w.valuation[prop] = true
		} else {
			delete(w.valuation, prop)
		}
	}
}

// Valuation reports whether prop is true at world i. Unlike the mutating
// operations it fails on an absent world, with ErrStateNotFound.
func (m *Model) Valuation(prop string, i int) (bool, error) {
	if !m.HasWorld(i) {
		return false, fmt.Errorf("world %d: %w", i, ErrStateNotFound)
	}
	return m.worlds[i].valuation[prop], nil
}

// Successors returns a copy of agent's successor list at world i. The list
// is empty if the agent has no outgoing relation there; ok is false if i
// itself is absent.
func (m *Model) Successors(i int, agent string) (targets []int, ok bool) {
	if !m.HasWorld(i) {
		return nil, false
	}
	src := m.worlds[i].successors[agent]
	return append([]int(nil), src...), true
}

// AllSuccessors returns the union, across all agents, of the successor
// lists at world i, without duplicates. Box and Diamond are agent-agnostic
// and quantify over this merged relation.
func (m *Model) AllSuccessors(i int) []int {
	if !m.HasWorld(i) {
		return nil
	}
	seen := make(map[int]bool)
	var union []int
	agents := make([]string, 0, len(m.worlds[i].successors))
	for agent := range m.worlds[i].successors {
		agents = append(agents, agent)
	}
	sort.Strings(agents)
	for _, agent := range agents {
		for _, t := range m.worlds[i].successors[agent] {
			if !seen[t] {
				seen[t] = true
				union = append(union, t)
			}
		}
	}
	return union
}

// Agents returns, sorted, every agent identifier that appears as a relation
// key in some live world. The set is derived by scanning, not maintained
// incrementally, so agents whose last transitions were removed may linger
// until their relation key is gone.
func (m *Model) Agents() []string {
	seen := make(map[string]bool)
	for _, w := range m.worlds {
		if w == nil {
			continue
		}
		for agent := range w.successors {
			seen[agent] = true
		}
	}
	agents := make([]string, 0, len(seen))
	for agent := range seen {
		agents = append(agents, agent)
	}
	sort.Strings(agents)
	return agents
}

// ListWorlds returns each slot's valuation in index order. Deleted slots
// contribute a nil entry, preserving positions. The returned maps are
// copies; mutating them does not affect the model.
func (m *Model) ListWorlds() []map[string]bool {
	out := make([]map[string]bool, len(m.worlds))
	for i, w := range m.worlds {
		if w == nil {
			continue
		}
		val := make(map[string]bool, len(w.valuation))
		for prop := range w.valuation {
			val[prop] = true
		}
		out[i] = val
	}
	return out
}

// String returns a human-readable dump of the model.
func (m *Model) String() string {
	result := "Kripke Model:\n"
	for i, w := range m.worlds {
		if w == nil {
			result += fmt.Sprintf("  w%d: (deleted)\n", i)
			continue
		}
		props := make([]string, 0, len(w.valuation))
		for prop := range w.valuation {
			props = append(props, prop)
		}
		sort.Strings(props)
		result += fmt.Sprintf("  w%d: %v\n", i, props)
		agents := make([]string, 0, len(w.successors))
		for agent := range w.successors {
			agents = append(agents, agent)
		}
		sort.Strings(agents)
		for _, agent := range agents {
			result += fmt.Sprintf("    %s -> %v\n", agent, w.successors[agent])
		}
	}
	return result
}

// removeAll filters every occurrence of target out of a successor list.
func removeAll(targets []int, target int) []int {
	out := targets[:0]
	for _, t := range targets {
		if t != target {
			out = append(out, t)
		}
	}
	return out
}
