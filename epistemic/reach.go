package epistemic

import (
	"fmt"
	"sort"
)

// Reachability closures over a model's accessibility relations. These back
// the group knowledge operators: common knowledge quantifies over the union
// of the agents' multi-step reachable sets, distributed knowledge over
// their intersection. All functions read the model and never mutate it.

// WorldSet is a set of world indices.
type WorldSet map[int]struct{}

func NewWorldSet() WorldSet { return make(WorldSet) }

func (s WorldSet) Has(i int) bool { _, ok := s[i]; return ok }

func (s WorldSet) Add(i int) { s[i] = struct{}{} }

func (s WorldSet) Size() int { return len(s) }

// ToSlice returns the members in ascending order.
func (s WorldSet) ToSlice() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func (s WorldSet) Equals(other WorldSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !other.Has(i) {
			return false
		}
	}
	return true
}

func (s WorldSet) Union(other WorldSet) WorldSet {
	out := NewWorldSet()
	for i := range s {
		out.Add(i)
	}
	for i := range other {
		out.Add(i)
	}
	return out
}

func (s WorldSet) Intersect(other WorldSet) WorldSet {
	out := NewWorldSet()
	for i := range s {
		if other.Has(i) {
			out.Add(i)
		}
	}
	return out
}

// AllReachable returns every world reachable from i via one or more steps
// of agent's relation. The worklist tracks a visited set, so cyclic
// relations terminate; i itself is only included if some cycle leads back
// to it.
func AllReachable(m *Model, i int, agent string) WorldSet {
	reached := NewWorldSet()
	frontier, _ := m.Successors(i, agent)
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		if reached.Has(next) {
			continue
		}
		reached.Add(next)
		succs, _ := m.Successors(next, agent)
		frontier = append(frontier, succs...)
	}
	return reached
}

// UnionReachable returns the worlds reachable from i by at least one agent
// in the group: the union of the per-agent closures.
func UnionReachable(m *Model, i int, agents []string) WorldSet {
	out := NewWorldSet()
	for _, agent := range agents {
		out = out.Union(AllReachable(m, i, agent))
	}
	return out
}

// IntersectReachable returns the worlds reachable from i by every agent in
// the group: the intersection of the per-agent closures. An empty group has
// no defined intersection and fails with ErrEmptyGroup rather than
// silently claiming all (or no) worlds.
func IntersectReachable(m *Model, i int, agents []string) (WorldSet, error) {
	if len(agents) == 0 {
		return nil, fmt.Errorf("intersection over no agents: %w", ErrEmptyGroup)
	}
	out := AllReachable(m, i, agents[0])
	for _, agent := range agents[1:] {
		out = out.Intersect(AllReachable(m, i, agent))
	}
	return out, nil
}
