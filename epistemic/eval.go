package epistemic

import "fmt"

// Evaluate is the public entry point of the truth evaluator: it decides
// whether formula f holds at the given world of model m. It validates its
// arguments (ErrInvalidModel, ErrInvalidWff, ErrStateNotFound) before
// recursing. Evaluation only reads the model; callers must not mutate it
// concurrently with an in-flight call.
func Evaluate(m *Model, world int, f Formula) (bool, error) {
	if m == nil {
		return false, ErrInvalidModel
	}
	if f == nil {
		return false, ErrInvalidWff
	}
	if !m.HasWorld(world) {
		return false, fmt.Errorf("world %d: %w", world, ErrStateNotFound)
	}
	return eval(m, world, f)
}

func eval(m *Model, world int, f Formula) (bool, error) {
	switch f := f.(type) {
	case Prop:
		return m.Valuation(f.Name, world)
	case Not:
		v, err := eval(m, world, f.Sub)
		if err != nil {
			return false, err
		}
		return !v, nil
	case And:
		left, err := eval(m, world, f.Left)
		if err != nil || !left {
			return false, err
		}
		return eval(m, world, f.Right)
	case Or:
		left, err := eval(m, world, f.Left)
		if err != nil || left {
			return left, err
		}
		return eval(m, world, f.Right)
	case Implies:
		left, err := eval(m, world, f.Left)
		if err != nil {
			return false, err
		}
		if !left {
			return true, nil
		}
		return eval(m, world, f.Right)
	case Iff:
		left, err := eval(m, world, f.Left)
		if err != nil {
			return false, err
		}
		right, err := eval(m, world, f.Right)
		if err != nil {
			return false, err
		}
		return left == right, nil
	case Box:
		// Vacuously true at a dead end.
		return holdsAtAll(m, m.AllSuccessors(world), f.Sub)
	case Diamond:
		return holdsAtSome(m, m.AllSuccessors(world), f.Sub)
	case Knows:
		agent, err := singleAgent(f.Agent)
		if err != nil {
			return false, err
		}
		// An agent with no outgoing relation here knows everything,
		// including agents the model has never heard of.
		succs, _ := m.Successors(world, agent)
		return holdsAtAll(m, succs, f.Sub)
	case Everyone:
		agents, err := resolveAgents(f.Group)
		if err != nil {
			return false, err
		}
		for _, agent := range agents {
			v, err := eval(m, world, Knows{Agent: Prop{Name: agent}, Sub: f.Sub})
			if err != nil || !v {
				return false, err
			}
		}
		return true, nil
	case Distributed:
		agents, err := resolveAgents(f.Group)
		if err != nil {
			return false, err
		}
		reach, err := IntersectReachable(m, world, agents)
		if err != nil {
			return false, err
		}
		return holdsAtAll(m, reach.ToSlice(), f.Sub)
	case Common:
		agents, err := resolveAgents(f.Group)
		if err != nil {
			return false, err
		}
		reach := UnionReachable(m, world, agents)
		return holdsAtAll(m, reach.ToSlice(), f.Sub)
	case Group:
		// A group resolves to an agent set, not a truth value; it is only
		// legal under Everyone, Distributed and Common.
		return false, fmt.Errorf("agent group in boolean position: %w", ErrInvalidFormula)
	default:
		return false, fmt.Errorf("unrecognized node %T: %w", f, ErrInvalidFormula)
	}
}

// holdsAtAll reports whether f holds at every listed world; true when the
// list is empty.
func holdsAtAll(m *Model, worlds []int, f Formula) (bool, error) {
	for _, w := range worlds {
		v, err := eval(m, w, f)
		if err != nil || !v {
			return false, err
		}
	}
	return true, nil
}

// holdsAtSome reports whether f holds at some listed world; false when the
// list is empty.
func holdsAtSome(m *Model, worlds []int, f Formula) (bool, error) {
	for _, w := range worlds {
		v, err := eval(m, w, f)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

// singleAgent extracts the agent name from the agent position of Knows,
// which must be a bare Prop leaf.
func singleAgent(f Formula) (string, error) {
	p, ok := f.(Prop)
	if !ok {
		return "", fmt.Errorf("agent position holds %T: %w", f, ErrInvalidFormula)
	}
	return p.Name, nil
}

// resolveAgents flattens a Group chain (or a degenerate single-agent leaf)
// into the ordered list of distinct agents it names.
func resolveAgents(f Formula) ([]string, error) {
	var agents []string
	seen := make(map[string]bool)
	for {
		switch g := f.(type) {
		case Prop:
			if !seen[g.Name] {
				seen[g.Name] = true
				agents = append(agents, g.Name)
			}
			return agents, nil
		case Group:
			agent, err := singleAgent(g.Agent)
			if err != nil {
				return nil, err
			}
			if !seen[agent] {
				seen[agent] = true
				agents = append(agents, agent)
			}
			f = g.Rest
		default:
			return nil, fmt.Errorf("group position holds %T: %w", f, ErrInvalidFormula)
		}
	}
}
