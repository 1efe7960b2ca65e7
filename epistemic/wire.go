package epistemic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Compact textual wire format for models. A model serializes to one token
// per world in index order, separated by ';'. A deleted world contributes
// an empty token so positions survive the round trip. A live world's token
// is
//
//	A<props>S<agent><targets>S<agent><targets>...
//
// where <props> is the comma-separated valuation and each relation segment
// is one agent identifier immediately followed by its comma-separated
// successor indices. The uppercase markers only parse unambiguously if
// identifiers stay out of their way: propositions are a lowercase letter
// followed by lowercase letters or digits, agents are lowercase letters
// only (an agent name ending in a digit would bleed into its target list).
// Serialize rejects identifiers outside those shapes.

// Serialize renders m in the wire format.
func Serialize(m *Model) (string, error) {
	if m == nil {
		return "", ErrInvalidModel
	}
	tokens := make([]string, 0, len(m.worlds))
	for i, w := range m.worlds {
		if w == nil {
			tokens = append(tokens, "")
			continue
		}
		props := make([]string, 0, len(w.valuation))
		for prop := range w.valuation {
			if !validPropName(prop) {
				return "", fmt.Errorf("world %d: proposition %q: %w", i, prop, ErrBadWireFormat)
			}
			props = append(props, prop)
		}
		sort.Strings(props)
		var sb strings.Builder
		sb.WriteString("A")
		sb.WriteString(strings.Join(props, ","))
		agents := make([]string, 0, len(w.successors))
		for agent := range w.successors {
			agents = append(agents, agent)
		}
		sort.Strings(agents)
		for _, agent := range agents {
			if !validAgentName(agent) {
				return "", fmt.Errorf("world %d: agent %q: %w", i, agent, ErrBadWireFormat)
			}
			targets := w.successors[agent]
			if len(targets) == 0 {
				continue
			}
			strs := make([]string, len(targets))
			for j, t := range targets {
				strs[j] = strconv.Itoa(t)
			}
			sb.WriteString("S")
			sb.WriteString(agent)
			sb.WriteString(strings.Join(strs, ","))
		}
		tokens = append(tokens, sb.String())
	}
	return strings.Join(tokens, ";"), nil
}

// Deserialize parses the wire format into a fresh model. Malformed input is
// rejected in full; no partially-built model escapes and no existing model
// is touched.
func Deserialize(s string) (*Model, error) {
	m := NewModel()
	if s == "" {
		return m, nil
	}
	tokens := strings.Split(s, ";")
	m.worlds = make([]*World, len(tokens))
	for i, token := range tokens {
		if token == "" {
			continue
		}
		w, err := parseWorldToken(token)
		if err != nil {
			return nil, fmt.Errorf("world %d: %w", i, err)
		}
		m.worlds[i] = w
	}
	// Transitions may only point at live worlds.
	for i, w := range m.worlds {
		if w == nil {
			continue
		}
		for agent, targets := range w.successors {
			for _, t := range targets {
				if !m.HasWorld(t) {
					return nil, fmt.Errorf("world %d: agent %s targets missing world %d: %w", i, agent, t, ErrBadWireFormat)
				}
			}
		}
	}
	return m, nil
}

func parseWorldToken(token string) (*World, error) {
	if token[0] != 'A' {
		return nil, fmt.Errorf("token %q does not start with 'A': %w", token, ErrBadWireFormat)
	}
	rest := token[1:]
	valPart := rest
	if idx := strings.IndexByte(rest, 'S'); idx >= 0 {
		valPart = rest[:idx]
		rest = rest[idx+1:]
	} else {
		rest = ""
	}
	w := &World{
		valuation:  make(map[string]bool),
		successors: make(map[string][]int),
	}
	if valPart != "" {
		for _, prop := range strings.Split(valPart, ",") {
			if !validPropName(prop) {
				return nil, fmt.Errorf("proposition %q: %w", prop, ErrBadWireFormat)
			}
			w.valuation[prop] = true
		}
	}
	if rest == "" {
		return w, nil
	}
	// Relation segments: agents are letters only, targets digits and
	// commas, so further 'S' bytes can only be segment markers.
	for _, seg := range strings.Split(rest, "S") {
		agent, targets, err := parseRelationSegment(seg)
		if err != nil {
			return nil, err
		}
		w.successors[agent] = append(w.successors[agent], targets...)
	}
	return w, nil
}

func parseRelationSegment(seg string) (string, []int, error) {
	end := 0
	for end < len(seg) && seg[end] >= 'a' && seg[end] <= 'z' {
		end++
	}
	if end == 0 {
		return "", nil, fmt.Errorf("relation segment %q has no agent: %w", seg, ErrBadWireFormat)
	}
	agent := seg[:end]
	if end == len(seg) {
		return "", nil, fmt.Errorf("agent %s has no targets: %w", agent, ErrBadWireFormat)
	}
	var targets []int
	for _, part := range strings.Split(seg[end:], ",") {
		t, err := strconv.Atoi(part)
		if err != nil || t < 0 {
			return "", nil, fmt.Errorf("agent %s: bad target %q: %w", agent, part, ErrBadWireFormat)
		}
		targets = append(targets, t)
	}
	return agent, targets, nil
}

func validPropName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func validAgentName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 'a' || name[i] > 'z' {
			return false
		}
	}
	return true
}
