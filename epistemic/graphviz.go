package epistemic

import (
	"fmt"
	"sort"
	"strings"
)

// Graphviz generates a Graphviz DOT representation of the model. Worlds
// are drawn as circles labeled with their index and valuation; parallel
// transitions between the same pair of worlds are merged into one edge
// labeled with the agents that share it.
func Graphviz(m *Model) string {
	var sb strings.Builder

	sb.WriteString("digraph KripkeModel {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	for i, val := range m.ListWorlds() {
		if val == nil {
			continue
		}
		props := make([]string, 0, len(val))
		for prop := range val {
			props = append(props, prop)
		}
		sort.Strings(props)
		if len(props) > 0 {
			sb.WriteString(fmt.Sprintf("  w%d [label=\"w%d\\n{%s}\"];\n", i, i, strings.Join(props, ", ")))
		} else {
			sb.WriteString(fmt.Sprintf("  w%d [label=\"w%d\"];\n", i, i))
		}
	}
	sb.WriteString("\n")

	type edge struct{ from, to int }
	labels := make(map[edge][]string)
	var edges []edge
	for _, agent := range m.Agents() {
		for i := 0; i < m.NumWorlds(); i++ {
			targets, ok := m.Successors(i, agent)
			if !ok {
				continue
			}
			seen := make(map[int]bool)
			for _, t := range targets {
				if seen[t] {
					continue
				}
				seen[t] = true
				e := edge{i, t}
				if _, ok := labels[e]; !ok {
					edges = append(edges, e)
				}
				labels[e] = append(labels[e], agent)
			}
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].from != edges[b].from {
			return edges[a].from < edges[b].from
		}
		return edges[a].to < edges[b].to
	})
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  w%d -> w%d [label=\"%s\"];\n", e.from, e.to, strings.Join(labels[e], ",")))
	}

	sb.WriteString("}\n")
	return sb.String()
}
