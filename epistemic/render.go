package epistemic

import (
	"fmt"
	"strings"
)

// Pure string renderers for formulas. The canonical text form is
// Formula.String; these produce the symbolic (Unicode) and typeset (LaTeX)
// forms from the same tree.

// Unicode renders f with the usual logical symbols: ¬ ∧ ∨ → ↔ □ ◇ and
// K/E/D/C subscripted by their agents.
func Unicode(f Formula) string {
	switch f := f.(type) {
	case Prop:
		return f.Name
	case Not:
		return fmt.Sprintf("¬%s", Unicode(f.Sub))
	case And:
		return fmt.Sprintf("(%s ∧ %s)", Unicode(f.Left), Unicode(f.Right))
	case Or:
		return fmt.Sprintf("(%s ∨ %s)", Unicode(f.Left), Unicode(f.Right))
	case Implies:
		return fmt.Sprintf("(%s → %s)", Unicode(f.Left), Unicode(f.Right))
	case Iff:
		return fmt.Sprintf("(%s ↔ %s)", Unicode(f.Left), Unicode(f.Right))
	case Box:
		return fmt.Sprintf("□%s", Unicode(f.Sub))
	case Diamond:
		return fmt.Sprintf("◇%s", Unicode(f.Sub))
	case Knows:
		return fmt.Sprintf("K%s %s", subscript(f.Agent), Unicode(f.Sub))
	case Group:
		return subscript(f)
	case Everyone:
		return fmt.Sprintf("E%s %s", subscript(f.Group), Unicode(f.Sub))
	case Distributed:
		return fmt.Sprintf("D%s %s", subscript(f.Group), Unicode(f.Sub))
	case Common:
		return fmt.Sprintf("C%s %s", subscript(f.Group), Unicode(f.Sub))
	default:
		return "?"
	}
}

// LaTeX renders f as LaTeX source.
func LaTeX(f Formula) string {
	switch f := f.(type) {
	case Prop:
		return f.Name
	case Not:
		return fmt.Sprintf("\\neg %s", LaTeX(f.Sub))
	case And:
		return fmt.Sprintf("(%s \\wedge %s)", LaTeX(f.Left), LaTeX(f.Right))
	case Or:
		return fmt.Sprintf("(%s \\vee %s)", LaTeX(f.Left), LaTeX(f.Right))
	case Implies:
		return fmt.Sprintf("(%s \\rightarrow %s)", LaTeX(f.Left), LaTeX(f.Right))
	case Iff:
		return fmt.Sprintf("(%s \\leftrightarrow %s)", LaTeX(f.Left), LaTeX(f.Right))
	case Box:
		return fmt.Sprintf("\\Box %s", LaTeX(f.Sub))
	case Diamond:
		return fmt.Sprintf("\\Diamond %s", LaTeX(f.Sub))
	case Knows:
		return fmt.Sprintf("K_{%s} %s", agentText(f.Agent), LaTeX(f.Sub))
	case Group:
		return agentText(f)
	case Everyone:
		return fmt.Sprintf("E_{%s} %s", agentText(f.Group), LaTeX(f.Sub))
	case Distributed:
		return fmt.Sprintf("D_{%s} %s", agentText(f.Group), LaTeX(f.Sub))
	case Common:
		return fmt.Sprintf("C_{%s} %s", agentText(f.Group), LaTeX(f.Sub))
	default:
		return "?"
	}
}

// agentText flattens an agent leaf or group into "a,b,c". Malformed group
// positions render as "?" rather than failing; renderers are best-effort.
func agentText(f Formula) string {
	agents, err := resolveAgents(f)
	if err != nil {
		return "?"
	}
	return strings.Join(agents, ",")
}

// subscript renders "_a" for a single agent and "_{a,b}" for a group.
func subscript(f Formula) string {
	s := agentText(f)
	if strings.Contains(s, ",") {
		return "_{" + s + "}"
	}
	return "_" + s
}
