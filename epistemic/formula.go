package epistemic

import "fmt"

// Formula represents a formula of multi-agent epistemic modal logic.
// The set of node kinds is closed: evaluation dispatches exhaustively over
// the structs below, and nothing outside this package can add a kind.
// String renders the canonical textual form accepted by Parse.
type Formula interface {
	fmt.Stringer
	isFormula()
}

// Prop represents an atomic proposition. It doubles as an agent leaf when
// it appears in the agent position of Knows or inside a Group.
type Prop struct {
	Name string
}

func (p Prop) String() string {
	return p.Name
}

// Not represents negation
type Not struct {
	Sub Formula
}

func (n Not) String() string {
	return fmt.Sprintf("~%s", n.Sub)
}

// And represents conjunction
type And struct {
	Left, Right Formula
}

func (a And) String() string {
	return fmt.Sprintf("(%s & %s)", a.Left, a.Right)
}

// Or represents disjunction
type Or struct {
	Left, Right Formula
}

func (o Or) String() string {
	return fmt.Sprintf("(%s | %s)", o.Left, o.Right)
}

// Implies represents material implication
type Implies struct {
	Left, Right Formula
}

func (i Implies) String() string {
	return fmt.Sprintf("(%s -> %s)", i.Left, i.Right)
}

// Iff represents biconditional
type Iff struct {
	Left, Right Formula
}

func (i Iff) String() string {
	return fmt.Sprintf("(%s <-> %s)", i.Left, i.Right)
}

// Box represents necessity: truth in every successor world, over the union
// of all agents' relations
type Box struct {
	Sub Formula
}

func (b Box) String() string {
	return fmt.Sprintf("[]%s", b.Sub)
}

// Diamond represents possibility: truth in some successor world, over the
// union of all agents' relations
type Diamond struct {
	Sub Formula
}

func (d Diamond) String() string {
	return fmt.Sprintf("<>%s", d.Sub)
}

// Knows represents individual knowledge. Agent is a single-agent Prop leaf
// by convention; the evaluator rejects anything else.
type Knows struct {
	Agent, Sub Formula
}

func (k Knows) String() string {
	return fmt.Sprintf("(%s K %s)", k.Agent, k.Sub)
}

// Group joins an agent leaf to the rest of an agent list, right-associated.
// It only ever appears as the left operand of Everyone, Distributed or
// Common, never as a boolean subformula.
type Group struct {
	Agent, Rest Formula
}

func (g Group) String() string {
	return fmt.Sprintf("%s,%s", g.Agent, g.Rest)
}

// Everyone represents "everyone in the group knows"
type Everyone struct {
	Group, Sub Formula
}

func (e Everyone) String() string {
	return fmt.Sprintf("(%s E %s)", e.Group, e.Sub)
}

// Distributed represents distributed knowledge within a group
type Distributed struct {
	Group, Sub Formula
}

func (d Distributed) String() string {
	return fmt.Sprintf("(%s D %s)", d.Group, d.Sub)
}

// Common represents common knowledge within a group
type Common struct {
	Group, Sub Formula
}

func (c Common) String() string {
	return fmt.Sprintf("(%s C %s)", c.Group, c.Sub)
}

func (Prop) isFormula()        {}
func (Not) isFormula()         {}
func (And) isFormula()         {}
func (Or) isFormula()          {}
func (Implies) isFormula()     {}
func (Iff) isFormula()         {}
func (Box) isFormula()         {}
func (Diamond) isFormula()     {}
func (Knows) isFormula()       {}
func (Group) isFormula()       {}
func (Everyone) isFormula()    {}
func (Distributed) isFormula() {}
func (Common) isFormula()      {}
