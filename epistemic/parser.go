package epistemic

import (
	"fmt"
	"strings"
)

// Formula parser. The grammar is not fixed: callers hand Parse a table of
// unary and binary operator symbols, each with a key into the node
// constructors, a precedence rank and (for binary operators) an
// associativity. The evaluator does not care which concrete symbols are
// configured as long as the resulting tree uses the node kinds of this
// package.

// UnaryOp configures one prefix operator symbol.
type UnaryOp struct {
	Symbol string
	Build  func(Formula) Formula
}

// BinaryOp configures one infix operator symbol. Higher precedence binds
// tighter.
type BinaryOp struct {
	Symbol     string
	Precedence int
	RightAssoc bool
	Build      func(left, right Formula) Formula
}

// ParserConfig is the full operator table for one parser instance.
type ParserConfig struct {
	Unary  []UnaryOp
	Binary []BinaryOp
}

// DefaultConfig returns the standard operator table:
//
//	~p   []p   <>p                        (prefix)
//	a K p                                 (individual knowledge)
//	a,b,c                                 (agent group, right-associated)
//	g E p   g D p   g C p                 (everyone / distributed / common)
//	p & q   p | q   p -> q   p <-> q      (boolean connectives)
func DefaultConfig() ParserConfig {
	return ParserConfig{
		Unary: []UnaryOp{
			{Symbol: "~", Build: func(f Formula) Formula { return Not{Sub: f} }},
			{Symbol: "[]", Build: func(f Formula) Formula { return Box{Sub: f} }},
			{Symbol: "<>", Build: func(f Formula) Formula { return Diamond{Sub: f} }},
		},
		Binary: []BinaryOp{
			{Symbol: ",", Precedence: 70, RightAssoc: true, Build: func(l, r Formula) Formula { return Group{Agent: l, Rest: r} }},
			{Symbol: "K", Precedence: 60, RightAssoc: true, Build: func(l, r Formula) Formula { return Knows{Agent: l, Sub: r} }},
			{Symbol: "E", Precedence: 60, RightAssoc: true, Build: func(l, r Formula) Formula { return Everyone{Group: l, Sub: r} }},
			{Symbol: "D", Precedence: 60, RightAssoc: true, Build: func(l, r Formula) Formula { return Distributed{Group: l, Sub: r} }},
			{Symbol: "C", Precedence: 60, RightAssoc: true, Build: func(l, r Formula) Formula { return Common{Group: l, Sub: r} }},
			{Symbol: "&", Precedence: 50, Build: func(l, r Formula) Formula { return And{Left: l, Right: r} }},
			{Symbol: "|", Precedence: 40, Build: func(l, r Formula) Formula { return Or{Left: l, Right: r} }},
			{Symbol: "->", Precedence: 30, RightAssoc: true, Build: func(l, r Formula) Formula { return Implies{Left: l, Right: r} }},
			{Symbol: "<->", Precedence: 20, Build: func(l, r Formula) Formula { return Iff{Left: l, Right: r} }},
		},
	}
}

// Parse parses input with the default operator table.
func Parse(input string) (Formula, error) {
	return ParseWith(DefaultConfig(), input)
}

// ParseWith parses input with a caller-supplied operator table. It returns
// a Formula, or an error wrapping ErrParse.
func ParseWith(cfg ParserConfig, input string) (Formula, error) {
	p := &parser{cfg: cfg, input: input}
	f, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("trailing input at offset %d: %w", p.pos, ErrParse)
	}
	return f, nil
}

type parser struct {
	cfg   ParserConfig
	input string
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// matchSymbol consumes symbol at the cursor if present, longest match wins
// among the configured symbols so "<->" is never split into "<" + "->".
func (p *parser) matchSymbol(symbol string) bool {
	if strings.HasPrefix(p.input[p.pos:], symbol) {
		p.pos += len(symbol)
		return true
	}
	return false
}

// peekBinary finds the binary operator at the cursor, preferring the
// longest matching symbol, without consuming it.
func (p *parser) peekBinary() (BinaryOp, bool) {
	var best BinaryOp
	found := false
	for _, op := range p.cfg.Binary {
		if strings.HasPrefix(p.input[p.pos:], op.Symbol) {
			if !found || len(op.Symbol) > len(best.Symbol) {
				best = op
				found = true
			}
		}
	}
	return best, found
}

// parseExpr implements precedence climbing over the binary table.
func (p *parser) parseExpr(minPrec int) (Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		op, ok := p.peekBinary()
		if !ok || op.Precedence < minPrec {
			return left, nil
		}
		p.pos += len(op.Symbol)
		nextMin := op.Precedence + 1
		if op.RightAssoc {
			nextMin = op.Precedence
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = op.Build(left, right)
	}
}

func (p *parser) parseUnary() (Formula, error) {
	p.skipSpaces()
	if p.pos == len(p.input) {
		return nil, fmt.Errorf("unexpected end of input: %w", ErrParse)
	}
	var bestUnary *UnaryOp
	for i, op := range p.cfg.Unary {
		if strings.HasPrefix(p.input[p.pos:], op.Symbol) {
			if bestUnary == nil || len(op.Symbol) > len(bestUnary.Symbol) {
				bestUnary = &p.cfg.Unary[i]
			}
		}
	}
	if bestUnary != nil {
		p.pos += len(bestUnary.Symbol)
		sub, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return bestUnary.Build(sub), nil
	}
	if p.matchSymbol("(") {
		f, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if !p.matchSymbol(")") {
			return nil, fmt.Errorf("missing ')' at offset %d: %w", p.pos, ErrParse)
		}
		return f, nil
	}
	return p.parseProp()
}

// parseProp consumes a proposition or agent identifier: a lowercase letter
// followed by lowercase letters and digits. Uppercase is reserved for
// operator symbols such as K and the wire format's markers.
func (p *parser) parseProp() (Formula, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos], p.pos > start) {
		p.pos++
	}
	if p.pos == start {
		return nil, fmt.Errorf("expected proposition at offset %d: %w", start, ErrParse)
	}
	return Prop{Name: p.input[start:p.pos]}, nil
}

func isIdentChar(c byte, tail bool) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	return tail && c >= '0' && c <= '9'
}
