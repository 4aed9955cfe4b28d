// Package expr compiles caller-supplied refinement heuristics under a
// restricted boolean grammar: feature comparisons against quoted or numeric
// literals combined with and, or, not, and parentheses. The grammar is
// closed, so an untrusted expression can never execute code or reach
// outside the feature mapping it is evaluated against.
package expr

import (
	"fmt"

	"refinebench/pkg/core"
)

// Predicate is a compiled refinement heuristic. Compile once, evaluate
// against any number of feature mappings; evaluation is pure.
type Predicate struct {
	Source string
	root   node
}

// Compile parses and type-checks an expression against a feature schema.
// Structural problems (unknown features, unbalanced parentheses,
// disallowed tokens) fail with core.ErrMalformedExpression; operator and
// literal type conflicts fail with core.ErrTypeMismatch. Both are caught
// here, never at evaluation time.
func Compile(expression string, schema core.Schema) (*Predicate, error) {
	tokens, err := tokenize(expression)
	if err != nil {
		return nil, err
	}
	p := parser{tokens: tokens, schema: schema}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		tok := p.tokens[p.index]
		return nil, fmt.Errorf("%w: unexpected %q at position %d", core.ErrMalformedExpression, tok.text, tok.pos)
	}
	return &Predicate{Source: expression, root: root}, nil
}

// Evaluate applies the predicate to one feature mapping. Feature keys the
// expression does not reference are ignored.
func (p *Predicate) Evaluate(features core.Features) (bool, error) {
	return p.root.eval(features)
}

type parser struct {
	tokens []token
	index  int
	schema core.Schema
}

func (p *parser) done() bool {
	return p.index >= len(p.tokens)
}

func (p *parser) peek() (token, bool) {
	if p.done() {
		return token{}, false
	}
	return p.tokens[p.index], true
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOr {
			return left, nil
		}
		p.index++
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokAnd {
			return left, nil
		}
		p.index++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of expression", core.ErrMalformedExpression)
	}

	switch tok.kind {
	case tokNot:
		p.index++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{operand: operand}, nil
	case tokLParen:
		p.index++
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: unbalanced parentheses, missing %q for %q at position %d",
				core.ErrMalformedExpression, ")", "(", tok.pos)
		}
		p.index++
		return inner, nil
	case tokIdent:
		return p.parseComparison()
	default:
		return nil, fmt.Errorf("%w: unexpected %q at position %d", core.ErrMalformedExpression, tok.text, tok.pos)
	}
}

func (p *parser) parseComparison() (node, error) {
	ident := p.tokens[p.index]
	p.index++

	featureType, known := p.schema[ident.text]
	if !known {
		return nil, fmt.Errorf("%w: unknown feature %q at position %d", core.ErrMalformedExpression, ident.text, ident.pos)
	}

	opTok, ok := p.peek()
	if !ok || opTok.kind != tokOp {
		return nil, fmt.Errorf("%w: expected comparison operator after %q at position %d",
			core.ErrMalformedExpression, ident.text, ident.pos)
	}
	p.index++

	lit, ok := p.peek()
	if !ok || (lit.kind != tokString && lit.kind != tokNumber) {
		return nil, fmt.Errorf("%w: expected literal after %q at position %d",
			core.ErrMalformedExpression, opTok.text, opTok.pos)
	}
	p.index++

	relational := opTok.text != "==" && opTok.text != "!="
	if featureType == core.FeatureCategorical {
		if relational {
			return nil, fmt.Errorf("%w: relational operator %q on categorical feature %q",
				core.ErrTypeMismatch, opTok.text, ident.text)
		}
		if lit.kind != tokString {
			return nil, fmt.Errorf("%w: categorical feature %q compared to number %s",
				core.ErrTypeMismatch, ident.text, lit.text)
		}
		return comparisonNode{feature: ident.text, op: opTok.text, typ: core.FeatureCategorical, str: lit.text}, nil
	}

	if lit.kind != tokNumber {
		return nil, fmt.Errorf("%w: numeric feature %q compared to string %q",
			core.ErrTypeMismatch, ident.text, lit.text)
	}
	return comparisonNode{feature: ident.text, op: opTok.text, typ: core.FeatureNumeric, num: lit.num}, nil
}
