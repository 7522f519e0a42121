package metahandlers

import (
	"fmt"

	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/match"
)

// HandleSimple folds a "simple" match (a string literal, a character set, a
// character range, an element reference, or a parenthesized disjunction)
// into the grammar.Node it denotes.
func (b *Builder) HandleSimple(m match.Match) (any, error) {
	alt, ok := m.(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed simple-expression match")
	}
	switch alt.Index {
	case 0: // strg
		v, err := evaluate(alt.Child)
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("metahandlers: string literal handler returned %T, not string", v)
		}
		return grammar.ToNode(s)
	case 1, 2: // chrs, chrr
		return evaluate(alt.Child)
	case 3: // elem
		v, err := evaluate(alt.Child)
		if err != nil {
			return nil, err
		}
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("metahandlers: element reference handler returned %T, not string", v)
		}
		return b.lookupElement(name), nil
	case 4: // "(" disj ")"
		cat, ok := alt.Child.(*match.ConcatenationMatch)
		if !ok || len(cat.Children) != 5 {
			return nil, fmt.Errorf("metahandlers: malformed parenthesized expression match")
		}
		return evaluate(cat.Children[2])
	default:
		return nil, fmt.Errorf("metahandlers: unexpected simple-expression alternative %d", alt.Index)
	}
}

// HandleRange folds a "range" match ("(" intg "," (intg | "inf") ")") into
// the (min, max) pair a repetition suffix selects; max == -1 denotes "inf".
func (b *Builder) HandleRange(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 7 {
		return nil, fmt.Errorf("metahandlers: malformed repetition-range match")
	}
	startVal, err := evaluate(cat.Children[2])
	if err != nil {
		return nil, err
	}
	start, ok := startVal.(int)
	if !ok {
		return nil, fmt.Errorf("metahandlers: repetition-range start must be an integer")
	}

	endAlt, ok := cat.Children[4].(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed repetition-range match")
	}
	end := -1
	if endAlt.Index == 0 {
		endVal, err := evaluate(endAlt.Child)
		if err != nil {
			return nil, err
		}
		end, ok = endVal.(int)
		if !ok {
			return nil, fmt.Errorf("metahandlers: repetition-range end must be an integer")
		}
	}
	return repRange{min: start, max: end}, nil
}

// HandleRept folds a "rept" match (a simple expression with an optional "*
// n" or "* range" suffix) into the grammar.Node it denotes.
func (b *Builder) HandleRept(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 2 {
		return nil, fmt.Errorf("metahandlers: malformed repetition match")
	}
	baseVal, err := evaluate(cat.Children[0])
	if err != nil {
		return nil, err
	}
	base, err := asNode(baseVal)
	if err != nil {
		return nil, err
	}

	suffixRep, ok := cat.Children[1].(*match.ConcatenationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed repetition match")
	}
	if len(suffixRep.Children) == 0 {
		return base, nil
	}

	suffixCat, ok := suffixRep.Children[0].(*match.ConcatenationMatch)
	if !ok || len(suffixCat.Children) != 2 {
		return nil, fmt.Errorf("metahandlers: malformed repetition suffix match")
	}
	countAlt, ok := suffixCat.Children[1].(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed repetition suffix match")
	}
	v, err := evaluate(countAlt.Child)
	if err != nil {
		return nil, err
	}
	switch vv := v.(type) {
	case int:
		// "g * n" means exactly n repetitions, (n, n) and not (n, n+1),
		// the same exact-count convention grammar.RepN implements.
		return grammar.RepN(base, vv)
	case repRange:
		return grammar.Rep(base, vv.min, vv.max)
	default:
		return nil, fmt.Errorf("metahandlers: repetition count handler returned %T", v)
	}
}

// HandleConc folds a "conc" match (one or more "rept"s joined by "+") into
// their Concatenation (or the single rept itself, if there was only one).
func (b *Builder) HandleConc(m match.Match) (any, error) {
	return collectChain(m, func(nodes ...grammar.Node) (grammar.Node, error) {
		return grammar.Concat(nodes...)
	})
}

// HandleDisj folds a "disj" match (one or more "conc"s joined by "|") into
// their Alternation (or the single conc itself, if there was only one).
func (b *Builder) HandleDisj(m match.Match) (any, error) {
	return collectChain(m, grammar.Alt)
}

// collectChain implements the shared shape of conc and disj: a head
// expression followed by a repeated (operator, expression) tail.
func collectChain(m match.Match, combine func(...grammar.Node) (grammar.Node, error)) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 2 {
		return nil, fmt.Errorf("metahandlers: malformed expression chain match")
	}
	firstVal, err := evaluate(cat.Children[0])
	if err != nil {
		return nil, err
	}
	first, err := asNode(firstVal)
	if err != nil {
		return nil, err
	}
	nodes := []grammar.Node{first}

	rest, ok := cat.Children[1].(*match.ConcatenationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed expression chain match")
	}
	for _, child := range rest.Children {
		pair, ok := child.(*match.ConcatenationMatch)
		if !ok || len(pair.Children) != 2 {
			return nil, fmt.Errorf("metahandlers: malformed expression chain match")
		}
		v, err := evaluate(pair.Children[1])
		if err != nil {
			return nil, err
		}
		n, err := asNode(v)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return combine(nodes...)
}
