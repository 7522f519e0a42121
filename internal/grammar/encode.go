package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/bbnf/internal/matcherr"
)

// NodeKind tags the variant an EncodedNode holds, since the flat,
// index-addressed encoding below has no interface values to switch on.
type NodeKind int

const (
	KindLiteral NodeKind = iota
	KindCharRange
	KindCharSet
	KindConcat
	KindAlt
	KindRep
	KindElementRef
)

// EncodedNode is one node of a flattened grammar graph. Children are
// indices into the owning EncodedGrammar's Nodes slice rather than pointers,
// so the whole structure is a set of rezi-friendly concrete values with no
// interface fields for REZI's reflection-based encoder to trip over.
type EncodedNode struct {
	Kind     NodeKind
	Str      string
	Lo, Hi   int32
	Inverted bool
	Children []int
	Min, Max int
	Ref      string
}

// EncodedGrammar is the flattened form of a Grammar: a pool of nodes,
// a name-to-body-index symbol table standing in for the Element graph, and
// the main element's name. Element bodies are stored once in the symbol
// table and referenced by name everywhere else, giving the otherwise-cyclic
// Element graph an acyclic, tree-shaped serialization (spec's "cyclic
// grammar graph" design note, resolved as a serialization shape rather than
// a new runtime representation).
type EncodedGrammar struct {
	Nodes    []EncodedNode
	Elements map[string]int
	Main     string
}

// Flatten walks g and produces its flattened, index-addressed form.
func Flatten(g *Grammar) (*EncodedGrammar, error) {
	eg := &EncodedGrammar{Elements: map[string]int{}, Main: g.Main}
	memo := map[Node]int{}

	var walk func(n Node) (int, error)
	walk = func(n Node) (int, error) {
		if idx, ok := memo[n]; ok {
			return idx, nil
		}
		switch t := n.(type) {
		case *Literal:
			idx := len(eg.Nodes)
			eg.Nodes = append(eg.Nodes, EncodedNode{Kind: KindLiteral, Str: t.Value})
			memo[n] = idx
			return idx, nil

		case *CharRange:
			idx := len(eg.Nodes)
			eg.Nodes = append(eg.Nodes, EncodedNode{
				Kind: KindCharRange, Lo: int32(t.Lo), Hi: int32(t.Hi), Inverted: t.Inverted,
			})
			memo[n] = idx
			return idx, nil

		case *CharSet:
			idx := len(eg.Nodes)
			runes := make([]rune, 0, len(t.Members))
			for r := range t.Members {
				runes = append(runes, r)
			}
			sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
			eg.Nodes = append(eg.Nodes, EncodedNode{Kind: KindCharSet, Str: string(runes), Inverted: t.Inverted})
			memo[n] = idx
			return idx, nil

		case *Concatenation:
			idx := len(eg.Nodes)
			eg.Nodes = append(eg.Nodes, EncodedNode{})
			children := make([]int, len(t.Children))
			for i, c := range t.Children {
				ci, err := walk(c)
				if err != nil {
					return 0, err
				}
				children[i] = ci
			}
			eg.Nodes[idx] = EncodedNode{Kind: KindConcat, Children: children}
			memo[n] = idx
			return idx, nil

		case *Alternation:
			idx := len(eg.Nodes)
			eg.Nodes = append(eg.Nodes, EncodedNode{})
			children := make([]int, len(t.Children))
			for i, c := range t.Children {
				ci, err := walk(c)
				if err != nil {
					return 0, err
				}
				children[i] = ci
			}
			eg.Nodes[idx] = EncodedNode{Kind: KindAlt, Children: children}
			memo[n] = idx
			return idx, nil

		case *Repetition:
			idx := len(eg.Nodes)
			eg.Nodes = append(eg.Nodes, EncodedNode{})
			ci, err := walk(t.Child)
			if err != nil {
				return 0, err
			}
			eg.Nodes[idx] = EncodedNode{Kind: KindRep, Children: []int{ci}, Min: t.Min, Max: t.Max}
			memo[n] = idx
			return idx, nil

		case *Element:
			if _, ok := eg.Elements[t.Name]; !ok && t.IsDefined() {
				eg.Elements[t.Name] = -1 // reserved, resolves self-cycles to this element's own ref
				bi, err := walk(t.Definition)
				if err != nil {
					return 0, err
				}
				eg.Elements[t.Name] = bi
			}
			idx := len(eg.Nodes)
			eg.Nodes = append(eg.Nodes, EncodedNode{Kind: KindElementRef, Ref: t.Name})
			memo[n] = idx
			return idx, nil

		default:
			return 0, matcherr.NewConstructionError(fmt.Sprintf("cannot encode node of type %T", n))
		}
	}

	for name, e := range g.Elements {
		if _, ok := eg.Elements[name]; !ok && e.IsDefined() {
			eg.Elements[name] = -1
			bi, err := walk(e.Definition)
			if err != nil {
				return nil, err
			}
			eg.Elements[name] = bi
		}
	}

	return eg, nil
}

// Unflatten reconstructs a Grammar from its flattened form.
func Unflatten(eg *EncodedGrammar) (*Grammar, error) {
	g := NewGrammar()
	g.Main = eg.Main

	elements := make(map[string]*Element, len(eg.Elements))
	for name := range eg.Elements {
		elements[name] = NewElement(name)
	}

	built := map[int]Node{}
	var build func(idx int) (Node, error)
	build = func(idx int) (Node, error) {
		if n, ok := built[idx]; ok {
			return n, nil
		}
		en := eg.Nodes[idx]
		switch en.Kind {
		case KindLiteral:
			n, err := Lit(en.Str)
			if err != nil {
				return nil, err
			}
			built[idx] = n
			return n, nil

		case KindCharRange:
			n, err := Rng(rune(en.Lo), rune(en.Hi))
			if err != nil {
				return nil, err
			}
			if en.Inverted {
				n = n.Invert()
			}
			built[idx] = n
			return n, nil

		case KindCharSet:
			n, err := Set(en.Str)
			if err != nil {
				return nil, err
			}
			if en.Inverted {
				n = n.Invert()
			}
			built[idx] = n
			return n, nil

		case KindConcat:
			children := make([]Node, len(en.Children))
			for i, ci := range en.Children {
				c, err := build(ci)
				if err != nil {
					return nil, err
				}
				children[i] = c
			}
			n, err := Concat(children...)
			if err != nil {
				return nil, err
			}
			built[idx] = n
			return n, nil

		case KindAlt:
			children := make([]Node, len(en.Children))
			for i, ci := range en.Children {
				c, err := build(ci)
				if err != nil {
					return nil, err
				}
				children[i] = c
			}
			n, err := Alt(children...)
			if err != nil {
				return nil, err
			}
			built[idx] = n
			return n, nil

		case KindRep:
			child, err := build(en.Children[0])
			if err != nil {
				return nil, err
			}
			n, err := Rep(child, en.Min, en.Max)
			if err != nil {
				return nil, err
			}
			built[idx] = n
			return n, nil

		case KindElementRef:
			e, ok := elements[en.Ref]
			if !ok {
				return nil, matcherr.NewUndefinedElementError(en.Ref)
			}
			built[idx] = e
			return e, nil

		default:
			return nil, matcherr.NewConstructionError("unknown encoded node kind")
		}
	}

	for name, bodyIdx := range eg.Elements {
		el := elements[name]
		if el.IsDefined() {
			continue
		}
		body, err := build(bodyIdx)
		if err != nil {
			return nil, err
		}
		if err := el.Define(body); err != nil {
			return nil, err
		}
	}

	for name, el := range elements {
		g.Elements[name] = el
	}
	return g, nil
}
