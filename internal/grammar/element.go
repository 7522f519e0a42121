package grammar

import (
	"fmt"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// Element is a named, possibly-recursive grammar node: the only node type
// that may appear in its own Definition, directly or transitively, and the
// only one that is mutated after construction (Define sets its body once
// other nodes may already hold a reference to it).
type Element struct {
	Name       string
	Definition Node
	Handler    match.Handler

	defined bool
}

// NewElement returns an Element named name with no Definition yet. It must
// be given one via Define before it can be matched.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Define sets e's body. It may be called only once per Element.
func (e *Element) Define(n Node) error {
	if e.defined {
		return matcherr.NewConstructionError(fmt.Sprintf("element %q is already defined", e.Name))
	}
	e.Definition = n
	e.defined = true
	return nil
}

// IsDefined reports whether Define has been called.
func (e *Element) IsDefined() bool { return e.defined }

func (e *Element) Check(buf []rune, pos int) bool {
	return e.defined && e.Definition.Check(buf, pos)
}

func (e *Element) Match(buf []rune, pos int) (match.Match, int, error) {
	if !e.defined {
		return nil, pos, matcherr.NewUndefinedElementError(e.Name)
	}
	inner, next, err := e.Definition.Match(buf, pos)
	if err != nil {
		return nil, pos, err
	}
	return &match.ElementMatch{Name: e.Name, Child: inner, Handler: e.Handler}, next, nil
}

func (e *Element) String() string { return "<" + e.Name + ">" }
