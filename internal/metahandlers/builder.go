// Package metahandlers implements C6, the semantic actions bound to each
// rule of the meta-grammar (internal/metagrammar): folding a parsed BBNF
// source's match tree into a fresh *shell.Parser over a newly built
// grammar graph, the reflexive bootstrap spec section 8 describes.
//
// A Builder is single-use: internal/metagrammar.New constructs one fresh
// Builder-bound grammar per MetaParser.Parse call so that two grammars
// evaluated concurrently never share the symbol table being built up.
package metahandlers

import (
	"fmt"
	"reflect"

	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/match"
)

// Builder accumulates the state produced while one BBNF source text is
// evaluated: the symbol table of elements referenced or defined so far, the
// metadata seen via "#: name"/"#: main" directives, and an optional
// external handler provider to bind by name once evaluation finishes.
type Builder struct {
	elements map[string]*grammar.Element

	provider any

	name    string
	nameSet bool

	mainName     string
	mainExplicit bool
}

// NewBuilder returns an empty Builder ready to back one grammar evaluation.
func NewBuilder() *Builder {
	return &Builder{elements: map[string]*grammar.Element{}}
}

// SetHandlerProvider registers p as the source of handler bindings: once
// evaluation completes (see HandleDefs), every element name with a matching
// Handle_<name> method on p is bound to that element.
func (b *Builder) SetHandlerProvider(p any) { b.provider = p }

// lookupElement returns the Element registered under name, creating it
// (undefined, to be Defined later or left as a forward reference) if this
// is the first time name has been seen. The first name ever looked up
// becomes the default main element, the same "first element referenced"
// bookkeeping the original implementation's Grammar.addRef performs.
func (b *Builder) lookupElement(name string) *grammar.Element {
	if el, ok := b.elements[name]; ok {
		return el
	}
	el := grammar.NewElement(name)
	b.elements[name] = el
	if b.mainName == "" {
		b.mainName = name
	}
	return el
}

// evaluate type-asserts m as an ElementMatch and evaluates it. Every
// sub-rule reference in the meta-grammar is itself an Element, so this is
// the one place handlers reach through to a named child rule's result.
func evaluate(m match.Match) (any, error) {
	em, ok := m.(*match.ElementMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: expected an element match, got %T", m)
	}
	return em.Evaluate()
}

// asNode type-asserts v as a grammar.Node, the common shape every
// expression-building handler (simple, rept, conc, disj) passes up the
// chain.
func asNode(v any) (grammar.Node, error) {
	n, ok := v.(grammar.Node)
	if !ok {
		return nil, fmt.Errorf("metahandlers: expected a grammar node, got %T", v)
	}
	return n, nil
}

// repRange is what a "* (min, max)" repetition suffix evaluates to; max ==
// -1 means unbounded, mirroring grammar.Repetition's own convention.
type repRange struct {
	min, max int
}

// lookupHandler looks for a Handle_<name> method on provider with the
// signature func(match.Match) (any, error) (exposed externally as
// func(bbnf.Match) (any, error), since bbnf.Match is a type alias for
// match.Match). It returns false if provider is nil, has no such method, or
// the method's signature does not match.
func lookupHandler(provider any, name string) (match.Handler, bool) {
	if provider == nil {
		return nil, false
	}
	v := reflect.ValueOf(provider)
	m := v.MethodByName("Handle_" + name)
	if !m.IsValid() {
		return nil, false
	}
	fn, ok := m.Interface().(func(match.Match) (any, error))
	if !ok {
		return nil, false
	}
	return match.Handler(fn), true
}
