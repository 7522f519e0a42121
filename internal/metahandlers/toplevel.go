package metahandlers

import (
	"fmt"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
	"github.com/dekarrin/bbnf/internal/shell"
)

// HandleDefn folds a "defn" match (elem "::=" disj) by defining the named
// element's body. It has no useful result of its own; errors from a
// duplicate or malformed definition propagate up through defs.
func (b *Builder) HandleDefn(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed definition match")
	}
	nameVal, err := evaluate(cat.Children[0])
	if err != nil {
		return nil, err
	}
	name, ok := nameVal.(string)
	if !ok {
		return nil, fmt.Errorf("metahandlers: definition name handler returned %T, not string", nameVal)
	}
	bodyVal, err := evaluate(cat.Children[2])
	if err != nil {
		return nil, err
	}
	body, err := asNode(bodyVal)
	if err != nil {
		return nil, err
	}
	el := b.lookupElement(name)
	if err := el.Define(body); err != nil {
		return nil, err
	}
	return nil, nil
}

// HandleCtrl folds a "ctrl" match (blank "#:" blank mdata "\n") by
// evaluating the wrapped metadata directive.
func (b *Builder) HandleCtrl(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 5 {
		return nil, fmt.Errorf("metahandlers: malformed control-comment match")
	}
	return evaluate(cat.Children[3])
}

// HandleMdata folds a "mdata" match ("name" space ident | "main" space
// elem) by recording the directive's value. Each directive may appear at
// most once per grammar file.
func (b *Builder) HandleMdata(m match.Match) (any, error) {
	alt, ok := m.(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed metadata directive match")
	}
	cat, ok := alt.Child.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed metadata directive match")
	}

	switch alt.Index {
	case 0: // "name" space ident
		if b.nameSet {
			return nil, matcherr.NewConstructionError(`duplicate "#: name" directive`)
		}
		v, err := evaluate(cat.Children[2])
		if err != nil {
			return nil, err
		}
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("metahandlers: name directive value handler returned %T, not string", v)
		}
		b.name = name
		b.nameSet = true
	case 1: // "main" space elem
		if b.mainExplicit {
			return nil, matcherr.NewConstructionError(`duplicate "#: main" directive`)
		}
		v, err := evaluate(cat.Children[2])
		if err != nil {
			return nil, err
		}
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("metahandlers: main directive value handler returned %T, not string", v)
		}
		b.mainName = name
		b.mainExplicit = true
	default:
		return nil, fmt.Errorf("metahandlers: unexpected metadata alternative %d", alt.Index)
	}
	return nil, nil
}

// HandleDefs folds the whole grammar file: a prelude of control/ordinary
// comments followed by a body of definition lines. Running every child
// handler drives every Define call in the file; once that is done, any
// registered handler provider is bound by name, and the result is a fresh
// *shell.Parser over the selected main element.
func (b *Builder) HandleDefs(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 2 {
		return nil, fmt.Errorf("metahandlers: malformed grammar-file match")
	}

	prelude, ok := cat.Children[0].(*match.ConcatenationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed grammar-file match")
	}
	for _, item := range prelude.Children {
		alt, ok := item.(*match.AlternationMatch)
		if !ok {
			return nil, fmt.Errorf("metahandlers: malformed grammar-file match")
		}
		if alt.Index == 0 { // ctrl; ordinary comments need no action
			if _, err := evaluate(alt.Child); err != nil {
				return nil, err
			}
		}
	}

	body, ok := cat.Children[1].(*match.ConcatenationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed grammar-file match")
	}
	for _, line := range body.Children {
		lc, ok := line.(*match.ConcatenationMatch)
		if !ok || len(lc.Children) != 2 {
			return nil, fmt.Errorf("metahandlers: malformed grammar-file match")
		}
		head, ok := lc.Children[0].(*match.AlternationMatch)
		if !ok {
			return nil, fmt.Errorf("metahandlers: malformed grammar-file match")
		}
		if _, err := evaluate(head.Child); err != nil {
			return nil, err
		}
	}

	if b.provider != nil {
		for name, el := range b.elements {
			if fn, ok := lookupHandler(b.provider, name); ok {
				el.Handler = fn
			}
		}
	}

	if b.mainName == "" {
		return nil, matcherr.NewConstructionError("grammar file defines no elements; cannot select a main element")
	}
	mainEl, ok := b.elements[b.mainName]
	if !ok || !mainEl.IsDefined() {
		return nil, matcherr.NewConstructionError(fmt.Sprintf("main element %q was never defined", b.mainName))
	}

	name := b.name
	if name == "" {
		name = "CustomParser"
	}
	return shell.NewParser(mainEl, name), nil
}
