package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/bbnf/internal/matcherr"
	"github.com/dekarrin/bbnf/internal/util"
)

// Grammar is a named collection of Elements plus a designated main element:
// the unit Encode/Decode (bytecode.go) serialize, and the unit Dump
// renders for debugging. It has no direct analog in the grammar algebra
// itself (a bare Node is enough to parse), but the bytecode hook needs
// something to be the unit of (de)serialization, and a symbol table is the
// natural one.
type Grammar struct {
	Elements map[string]*Element
	Main     string
}

// NewGrammar returns an empty Grammar with no elements and no main element
// selected.
func NewGrammar() *Grammar {
	return &Grammar{Elements: map[string]*Element{}}
}

// Register adds e to g's symbol table. Registering the same *Element twice
// under its own name is a no-op; registering two different Elements under
// the same name is a construction error.
func (g *Grammar) Register(e *Element) error {
	if existing, ok := g.Elements[e.Name]; ok && existing != e {
		return matcherr.NewConstructionError(fmt.Sprintf("duplicate element name %q", e.Name))
	}
	g.Elements[e.Name] = e
	return nil
}

// MainElement returns the Element named by g.Main.
func (g *Grammar) MainElement() (*Element, error) {
	e, ok := g.Elements[g.Main]
	if !ok {
		return nil, matcherr.NewConstructionError(fmt.Sprintf("main element %q is not registered", g.Main))
	}
	return e, nil
}

// Validate checks that g has a main element and that every registered
// element (including main) has a Definition.
func (g *Grammar) Validate() error {
	if g.Main == "" {
		return matcherr.NewConstructionError("grammar has no main element selected")
	}
	main, err := g.MainElement()
	if err != nil {
		return err
	}
	if !main.IsDefined() {
		return matcherr.NewUndefinedElementError(main.Name)
	}

	var undefined []string
	for name, e := range g.Elements {
		if !e.IsDefined() {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) == 1 {
		return matcherr.NewUndefinedElementError(undefined[0])
	}
	if len(undefined) > 1 {
		sort.Strings(undefined)
		return matcherr.NewConstructionError(fmt.Sprintf("elements %s have no definition", util.MakeTextList(undefined)))
	}
	return nil
}

// Dump renders a human-readable table of every element's name and
// definition, sorted by name.
func (g *Grammar) Dump() string {
	names := make([]string, 0, len(g.Elements))
	for name := range g.Elements {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make([][]string, 0, len(names)+1)
	data = append(data, []string{"element", "definition"})
	for _, name := range names {
		e := g.Elements[name]
		def := "<undefined>"
		if e.IsDefined() {
			def = e.Definition.String()
		}
		marker := "  "
		if name == g.Main {
			marker = "* "
		}
		data = append(data, []string{marker + name, def})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
