// Package shell implements C4, the parser shell: a thin object holding a
// designated main element and an input buffer, responsible only for
// driving a single parse to completion and reporting leftover input. It is
// deliberately small and dependency-free of internal/metahandlers so that
// metahandlers' "defs" handler (which must construct and return one of
// these) does not create an import cycle with the top-level package that
// builds the meta-grammar metahandlers itself depends on.
package shell

import (
	"github.com/google/uuid"

	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// Parser holds a single main element and an input buffer, and drives a
// parse of that buffer against the element to a handler-evaluated result.
// Multiple Parsers may share the same underlying grammar graph and run
// concurrently, since matching never mutates a Node once its Elements are
// defined; each Parser's own buffer, id, and name are its only private state.
type Parser struct {
	id   uuid.UUID
	name string
	main *grammar.Element
	buf  []rune
}

// NewParser returns a Parser over main, labeled name (purely descriptive;
// it has no effect on parsing). main need not be defined yet at
// construction time, as long as it is defined before Parse is called.
func NewParser(main *grammar.Element, name string) *Parser {
	return &Parser{id: uuid.New(), name: name, main: main}
}

// ID returns this Parser's identity, stable for its lifetime. It exists so
// concurrently running Parsers sharing one grammar graph can be told apart
// in logs or test assertions without the grammar graph itself needing
// identity.
func (p *Parser) ID() uuid.UUID { return p.id }

// Name returns the descriptive label given at construction, typically from
// a BBNF source's "#: name" directive.
func (p *Parser) Name() string { return p.name }

// Feed appends data to the input buffer.
func (p *Parser) Feed(data string) {
	p.buf = append(p.buf, []rune(data)...)
}

// Clear empties the input buffer without otherwise resetting the Parser.
func (p *Parser) Clear() {
	p.buf = p.buf[:0]
}

// Parse matches the fed input against the main element from position 0 and
// evaluates the result. It is an error for any input to remain unconsumed
// after a successful match.
func (p *Parser) Parse() (any, error) {
	m, idx, err := p.main.Match(p.buf, 0)
	if err != nil {
		return nil, err
	}
	if idx != len(p.buf) {
		return nil, matcherr.NewTrailingInputError(idx, len(p.buf))
	}
	em, ok := m.(*match.ElementMatch)
	if !ok {
		return nil, matcherr.NewConstructionError("main element produced a non-element match; cannot evaluate")
	}
	return em.Evaluate()
}
