// Package match defines the match tree a grammar.Node produces on a
// successful match: the tagged-variant result of C2, mirroring the closed
// node set of the grammar algebra it was matched against.
package match

import "strings"

// Match is a node in the result tree of a successful match. Its String
// renders the canonical form of what it matched: the exact substring of the
// input buffer that was consumed, reconstructed from the tree rather than
// sliced directly, so that String is meaningful even for a match built by
// hand (as bytecode-decoded grammars and tests sometimes do).
type Match interface {
	String() string
}

// Handler folds a single Element's child Match into an arbitrary result. It
// is the signature every bound semantic action satisfies, both the fixed
// ones in internal/metahandlers and any external handler a caller binds to
// their own grammar via reflection.
type Handler func(Match) (any, error)

// StringMatch is the result of matching a Literal, a single character of a
// CharRange or CharSet, or any other node that consumes a contiguous run of
// input without further structure.
type StringMatch string

func (m StringMatch) String() string { return string(m) }

// ConcatenationMatch is the result of matching a Concatenation or a
// Repetition: an ordered sequence of child matches, one per element
// consumed.
type ConcatenationMatch struct {
	Children []Match
}

func (m *ConcatenationMatch) String() string {
	var sb strings.Builder
	for _, c := range m.Children {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// AlternationMatch is the result of matching an Alternation: the single
// child that won, plus the index of the branch it won on (spec's "dispatch
// on which alternative matched" property).
type AlternationMatch struct {
	Child Match
	Index int
}

func (m *AlternationMatch) String() string { return m.Child.String() }

// ElementMatch is the result of matching an Element: the element's name,
// the inner match its Definition produced, and the Handler (if any) bound
// to it at match time. Evaluate folds the inner match through that handler;
// an Element with no bound handler evaluates to nil.
type ElementMatch struct {
	Name    string
	Child   Match
	Handler Handler
}

func (m *ElementMatch) String() string { return m.Child.String() }

// Evaluate invokes the handler bound to this element, passing it the inner
// match. An ElementMatch with no Handler evaluates to (nil, nil).
func (m *ElementMatch) Evaluate() (any, error) {
	if m.Handler == nil {
		return nil, nil
	}
	return m.Handler(m.Child)
}
