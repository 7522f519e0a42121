// Package grammar implements the grammar algebra of C1: a closed,
// tagged-variant set of node types describing how to recognize text, plus
// the matching engine of C3 that walks a node against a rune buffer to
// produce a match.Match.
//
// Every concrete node type doubles as its own matcher: Match attempts to
// consume input at a position and returns the resulting match.Match, the
// position after the match, and an error if the node failed to match.
// Check is the cheap yes/no form of the same question, used by callers that
// only need to decide whether to try a branch at all.
package grammar

import "github.com/dekarrin/bbnf/internal/match"

// Node is a single grammar-algebra node. Literal, CharRange, CharSet,
// Concatenation, Alternation, and Repetition are immutable once
// constructed; Element is the sole exception, since its Definition may be
// set after other nodes already reference it (the only way a grammar graph
// can contain a cycle).
type Node interface {
	// Match attempts to consume input from buf starting at pos. On success
	// it returns the resulting match and the position immediately after
	// the consumed input. On failure it returns a non-nil error (almost
	// always a *matcherr.MatchError) and pos unchanged.
	Match(buf []rune, pos int) (match.Match, int, error)

	// Check reports whether Match would succeed at pos, without
	// constructing the match tree. Used where only a yes/no answer is
	// needed.
	Check(buf []rune, pos int) bool

	// String renders the node's own grammar-source-like form, used for
	// diagnostics (matcherr messages) and Grammar.Dump.
	String() string
}
