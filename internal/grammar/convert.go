package grammar

import (
	"fmt"

	"github.com/dekarrin/bbnf/internal/matcherr"
)

// ToNode promotes a raw value to a Node: a Node is returned as-is, a string
// is promoted to a Literal, and a [2]rune pair is promoted to a CharRange.
// This is the value-lift convenience the grammar algebra's combinators rely
// on so callers building a grammar by hand rarely need to call Lit/Rng
// explicitly for the common cases.
func ToNode(v any) (Node, error) {
	switch t := v.(type) {
	case Node:
		return t, nil
	case string:
		return Lit(t)
	case [2]rune:
		return Rng(t[0], t[1])
	default:
		return nil, matcherr.NewConstructionError(fmt.Sprintf("cannot promote %T to a grammar node", v))
	}
}
