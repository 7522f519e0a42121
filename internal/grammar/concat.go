package grammar

import (
	"strings"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// Concatenation matches its children in order, each starting where the
// previous left off. It fails as soon as any child fails; no backtracking
// across already-matched children is attempted.
type Concatenation struct {
	Children []Node
}

// Concat constructs a Concatenation of the given children, which must be
// non-empty.
func Concat(children ...Node) (*Concatenation, error) {
	if len(children) == 0 {
		return nil, matcherr.NewConstructionError("concatenation requires at least one child")
	}
	return &Concatenation{Children: children}, nil
}

func (c *Concatenation) Check(buf []rune, pos int) bool {
	_, _, err := c.Match(buf, pos)
	return err == nil
}

func (c *Concatenation) Match(buf []rune, pos int) (match.Match, int, error) {
	children := make([]match.Match, 0, len(c.Children))
	idx := pos
	for _, child := range c.Children {
		m, next, err := child.Match(buf, idx)
		if err != nil {
			return nil, pos, err
		}
		children = append(children, m)
		idx = next
	}
	return &match.ConcatenationMatch{Children: children}, idx, nil
}

func (c *Concatenation) String() string {
	parts := make([]string, len(c.Children))
	for i, child := range c.Children {
		parts[i] = child.String()
	}
	return strings.Join(parts, " + ")
}
