package grammar

import (
	"errors"
	"strings"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// Alternation tries its children in order and commits to the first one
// that matches (ordered choice, not ambiguous choice). A branch that fails
// with a mismatch, however far into the input it got, is skipped and the
// next branch is tried from the Alternation's own starting position; any
// other error (such as an undefined element) is returned at once.
type Alternation struct {
	Children []Node
}

// Alt constructs an Alternation of the given children, which must be
// non-empty. A single child is returned unwrapped, since an alternation of
// one option is just that option.
func Alt(children ...Node) (Node, error) {
	if len(children) == 0 {
		return nil, matcherr.NewConstructionError("alternation requires at least one child")
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return &Alternation{Children: children}, nil
}

func (a *Alternation) Check(buf []rune, pos int) bool {
	for _, c := range a.Children {
		if c.Check(buf, pos) {
			return true
		}
	}
	return false
}

func (a *Alternation) Match(buf []rune, pos int) (match.Match, int, error) {
	var lastErr error
	for i, child := range a.Children {
		m, next, err := child.Match(buf, pos)
		if err == nil {
			return &match.AlternationMatch{Child: m, Index: i}, next, nil
		}
		if !errors.Is(err, matcherr.ErrMismatch) {
			return nil, pos, err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = matcherr.NewMatchError(a.String(), pos, buf)
	}
	return nil, pos, lastErr
}

func (a *Alternation) String() string {
	parts := make([]string, len(a.Children))
	for i, child := range a.Children {
		parts[i] = child.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}
