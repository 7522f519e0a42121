package grammar

import (
	"errors"
	"fmt"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// Repetition matches its child greedily between Min and Max times
// (inclusive); Max == -1 means unbounded. It never backtracks: once it has
// taken as many repetitions as it can, it stops, even if a later sibling
// would have matched better had fewer repetitions been taken here.
type Repetition struct {
	Child    Node
	Min, Max int
}

// Rep constructs a Repetition of child matching between min and max times,
// inclusive; max == -1 means unbounded. min must be >= 0 and max must be
// either -1 or >= min.
func Rep(child Node, min, max int) (*Repetition, error) {
	if min < 0 {
		return nil, matcherr.NewConstructionError("repetition min must be >= 0")
	}
	if max != -1 && max < min {
		return nil, matcherr.NewConstructionError("repetition max must be -1 or >= min")
	}
	return &Repetition{Child: child, Min: min, Max: max}, nil
}

// RepN constructs a Repetition of child matching exactly n times: the
// convention the BBNF "g * n" shorthand resolves to (internal/metahandlers'
// rept handler uses this same constructor).
func RepN(child Node, n int) (*Repetition, error) {
	return Rep(child, n, n)
}

func (r *Repetition) Check(buf []rune, pos int) bool {
	_, _, err := r.Match(buf, pos)
	return err == nil
}

func (r *Repetition) Match(buf []rune, pos int) (match.Match, int, error) {
	var children []match.Match
	idx := pos
	count := 0

	for count < r.Min {
		m, next, err := r.Child.Match(buf, idx)
		if err != nil {
			return nil, pos, err
		}
		children = append(children, m)
		idx = next
		count++
	}

	for r.Max == -1 || count < r.Max {
		m, next, err := r.Child.Match(buf, idx)
		if err != nil {
			if !errors.Is(err, matcherr.ErrMismatch) {
				return nil, pos, err
			}
			break
		}
		children = append(children, m)
		idx = next
		count++
	}

	return &match.ConcatenationMatch{Children: children}, idx, nil
}

func (r *Repetition) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%s * %d", r.Child.String(), r.Min)
	}
	hi := "inf"
	if r.Max != -1 {
		hi = fmt.Sprintf("%d", r.Max)
	}
	return fmt.Sprintf("%s * (%d, %s)", r.Child.String(), r.Min, hi)
}
