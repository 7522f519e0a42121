package grammar

import (
	"fmt"
	"sort"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// CharRange matches a single character falling within [Lo, Hi] in
// code-point order (or outside it, if Inverted).
type CharRange struct {
	Lo, Hi   rune
	Inverted bool
}

// Rng constructs a CharRange matching [lo, hi]. lo must not come after hi
// in code-point order.
func Rng(lo, hi rune) (*CharRange, error) {
	if lo > hi {
		return nil, matcherr.NewConstructionError(fmt.Sprintf("char range bounds out of order: %q > %q", lo, hi))
	}
	return &CharRange{Lo: lo, Hi: hi}, nil
}

// Invert returns a copy of c that matches everything c does not.
func (c *CharRange) Invert() *CharRange {
	return &CharRange{Lo: c.Lo, Hi: c.Hi, Inverted: !c.Inverted}
}

func (c *CharRange) Check(buf []rune, pos int) bool {
	if pos < 0 || pos >= len(buf) {
		return false
	}
	in := buf[pos] >= c.Lo && buf[pos] <= c.Hi
	return in != c.Inverted
}

func (c *CharRange) Match(buf []rune, pos int) (match.Match, int, error) {
	if !c.Check(buf, pos) {
		return nil, pos, matcherr.NewMatchError(c.String(), pos, buf)
	}
	return match.StringMatch(string(buf[pos])), pos + 1, nil
}

func (c *CharRange) String() string {
	if c.Inverted {
		return fmt.Sprintf("[^%c-%c]", c.Lo, c.Hi)
	}
	return fmt.Sprintf("[%c-%c]", c.Lo, c.Hi)
}

// CharSet matches a single character that is a member of Members (or that
// is not, if Inverted).
type CharSet struct {
	Members map[rune]struct{}
	Inverted bool
}

// Set constructs a CharSet whose members are the runes of members, which
// must contain at least one character.
func Set(members string) (*CharSet, error) {
	if members == "" {
		return nil, matcherr.NewConstructionError("character set must have at least one member")
	}
	m := make(map[rune]struct{}, len(members))
	for _, r := range members {
		m[r] = struct{}{}
	}
	return &CharSet{Members: m}, nil
}

// Invert returns a copy of c that matches everything c does not.
func (c *CharSet) Invert() *CharSet {
	cp := make(map[rune]struct{}, len(c.Members))
	for r := range c.Members {
		cp[r] = struct{}{}
	}
	return &CharSet{Members: cp, Inverted: !c.Inverted}
}

func (c *CharSet) Check(buf []rune, pos int) bool {
	if pos < 0 || pos >= len(buf) {
		return false
	}
	_, in := c.Members[buf[pos]]
	return in != c.Inverted
}

func (c *CharSet) Match(buf []rune, pos int) (match.Match, int, error) {
	if !c.Check(buf, pos) {
		return nil, pos, matcherr.NewMatchError(c.String(), pos, buf)
	}
	return match.StringMatch(string(buf[pos])), pos + 1, nil
}

func (c *CharSet) String() string {
	runes := make([]rune, 0, len(c.Members))
	for r := range c.Members {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	prefix := "{"
	if c.Inverted {
		prefix = "{^"
	}
	return prefix + string(runes) + "}"
}
