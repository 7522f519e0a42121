package grammar

import (
	"strconv"

	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/matcherr"
)

// Literal matches an exact run of characters.
type Literal struct {
	Value string
	runes []rune
}

// Lit constructs a Literal matching s exactly. s must be non-empty.
func Lit(s string) (*Literal, error) {
	if s == "" {
		return nil, matcherr.NewConstructionError("literal value must be non-empty")
	}
	return &Literal{Value: s, runes: []rune(s)}, nil
}

func (l *Literal) Check(buf []rune, pos int) bool {
	if pos < 0 || pos+len(l.runes) > len(buf) {
		return false
	}
	for i, r := range l.runes {
		if buf[pos+i] != r {
			return false
		}
	}
	return true
}

func (l *Literal) Match(buf []rune, pos int) (match.Match, int, error) {
	if !l.Check(buf, pos) {
		return nil, pos, matcherr.NewMatchError(l.String(), pos, buf)
	}
	return match.StringMatch(l.Value), pos + len(l.runes), nil
}

func (l *Literal) String() string { return strconv.Quote(l.Value) }
