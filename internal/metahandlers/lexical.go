package metahandlers

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/match"
)

// HandleElem folds an "elem" match (an identifier, optionally surrounded by
// blank) into its name, registering the name in the symbol table as a side
// effect (this is the one handler that both returns a value and mutates the
// Builder, since every reference to an element — definition or use — flows
// through here).
func (b *Builder) HandleElem(m match.Match) (any, error) {
	name, err := identText(m)
	if err != nil {
		return nil, err
	}
	b.lookupElement(name)
	return name, nil
}

// HandleIdent folds an "ident" match into its name, without registering it
// as a grammar element: ident is the unquoted identifier-shaped value used
// by the "#: name" directive (see internal/metagrammar's package doc for
// why this rule exists alongside elem).
func (b *Builder) HandleIdent(m match.Match) (any, error) {
	return identText(m)
}

func identText(m match.Match) (string, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 3 {
		return "", fmt.Errorf("metahandlers: malformed identifier match")
	}
	return cat.Children[1].String(), nil
}

// HandleIntg folds an "intg" match (blank, digits, blank) into its integer
// value.
func (b *Builder) HandleIntg(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed integer match")
	}
	return strconv.Atoi(cat.Children[1].String())
}

// HandleStrg folds a "strg" match (a double- or single-quoted run of
// possibly-escaped characters) into the decoded string it denotes.
func (b *Builder) HandleStrg(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed string literal match")
	}
	alt, ok := cat.Children[1].(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed string literal match")
	}
	quoted, ok := alt.Child.(*match.ConcatenationMatch)
	if !ok || len(quoted.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed string literal match")
	}
	chars, ok := quoted.Children[1].(*match.ConcatenationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed string literal match")
	}

	out := make([]rune, 0, len(chars.Children))
	for _, c := range chars.Children {
		v, err := evaluate(c)
		if err != nil {
			return nil, err
		}
		r, ok := v.(rune)
		if !ok {
			return nil, fmt.Errorf("metahandlers: string character handler returned %T, not rune", v)
		}
		out = append(out, r)
	}
	return string(out), nil
}

// HandleChar folds a "char" match (a double- or single-quoted single
// possibly-escaped character) into the rune it denotes.
func (b *Builder) HandleChar(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed character literal match")
	}
	alt, ok := cat.Children[1].(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed character literal match")
	}
	quoted, ok := alt.Child.(*match.ConcatenationMatch)
	if !ok || len(quoted.Children) != 3 {
		return nil, fmt.Errorf("metahandlers: malformed character literal match")
	}
	return evaluate(quoted.Children[1])
}

// HandleQChar folds a single quoted-context character (shared by dqchr and
// sqchar in the meta-grammar) into the rune it denotes: either the literal
// character matched, or an escape sequence's decoded value.
func (b *Builder) HandleQChar(m match.Match) (any, error) {
	alt, ok := m.(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed quoted-character match")
	}
	if alt.Index == 0 {
		runes := []rune(alt.Child.String())
		if len(runes) != 1 {
			return nil, fmt.Errorf("metahandlers: expected a single character, got %q", alt.Child.String())
		}
		return runes[0], nil
	}
	return evaluate(alt.Child)
}

// HandleEseq folds an escape sequence ("\" followed by one of the simple
// escape characters, or \xHH, or \uHHHH) into the rune it denotes.
func (b *Builder) HandleEseq(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 2 {
		return nil, fmt.Errorf("metahandlers: malformed escape sequence match")
	}
	alt, ok := cat.Children[1].(*match.AlternationMatch)
	if !ok {
		return nil, fmt.Errorf("metahandlers: malformed escape sequence match")
	}

	switch alt.Index {
	case 0:
		runes := []rune(alt.Child.String())
		if len(runes) != 1 {
			return nil, fmt.Errorf("metahandlers: malformed escape sequence match")
		}
		switch runes[0] {
		case '"':
			return '"', nil
		case '\'':
			return '\'', nil
		case 'r':
			return '\r', nil
		case 'n':
			return '\n', nil
		case 't':
			return '\t', nil
		case '\\':
			return '\\', nil
		default:
			return nil, fmt.Errorf("metahandlers: unknown escape character %q", runes[0])
		}
	case 1, 2:
		hexCat, ok := alt.Child.(*match.ConcatenationMatch)
		if !ok || len(hexCat.Children) != 2 {
			return nil, fmt.Errorf("metahandlers: malformed hex escape match")
		}
		v, err := strconv.ParseInt(hexCat.Children[1].String(), 16, 32)
		if err != nil {
			return nil, fmt.Errorf("metahandlers: invalid hex escape: %w", err)
		}
		return rune(v), nil
	default:
		return nil, fmt.Errorf("metahandlers: unexpected escape alternative %d", alt.Index)
	}
}

// HandleChrs folds a "chrs" match ("{" strg "}") into the CharSet it
// denotes.
func (b *Builder) HandleChrs(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 5 {
		return nil, fmt.Errorf("metahandlers: malformed character-set match")
	}
	v, err := evaluate(cat.Children[2])
	if err != nil {
		return nil, err
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("metahandlers: character-set body must be a string, got %T", v)
	}
	return grammar.Set(s)
}

// HandleChrr folds a "chrr" match ("[" char "-" char "]") into the
// CharRange it denotes.
func (b *Builder) HandleChrr(m match.Match) (any, error) {
	cat, ok := m.(*match.ConcatenationMatch)
	if !ok || len(cat.Children) != 7 {
		return nil, fmt.Errorf("metahandlers: malformed character-range match")
	}
	lo, err := evaluate(cat.Children[2])
	if err != nil {
		return nil, err
	}
	hi, err := evaluate(cat.Children[4])
	if err != nil {
		return nil, err
	}
	loR, ok1 := lo.(rune)
	hiR, ok2 := hi.(rune)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("metahandlers: character-range bounds must be single characters")
	}
	return grammar.Rng(loR, hiR)
}
