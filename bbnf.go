// Package bbnf implements a self-describing parser-combinator engine: a
// small algebra of grammar nodes (Literal, CharRange, CharSet,
// Concatenation, Alternation, Repetition, Element) that can match rune
// input directly, plus a meta-grammar for BBNF, a text notation for that
// same algebra, expressed in the algebra itself. Feeding BBNF source text
// to a MetaParser produces a fresh Parser for the grammar that source
// describes — the same grammar graph the meta-grammar's own handlers
// walked to build it, with no separate code-generation step.
//
// A grammar built this way evaluates text into arbitrary Go values by
// binding handler functions to the elements a caller cares about; an
// element left unbound evaluates to nil.
package bbnf

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/match"
	"github.com/dekarrin/bbnf/internal/metagrammar"
	"github.com/dekarrin/bbnf/internal/metahandlers"
	"github.com/dekarrin/bbnf/internal/shell"
)

// Match is the structured result of a successful grammar-node match: the
// argument type every Handler receives.
type Match = match.Match

// Handler folds a single bound Element's child Match into an arbitrary
// result. An external handler provider (see MetaParser.FeedWithHandlers)
// exposes one of these per element name it wants to bind, as a method
// named Handle_<elementName>.
type Handler = match.Handler

// The concrete Match variants a Handler's argument may be type-asserted to:
// StringMatch for a literal or single character, ConcatenationMatch for a
// sequence or repetition, AlternationMatch for a choice (with the winning
// branch's index), and ElementMatch for a named sub-rule (Evaluate folds it
// through its own bound Handler).
type (
	StringMatch        = match.StringMatch
	ConcatenationMatch = match.ConcatenationMatch
	AlternationMatch   = match.AlternationMatch
	ElementMatch       = match.ElementMatch
)

// Node is a single grammar-algebra node.
type Node = grammar.Node

// Parser is the shell produced by MetaParser.Parse: a main element plus an
// input buffer, ready to Feed and Parse.
type Parser = shell.Parser

// Preprocess normalizes line endings in BBNF source text, turning CRLF and
// lone CR into LF before the meta-grammar ever sees it. Unlike the
// teacher's own ictiobus.Preprocess, comment stripping is not done here:
// both ordinary "#" comments and "#:" control comments are matched
// directly by the meta-grammar's own cmnt/ctrl rules (internal/metagrammar),
// since BBNF's character-level grammar can recognize comments in-stream
// without a separate lexer pass.
func Preprocess(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// MetaParser reads BBNF source text and, on Parse, builds a fresh Parser
// bound to the grammar that source describes.
type MetaParser struct {
	buf     []rune
	builder *metahandlers.Builder
}

// NewMetaParser returns an empty meta-parser ready to be fed BBNF source.
func NewMetaParser() *MetaParser {
	return &MetaParser{builder: metahandlers.NewBuilder()}
}

// Feed appends BBNF source text to the meta-parser's buffer, after
// Preprocess normalizes its line endings.
func (mp *MetaParser) Feed(text string) {
	mp.buf = append(mp.buf, []rune(Preprocess(text))...)
}

// FeedWithHandlers is Feed plus registration of a handler provider: any
// value exposing Handle_<elementName> methods of type func(Match) (any,
// error), one per element referenced in the fed BBNF text that the caller
// wants bound to a real semantic action. Elements left unbound keep a no-op
// default.
func (mp *MetaParser) FeedWithHandlers(text string, handlers any) {
	mp.builder.SetHandlerProvider(handlers)
	mp.Feed(text)
}

// Parse consumes the fed BBNF source and returns a fresh Parser bound to
// the grammar it describes, with any registered handlers attached. A
// MetaParser should be fed exactly one grammar file before Parse is called;
// its internal Builder is single-use.
func (mp *MetaParser) Parse() (*Parser, error) {
	main := metagrammar.New(mp.builder)
	p := shell.NewParser(main, "")
	p.Feed(string(mp.buf))

	result, err := p.Parse()
	if err != nil {
		return nil, err
	}
	parser, ok := result.(*Parser)
	if !ok {
		return nil, fmt.Errorf("bbnf: meta-grammar produced %T, not a parser", result)
	}
	return parser, nil
}
