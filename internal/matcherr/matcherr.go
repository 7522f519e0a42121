// Package matcherr defines the error taxonomy the matching engine and
// grammar constructors raise: a MatchError for an ordinary failed match (the
// only error Alternation and Repetition are allowed to recover from), an
// UndefinedElementError for a reference to an Element that was never given a
// body, a ConstructionError for an invariant violated while building a
// grammar node, and a TrailingInputError for input left over after a
// successful top-level match.
package matcherr

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// Sentinel errors for errors.Is against the taxonomy, independent of the
// dynamic detail any individual error carries.
var (
	ErrMismatch         = fmt.Errorf("match failed")
	ErrUndefinedElement = fmt.Errorf("undefined element")
	ErrConstruction     = fmt.Errorf("invalid grammar construction")
	ErrTrailingInput    = fmt.Errorf("trailing input")
)

// MatchError reports that a grammar node failed to match at a given
// position. It is the only error Alternation and Repetition catch in order
// to try the next alternative or stop repeating.
type MatchError struct {
	Node string
	Pos  int
	Buf  []rune
}

// NewMatchError builds a MatchError reporting that node failed to match at
// pos in buf.
func NewMatchError(node string, pos int, buf []rune) *MatchError {
	return &MatchError{Node: node, Pos: pos, Buf: buf}
}

func (e *MatchError) Unwrap() error { return ErrMismatch }

func (e *MatchError) Error() string {
	context := contextWindow(e.Buf, e.Pos, 20)
	full := fmt.Sprintf("expected %s at position %d\n%s", e.Node, e.Pos, context)
	return rosed.Edit(full).Wrap(80).String()
}

// contextWindow renders a one-line "got: ..." callout around pos, the same
// rosed-wrapped-text style the teacher uses for its parse-table dumps.
func contextWindow(buf []rune, pos, radius int) string {
	lo := pos - radius
	if lo < 0 {
		lo = 0
	}
	hi := pos + radius
	if hi > len(buf) {
		hi = len(buf)
	}
	got := string(buf[lo:hi])
	return rosed.Edit(fmt.Sprintf("got: %q", got)).Wrap(80).String()
}

// UndefinedElementError reports a reference to an Element with no
// Definition. Unlike MatchError, it is never recovered from internally; it
// always propagates out of Parse.
type UndefinedElementError struct {
	Name string
}

// NewUndefinedElementError builds an UndefinedElementError for the named
// element.
func NewUndefinedElementError(name string) *UndefinedElementError {
	return &UndefinedElementError{Name: name}
}

func (e *UndefinedElementError) Unwrap() error { return ErrUndefinedElement }

func (e *UndefinedElementError) Error() string {
	return fmt.Sprintf("element %q has no definition", e.Name)
}

// ConstructionError reports an invariant violated while building a grammar
// node, such as an out-of-order character range or an empty literal.
type ConstructionError struct {
	Reason string
}

// NewConstructionError builds a ConstructionError with the given reason.
func NewConstructionError(reason string) *ConstructionError {
	return &ConstructionError{Reason: reason}
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct grammar: %s", e.Reason)
}

// TrailingInputError reports that a parse matched successfully but did not
// consume the whole input buffer.
type TrailingInputError struct {
	Consumed int
	Total    int
}

// NewTrailingInputError builds a TrailingInputError for a parse that
// consumed only consumed of total runes.
func NewTrailingInputError(consumed, total int) *TrailingInputError {
	return &TrailingInputError{Consumed: consumed, Total: total}
}

func (e *TrailingInputError) Unwrap() error { return ErrTrailingInput }

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("parse consumed %d of %d runes; %d left unconsumed", e.Consumed, e.Total, e.Total-e.Consumed)
}
