package bbnf

import (
	"fmt"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/bbnf/internal/grammar"
)

// Grammar is the named collection of elements a Parser's main element
// belongs to: the unit Encode and Decode below (de)serialize. Most callers
// never need it directly, since MetaParser.Parse hands back a ready-to-use
// Parser; Grammar exists for the rarer case of persisting or transmitting a
// grammar the way Encode/Decode are meant for.
type Grammar = grammar.Grammar

// Encode serializes g into a flat, index-addressed bytecode form suitable
// for storage or transmission, the same way the teacher persists a
// *game.State to SQLite via rezi.EncBinary (server/dao/sqlite/sqlite.go):
// the grammar's Element graph is flattened into an acyclic, name-addressed
// form (internal/grammar.Flatten) before REZI ever sees it, since REZI
// encodes concrete struct values by reflection and has no notion of the
// Node interface or of the grammar graph's cycles.
func Encode(g *Grammar) ([]byte, error) {
	eg, err := grammar.Flatten(g)
	if err != nil {
		return nil, fmt.Errorf("bbnf: flatten grammar: %w", err)
	}
	return rezi.EncBinary(eg), nil
}

// Decode reconstructs a Grammar from bytes produced by Encode.
func Decode(data []byte) (*Grammar, error) {
	eg := &grammar.EncodedGrammar{}
	n, err := rezi.DecBinary(data, eg)
	if err != nil {
		return nil, fmt.Errorf("bbnf: REZI decode: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("bbnf: REZI decoded byte count mismatch; only consumed %d/%d bytes", n, len(data))
	}
	return grammar.Unflatten(eg)
}
