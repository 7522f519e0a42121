// Package metagrammar builds the fixed grammar for BBNF itself, the
// bootstrap grammar of C5: a hand-written grammar.Element graph, expressed
// directly in the C1 algebra, whose handlers (internal/metahandlers) fold a
// parsed BBNF source file into a brand-new grammar graph and parser. This
// is the module's reflexive core, the direct analogue of the teacher's own
// FISHI-to-parser-generator bootstrap in ictiobus.go and fishi.go, carried
// over to a character-level PEG grammar instead of a token-level LALR one.
//
// Two deliberate departures from the BBNF grammar recorded in
// original_source/metaparser.py are documented at their definition sites
// below: an extra blank inserted into ctrl, and a new ident rule standing
// in for strg in the "#: name" directive. Both exist to make spec.md's own
// authoritative example ("#: name MathParser") parse at all; see
// SPEC_FULL.md section 9 for the full trace.
package metagrammar

import (
	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/metahandlers"
)

func mustLit(s string) *grammar.Literal {
	n, err := grammar.Lit(s)
	if err != nil {
		panic(err)
	}
	return n
}

func mustRng(lo, hi rune) *grammar.CharRange {
	n, err := grammar.Rng(lo, hi)
	if err != nil {
		panic(err)
	}
	return n
}

func mustSet(members string) *grammar.CharSet {
	n, err := grammar.Set(members)
	if err != nil {
		panic(err)
	}
	return n
}

func mustConcat(children ...grammar.Node) *grammar.Concatenation {
	n, err := grammar.Concat(children...)
	if err != nil {
		panic(err)
	}
	return n
}

func mustAlt(children ...grammar.Node) grammar.Node {
	n, err := grammar.Alt(children...)
	if err != nil {
		panic(err)
	}
	return n
}

func mustRep(child grammar.Node, min, max int) *grammar.Repetition {
	n, err := grammar.Rep(child, min, max)
	if err != nil {
		panic(err)
	}
	return n
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// New builds a fresh instance of the BBNF grammar, with every rule's
// handler bound to b. It is rebuilt from nothing on every call (rather than
// built once and reused) so that concurrent MetaParsers never share
// mutable Builder state, and returns the "defs" element: the grammar's
// entry point, matching one whole grammar-file's worth of BBNF source.
func New(b *metahandlers.Builder) *grammar.Element {
	digits := mustRng('0', '9')
	hexdigits := mustSet("0123456789abcdef")
	alphaLower := mustRng('a', 'z')
	alphaUpper := mustRng('A', 'Z')
	alpha := mustAlt(alphaLower, alphaUpper)

	blank := grammar.NewElement("blank")
	space := grammar.NewElement("space")
	defs := grammar.NewElement("defs")
	defn := grammar.NewElement("defn")
	disj := grammar.NewElement("disj")
	conc := grammar.NewElement("conc")
	rept := grammar.NewElement("rept")
	rangeEl := grammar.NewElement("range")
	simple := grammar.NewElement("simple")
	intg := grammar.NewElement("intg")
	strg := grammar.NewElement("strg")
	char := grammar.NewElement("char")
	chrs := grammar.NewElement("chrs")
	chrr := grammar.NewElement("chrr")
	elem := grammar.NewElement("elem")
	ident := grammar.NewElement("ident")
	cmnt := grammar.NewElement("cmnt")
	ctrl := grammar.NewElement("ctrl")
	mdata := grammar.NewElement("mdata")
	dqchr := grammar.NewElement("dqchar")
	sqchr := grammar.NewElement("sqchar")
	eseq := grammar.NewElement("eseq")

	defs.Handler = b.HandleDefs
	defn.Handler = b.HandleDefn
	disj.Handler = b.HandleDisj
	conc.Handler = b.HandleConc
	rept.Handler = b.HandleRept
	rangeEl.Handler = b.HandleRange
	simple.Handler = b.HandleSimple
	intg.Handler = b.HandleIntg
	strg.Handler = b.HandleStrg
	char.Handler = b.HandleChar
	chrs.Handler = b.HandleChrs
	chrr.Handler = b.HandleChrr
	elem.Handler = b.HandleElem
	ident.Handler = b.HandleIdent
	ctrl.Handler = b.HandleCtrl
	mdata.Handler = b.HandleMdata
	dqchr.Handler = b.HandleQChar
	sqchr.Handler = b.HandleQChar
	eseq.Handler = b.HandleEseq
	// blank, space, and cmnt carry no handler: their match is purely
	// structural and is never evaluated for a value.

	must(blank.Define(mustRep(mustSet(" \t"), 0, -1)))
	must(space.Define(mustRep(mustSet(" \t"), 1, -1)))

	identBody := func() *grammar.Concatenation {
		return mustConcat(
			mustAlt(alpha, mustLit("_")),
			mustRep(mustAlt(alpha, digits, mustLit("_")), 0, -1),
		)
	}
	must(elem.Define(mustConcat(blank, identBody(), blank)))
	// ident is not in the original's grammar: it gives the "#: name" value
	// an unquoted identifier form (instead of strg) that, unlike elem, does
	// not register a grammar element.
	must(ident.Define(mustConcat(blank, identBody(), blank)))

	must(dqchr.Define(mustAlt(mustSet("\\\"\n").Invert(), eseq)))
	must(sqchr.Define(mustAlt(mustSet("\\'\n").Invert(), eseq)))
	must(eseq.Define(mustConcat(
		mustLit(`\`),
		mustAlt(
			mustSet(`\"'rnt`),
			mustConcat(mustLit("x"), mustRep(hexdigits, 2, 2)),
			mustConcat(mustLit("u"), mustRep(hexdigits, 4, 4)),
		),
	)))

	must(intg.Define(mustConcat(blank, mustRep(digits, 1, -1), blank)))
	must(char.Define(mustConcat(
		blank,
		mustAlt(
			mustConcat(mustLit(`"`), dqchr, mustLit(`"`)),
			mustConcat(mustLit(`'`), sqchr, mustLit(`'`)),
		),
		blank,
	)))
	must(strg.Define(mustConcat(
		blank,
		mustAlt(
			mustConcat(mustLit(`"`), mustRep(dqchr, 0, -1), mustLit(`"`)),
			mustConcat(mustLit(`'`), mustRep(sqchr, 0, -1), mustLit(`'`)),
		),
		blank,
	)))
	must(chrr.Define(mustConcat(blank, mustLit("["), char, mustLit("-"), char, mustLit("]"), blank)))
	must(chrs.Define(mustConcat(blank, mustLit("{"), strg, mustLit("}"), blank)))

	must(rangeEl.Define(mustConcat(
		blank, mustLit("("), intg, mustLit(","),
		mustAlt(intg, mustConcat(blank, mustLit("inf"), blank)),
		mustLit(")"), blank,
	)))
	must(simple.Define(mustAlt(
		strg, chrs, chrr, elem,
		mustConcat(blank, mustLit("("), disj, mustLit(")"), blank),
	)))
	must(rept.Define(mustConcat(simple, mustRep(mustConcat(mustLit("*"), mustAlt(intg, rangeEl)), 0, 1))))
	must(conc.Define(mustConcat(rept, mustRep(mustConcat(mustLit("+"), rept), 0, -1))))
	must(disj.Define(mustConcat(conc, mustRep(mustConcat(mustLit("|"), conc), 0, -1))))

	must(defn.Define(mustConcat(elem, mustLit("::="), disj)))

	must(cmnt.Define(mustConcat(blank, mustLit("#"), mustRep(mustSet("\n").Invert(), 0, -1), mustLit("\n"))))
	must(mdata.Define(mustAlt(
		mustConcat(mustLit("name"), space, ident),
		mustConcat(mustLit("main"), space, elem),
	)))
	// The original's ctrl rule omits blank between the literal "#:" and
	// mdata, which would reject the leading space in spec.md's own
	// authoritative example ("#: name MathParser"); this grammar inserts
	// one.
	must(ctrl.Define(mustConcat(blank, mustLit("#:"), blank, mdata, mustLit("\n"))))

	must(defs.Define(mustConcat(
		mustRep(mustAlt(ctrl, cmnt), 0, -1),
		mustRep(mustConcat(mustAlt(defn, blank), mustAlt(cmnt, mustLit("\n"))), 0, -1),
	)))

	return defs
}
