package metahandlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/bbnf/internal/match"
)

func Test_Builder_HandleMdata_DuplicateNameDirectiveIsAnError(t *testing.T) {
	assert := assert.New(t)
	b := NewBuilder()

	identMatch := &match.ConcatenationMatch{Children: []match.Match{
		match.StringMatch(""), match.StringMatch("Foo"), match.StringMatch(""),
	}}
	identElement := &match.ElementMatch{Name: "ident", Child: identMatch, Handler: b.HandleIdent}
	nameDirective := &match.AlternationMatch{Index: 0, Child: &match.ConcatenationMatch{
		Children: []match.Match{match.StringMatch("name"), match.StringMatch(" "), identElement},
	}}

	_, err := b.HandleMdata(nameDirective)
	assert.NoError(err)
	assert.Equal("Foo", b.name)

	_, err = b.HandleMdata(nameDirective)
	assert.Error(err)
}

func Test_Builder_HandleMdata_DuplicateMainDirectiveIsAnError(t *testing.T) {
	assert := assert.New(t)
	b := NewBuilder()

	elemMatch := &match.ConcatenationMatch{Children: []match.Match{
		match.StringMatch(""), match.StringMatch("expr"), match.StringMatch(""),
	}}
	elemElement := &match.ElementMatch{Name: "elem", Child: elemMatch, Handler: b.HandleElem}
	mainDirective := &match.AlternationMatch{Index: 1, Child: &match.ConcatenationMatch{
		Children: []match.Match{match.StringMatch("main"), match.StringMatch(" "), elemElement},
	}}

	_, err := b.HandleMdata(mainDirective)
	assert.NoError(err)
	assert.Equal("expr", b.mainName)

	_, err = b.HandleMdata(mainDirective)
	assert.Error(err)
}

func Test_Builder_LookupHandler(t *testing.T) {
	assert := assert.New(t)

	provider := testProvider{}
	fn, ok := lookupHandler(provider, "expr")
	assert.True(ok)
	assert.NotNil(fn)

	_, ok = lookupHandler(provider, "nonexistent")
	assert.False(ok)

	_, ok = lookupHandler(nil, "expr")
	assert.False(ok)
}

type testProvider struct{}

func (testProvider) Handle_expr(m match.Match) (any, error) {
	return m.String(), nil
}
