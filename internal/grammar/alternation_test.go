package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/bbnf/internal/match"
)

func Test_Alt_Construction(t *testing.T) {
	assert := assert.New(t)

	_, err := Alt()
	assert.Error(err)

	foo := mustTestLit(t, "foo")
	single, err := Alt(foo)
	assert.NoError(err)
	assert.Same(Node(foo), single)

	bar := mustTestLit(t, "bar")
	multi, err := Alt(foo, bar)
	assert.NoError(err)
	_, ok := multi.(*Alternation)
	assert.True(ok)
}

func Test_Alternation_Match(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectErr   bool
		expectIndex int
		expectPos   int
	}{
		{name: "first branch wins", input: "foo", expectIndex: 0, expectPos: 3},
		{name: "second branch wins", input: "bar", expectIndex: 1, expectPos: 3},
		{name: "no branch matches", input: "baz", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			foo := mustTestLit(t, "foo")
			bar := mustTestLit(t, "bar")
			a, err := Alt(foo, bar)
			if !assert.NoError(err) {
				return
			}
			buf := []rune(tc.input)

			m, newPos, err := a.Match(buf, 0)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectPos, newPos)
			alt, ok := m.(*match.AlternationMatch)
			if !assert.True(ok) {
				return
			}
			assert.Equal(tc.expectIndex, alt.Index)
		})
	}
}

func Test_Alternation_FirstMatchWins_NoBacktrackAcrossAlternatives(t *testing.T) {
	assert := assert.New(t)

	ab := mustTestLit(t, "ab")
	abc := mustTestLit(t, "abc")
	a, err := Alt(ab, abc)
	assert.NoError(err)

	m, newPos, err := a.Match([]rune("abc"), 0)
	assert.NoError(err)
	assert.Equal(2, newPos)
	assert.Equal("ab", m.String())
}
