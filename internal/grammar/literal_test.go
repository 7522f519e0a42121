package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Lit_Construction(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		expectErr bool
	}{
		{name: "normal literal", value: "hello"},
		{name: "single char", value: "x"},
		{name: "empty literal rejected", value: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			l, err := Lit(tc.value)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.value, l.Value)
		})
	}
}

func Test_Literal_Match(t *testing.T) {
	testCases := []struct {
		name      string
		lit       string
		input     string
		pos       int
		expectErr bool
		expectPos int
	}{
		{name: "exact match at start", lit: "foo", input: "foobar", pos: 0, expectPos: 3},
		{name: "match mid-buffer", lit: "bar", input: "foobar", pos: 3, expectPos: 6},
		{name: "mismatch", lit: "foo", input: "baz", pos: 0, expectErr: true},
		{name: "not enough input left", lit: "foo", input: "fo", pos: 0, expectErr: true},
		{name: "unicode literal", lit: "héllo", input: "héllo!", pos: 0, expectPos: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			l, err := Lit(tc.lit)
			if !assert.NoError(err) {
				return
			}
			buf := []rune(tc.input)

			m, newPos, err := l.Match(buf, tc.pos)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectPos, newPos)
			assert.Equal(tc.lit, m.String())
		})
	}
}

func Test_Literal_Check_MatchesMatch(t *testing.T) {
	assert := assert.New(t)

	l, err := Lit("abc")
	assert.NoError(err)

	buf := []rune("abcdef")
	assert.True(l.Check(buf, 0))
	assert.False(l.Check(buf, 1))
}
