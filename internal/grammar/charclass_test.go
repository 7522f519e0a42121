package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Rng_Construction(t *testing.T) {
	testCases := []struct {
		name      string
		lo, hi    rune
		expectErr bool
	}{
		{name: "normal range", lo: 'a', hi: 'z'},
		{name: "single-rune range", lo: 'a', hi: 'a'},
		{name: "inverted bounds rejected", lo: 'z', hi: 'a', expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			r, err := Rng(tc.lo, tc.hi)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.lo, r.Lo)
			assert.Equal(tc.hi, r.Hi)
		})
	}
}

func Test_CharRange_Match(t *testing.T) {
	testCases := []struct {
		name      string
		lo, hi    rune
		inverted  bool
		input     string
		expectErr bool
	}{
		{name: "in range", lo: '0', hi: '9', input: "5"},
		{name: "out of range", lo: '0', hi: '9', input: "a", expectErr: true},
		{name: "inverted excludes member", lo: '0', hi: '9', inverted: true, input: "5", expectErr: true},
		{name: "inverted allows non-member", lo: '0', hi: '9', inverted: true, input: "a"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			r, err := Rng(tc.lo, tc.hi)
			if !assert.NoError(err) {
				return
			}
			var node *CharRange = r
			if tc.inverted {
				node = r.Invert()
			}
			buf := []rune(tc.input)

			_, newPos, err := node.Match(buf, 0)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(1, newPos)
		})
	}
}

func Test_Set_Construction(t *testing.T) {
	assert := assert.New(t)

	_, err := Set("")
	assert.Error(err)

	s, err := Set("abc")
	assert.NoError(err)
	assert.Len(s.Members, 3)
}

func Test_CharSet_Match(t *testing.T) {
	testCases := []struct {
		name      string
		members   string
		inverted  bool
		input     string
		expectErr bool
	}{
		{name: "member matches", members: "abc", input: "b"},
		{name: "non-member rejected", members: "abc", input: "z", expectErr: true},
		{name: "inverted rejects member", members: "abc", inverted: true, input: "b", expectErr: true},
		{name: "inverted allows non-member", members: "abc", inverted: true, input: "z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			s, err := Set(tc.members)
			if !assert.NoError(err) {
				return
			}
			var node *CharSet = s
			if tc.inverted {
				node = s.Invert()
			}
			buf := []rune(tc.input)

			_, newPos, err := node.Match(buf, 0)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(1, newPos)
		})
	}
}

func Test_CharSet_Invert_DoesNotMutateOriginal(t *testing.T) {
	assert := assert.New(t)

	s, err := Set("abc")
	assert.NoError(err)

	inverted := s.Invert()

	assert.False(s.Inverted)
	assert.True(inverted.Inverted)
	assert.Len(inverted.Members, len(s.Members))
}
