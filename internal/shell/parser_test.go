package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/bbnf/internal/grammar"
	"github.com/dekarrin/bbnf/internal/match"
)

func Test_Parser_Parse(t *testing.T) {
	testCases := []struct {
		name       string
		handler    match.Handler
		input      string
		expectErr  bool
		wantResult any
	}{
		{
			name:       "full match with no handler evaluates to nil",
			input:      "hello",
			wantResult: nil,
		},
		{
			name: "full match with handler evaluates to handler's result",
			handler: func(m match.Match) (any, error) {
				return m.String() + "!", nil
			},
			input:      "hello",
			wantResult: "hello!",
		},
		{
			name:      "trailing input is an error",
			input:     "hellothere",
			expectErr: true,
		},
		{
			name:      "mismatch propagates",
			input:     "goodbye",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			lit, err := grammar.Lit("hello")
			if !assert.NoError(err) {
				return
			}
			main := grammar.NewElement("greeting")
			main.Handler = tc.handler
			assert.NoError(main.Define(lit))

			p := NewParser(main, "GreetingParser")
			p.Feed(tc.input)

			result, err := p.Parse()

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.wantResult, result)
		})
	}
}

func Test_Parser_IDIsStable(t *testing.T) {
	assert := assert.New(t)

	main := grammar.NewElement("x")
	assert.NoError(main.Define(mustLit(t, "x")))

	p := NewParser(main, "X")
	id1 := p.ID()
	id2 := p.ID()
	assert.Equal(id1, id2)
}

func Test_Parser_Clear(t *testing.T) {
	assert := assert.New(t)

	main := grammar.NewElement("x")
	assert.NoError(main.Define(mustLit(t, "x")))

	p := NewParser(main, "X")
	p.Feed("x")
	p.Clear()
	p.Feed("x")

	_, err := p.Parse()
	assert.NoError(err)
}

func mustLit(t *testing.T, s string) *grammar.Literal {
	t.Helper()
	l, err := grammar.Lit(s)
	if err != nil {
		t.Fatalf("Lit(%q): %v", s, err)
	}
	return l
}
