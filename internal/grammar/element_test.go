package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/bbnf/internal/matcherr"
)

func Test_Element_Define(t *testing.T) {
	assert := assert.New(t)

	e := NewElement("foo")
	assert.False(e.IsDefined())

	lit := mustTestLit(t, "foo")
	assert.NoError(e.Define(lit))
	assert.True(e.IsDefined())

	assert.Error(e.Define(lit))
}

func Test_Element_Match(t *testing.T) {
	testCases := []struct {
		name      string
		define    bool
		input     string
		expectErr bool
		wantUndef bool
	}{
		{name: "undefined element is a fatal error", define: false, input: "foo", expectErr: true, wantUndef: true},
		{name: "defined element matches its body", define: true, input: "foo", expectErr: false},
		{name: "defined element propagates mismatch", define: true, input: "bar", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			e := NewElement("foo")
			if tc.define {
				assert.NoError(e.Define(mustTestLit(t, "foo")))
			}
			buf := []rune(tc.input)

			m, _, err := e.Match(buf, 0)

			if tc.expectErr {
				assert.Error(err)
				if tc.wantUndef {
					assert.True(errors.Is(err, matcherr.ErrUndefinedElement))
				}
				return
			}
			assert.NoError(err)
			assert.Equal("foo", m.String())
		})
	}
}

func Test_Element_String(t *testing.T) {
	assert := assert.New(t)

	e := NewElement("expr")
	assert.Equal("<expr>", e.String())
}
