package matcherr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MatchError_Unwrap(t *testing.T) {
	assert := assert.New(t)

	err := NewMatchError("<expr>", 3, []rune("1+2"))
	assert.True(errors.Is(err, ErrMismatch))
}

func Test_MatchError_Error_ContainsPositionAndNode(t *testing.T) {
	assert := assert.New(t)

	err := NewMatchError("<digit>", 2, []rune("ab"))
	msg := err.Error()
	assert.Contains(msg, "<digit>")
	assert.Contains(msg, "2")
}

func Test_UndefinedElementError_Unwrap(t *testing.T) {
	assert := assert.New(t)

	err := NewUndefinedElementError("expr")
	assert.True(errors.Is(err, ErrUndefinedElement))
	assert.Contains(err.Error(), "expr")
}

func Test_ConstructionError_Unwrap(t *testing.T) {
	assert := assert.New(t)

	err := NewConstructionError("bad range")
	assert.True(errors.Is(err, ErrConstruction))
	assert.Contains(err.Error(), "bad range")
}

func Test_TrailingInputError_Unwrap(t *testing.T) {
	testCases := []struct {
		name     string
		consumed int
		total    int
	}{
		{name: "some left over", consumed: 3, total: 5},
		{name: "nothing consumed", consumed: 0, total: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := NewTrailingInputError(tc.consumed, tc.total)
			assert.True(errors.Is(err, ErrTrailingInput))
			assert.Equal(tc.consumed, err.Consumed)
			assert.Equal(tc.total, err.Total)
		})
	}
}
