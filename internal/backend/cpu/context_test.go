package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFirstFailureWins(t *testing.T) {
	ctx := NewContext()
	assert.NoError(t, ctx.Err())

	first := errors.New("first")
	ctx.Fail(first)
	ctx.Fail(errors.New("second"))
	assert.Equal(t, first, ctx.Err())

	ctx.Reset()
	assert.NoError(t, ctx.Err())
}

func TestContextCheck(t *testing.T) {
	ctx := NewContext()
	assert.True(t, ctx.check(true, "unused"))
	assert.NoError(t, ctx.Err())

	assert.False(t, ctx.check(false, "bad value %d", 3))
	assert.ErrorIs(t, ctx.Err(), ErrInvalidArgument)
	assert.Contains(t, ctx.Err().Error(), "bad value 3")
}

func TestBugPanics(t *testing.T) {
	assert.PanicsWithValue(t, "BUG: broken 7", func() {
		bug("broken %d", 7)
	})
}
