package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	raiderr "github.com/KirkDiggler/raidtemplate/internal/errors"
)

func TestWrapKeepsCode(t *testing.T) {
	base := raiderr.NotFound("player not found").WithMeta("player_id", 3)

	wrapped := raiderr.Wrapf(base, "update name on roster %s", "main")

	assert.Equal(t, raiderr.CodeNotFound, wrapped.Code)
	assert.Equal(t, "update name on roster main: player not found", wrapped.Error())
	assert.Equal(t, 3, raiderr.GetMeta(wrapped)["player_id"])
	assert.True(t, raiderr.IsNotFound(wrapped))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := raiderr.Wrap(errors.New("boom"), "load roster")

	assert.Equal(t, raiderr.CodeUnknown, wrapped.Code)
	assert.Nil(t, raiderr.Wrap(nil, "nothing"))
}

func TestIsMatchesSentinelThroughChain(t *testing.T) {
	sentinel := raiderr.New(raiderr.CodeNotFound, "player not found")
	other := raiderr.New(raiderr.CodeNotFound, "roster not found")

	err := fmt.Errorf("handler: %w", raiderr.Wrap(sentinel, "get player"))

	assert.ErrorIs(t, err, sentinel)
	assert.NotErrorIs(t, err, other)
	assert.ErrorIs(t, err, &raiderr.Error{Code: raiderr.CodeNotFound})
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, raiderr.IsInvalidArgument(raiderr.InvalidArgumentf("index %d out of range", 9)))
	assert.True(t, raiderr.IsAlreadyExists(raiderr.AlreadyExists("roster exists")))
	assert.True(t, raiderr.IsFailedPrecondition(raiderr.FailedPrecondition("not editing")))
	assert.Equal(t, raiderr.CodeInternal, raiderr.GetCode(raiderr.Internal(errors.New("x"), "redis")))
	assert.Equal(t, raiderr.CodeUnknown, raiderr.GetCode(errors.New("plain")))
}
