package database

import (
	"context"
	"errors"
	"testing"

	"lexconnect/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestWrapErr(t *testing.T) {
	assert.NoError(t, WrapErr("noop", nil))

	err := WrapErr("find lawyer", mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, utils.ErrNotFound)
	assert.Contains(t, err.Error(), "find lawyer")

	err = WrapErr("aggregate", context.DeadlineExceeded)
	assert.ErrorIs(t, err, utils.ErrStoreTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	cause := errors.New("connection reset")
	err = WrapErr("insert", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, utils.ErrNotFound)
}

func TestNewContextHasDeadline(t *testing.T) {
	ctx, cancel := NewContext(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
