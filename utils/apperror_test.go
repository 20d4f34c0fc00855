package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidInput("bad"), http.StatusBadRequest},
		{InvalidQuery("bad"), http.StatusBadRequest},
		{NotFound("review", "r1"), http.StatusNotFound},
		{Forbidden("no"), http.StatusForbidden},
		{Unauthorized("who"), http.StatusUnauthorized},
		{DuplicateReview("L1"), http.StatusConflict},
		{fmt.Errorf("op: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("op: %w", ErrDuplicateReview), http.StatusConflict},
		{fmt.Errorf("op: %w: %w", ErrStoreTimeout, context.DeadlineExceeded), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestAggregationFailureMatchesSentinelAndCause(t *testing.T) {
	cause := errors.New("connection refused")

	err := AggregationFailure("L1", cause)

	assert.ErrorIs(t, err, ErrAggregationFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("lawyer", "L9"))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "notFound", ErrorCode(err))
	assert.Equal(t, "internal", ErrorCode(errors.New("x")))
}

type sample struct {
	Name  string `validate:"required"`
	Stars int    `validate:"min=1,max=5"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sample{Name: "a", Stars: 3}))

	err := Validate(sample{Stars: 9})
	assert.ErrorIs(t, err, ErrInvalidInput)
	var appErr *AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Contains(t, appErr.Message, "name is required")
		assert.Contains(t, appErr.Message, "stars must be at most 5")
	}
}
