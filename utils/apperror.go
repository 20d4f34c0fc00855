package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared by the stores and services. Callers match them with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidQuery       = errors.New("invalid query")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateReview    = errors.New("duplicate review")
	ErrAggregationFailure = errors.New("rating aggregation failed")
	ErrStoreTimeout       = errors.New("store timeout")
)

// AppError carries a machine-readable code and the HTTP status it maps to.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(message string) *AppError {
	return &AppError{Code: "invalidInput", Message: message, Status: http.StatusBadRequest, Err: ErrInvalidInput}
}

func InvalidQuery(message string) *AppError {
	return &AppError{Code: "invalidQuery", Message: message, Status: http.StatusBadRequest, Err: ErrInvalidQuery}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "notFound",
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: "forbidden", Message: message, Status: http.StatusForbidden, Err: ErrForbidden}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: "unauthorized", Message: message, Status: http.StatusUnauthorized, Err: ErrUnauthorized}
}

func DuplicateReview(lawyerID string) *AppError {
	return &AppError{
		Code:    "duplicateReview",
		Message: fmt.Sprintf("you have already reviewed lawyer %s", lawyerID),
		Status:  http.StatusConflict,
		Err:     ErrDuplicateReview,
	}
}

// AggregationFailure wraps a failed recompute so it matches both the sentinel and its cause.
func AggregationFailure(lawyerID string, cause error) error {
	return fmt.Errorf("%w: lawyer %s: %w", ErrAggregationFailure, lawyerID, cause)
}

// HTTPStatus returns the HTTP status code for err.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateReview):
		return http.StatusConflict
	case errors.Is(err, ErrStoreTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the AppError code for err, or a code derived from its sentinel.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "notFound"
	case errors.Is(err, ErrDuplicateReview):
		return "duplicateReview"
	case errors.Is(err, ErrStoreTimeout):
		return "storeTimeout"
	default:
		return "internal"
	}
}
