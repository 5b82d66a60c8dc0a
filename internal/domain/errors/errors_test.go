package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrNotServiceable.WithDetails("lat=1 lng=2")

	assert.True(t, errors.Is(detailed, ErrNotServiceable))
	assert.False(t, errors.Is(detailed, ErrResolutionFailed))
	assert.True(t, errors.Is(errors.Wrap(detailed, "resolve"), ErrNotServiceable))
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrLocationRequired.WrapMessage("add to cart")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LOCATION_REQUIRED", appErr.ErrorCode())
	assert.Equal(t, http.StatusPreconditionRequired, appErr.HTTPCode())
}

func TestBackendError(t *testing.T) {
	err := NewBackendError(http.StatusNotFound, "Address not found")

	assert.True(t, errors.Is(err, ErrBackend))
	assert.False(t, errors.Is(err, ErrNotServiceable))
	assert.Equal(t, http.StatusNotFound, err.Status())
	assert.Equal(t, "Address not found", err.Message())
	assert.Contains(t, err.Error(), "Not Found")
}
