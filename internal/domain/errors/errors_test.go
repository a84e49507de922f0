package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharefit/internal/errors"
)

func TestBaseError_WrapCause(t *testing.T) {
	cause := errors.New("bucket unreachable")

	err := ErrUploadFailed.WrapCause(cause, "failed to upload image")
	require.Error(t, err)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrUploadFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, ErrUploadFailed.HTTPCode(), appErr.HTTPCode())
	assert.Equal(t, "bucket unreachable", appErr.Details())
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "failed to upload image")
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrUserCreationFailed.WrapMessage("missing required user information")
	require.Error(t, err)

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Empty(t, appErr.Details())
	assert.ErrorIs(t, err, ErrUserCreationFailed)
}

func TestBaseError_WithDetails_KeepsSentinelIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("name is required")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.NotErrorIs(t, detailed, ErrUploadFailed)
}
