// Package errors defines application-level errors carrying HTTP status codes
// and business error codes for the API surface.
package errors

import (
	"net/http"

	"sharefit/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WrapCause wraps a low-level cause as this error, keeping the original
// error text in details.
func (e *BaseError) WrapCause(cause error, message string) error {
	return errors.Wrap(e.WithDetails(cause.Error()), message)
}

// Is matches errors by business error code so that WithDetails copies still
// compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"사용자를 찾을 수 없습니다",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"이미 등록된 이메일입니다",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"사용자 생성에 실패했습니다",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"이메일 또는 비밀번호가 올바르지 않습니다",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"유효하지 않거나 만료된 리프레시 토큰입니다",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"비밀번호 처리 중 오류가 발생했습니다",
		"",
	)

	// Social graph errors
	ErrCannotFollowSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_FOLLOW_SELF",
		"자기 자신을 팔로우할 수 없습니다",
		"",
	)

	ErrAlreadyFollowing = NewBaseError(
		http.StatusConflict,
		"ALREADY_FOLLOWING",
		"이미 팔로우 중입니다",
		"",
	)

	// Workout-related errors
	ErrWorkoutNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKOUT_NOT_FOUND",
		"운동 기록을 찾을 수 없습니다",
		"",
	)

	ErrWorkoutNotOwned = NewBaseError(
		http.StatusForbidden,
		"WORKOUT_NOT_OWNED",
		"본인의 운동 기록만 수정할 수 있습니다",
		"",
	)

	ErrWorkoutAlreadyCompleted = NewBaseError(
		http.StatusConflict,
		"WORKOUT_ALREADY_COMPLETED",
		"이미 완료된 운동입니다",
		"",
	)

	// Feed-related errors
	ErrFeedNotFound = NewBaseError(
		http.StatusNotFound,
		"FEED_NOT_FOUND",
		"피드를 찾을 수 없습니다",
		"",
	)

	ErrAlreadyLiked = NewBaseError(
		http.StatusConflict,
		"ALREADY_LIKED",
		"이미 좋아요를 눌렀습니다",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"댓글을 찾을 수 없습니다",
		"",
	)

	// Group-related errors
	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"그룹을 찾을 수 없습니다",
		"",
	)

	ErrAlreadyGroupMember = NewBaseError(
		http.StatusConflict,
		"ALREADY_GROUP_MEMBER",
		"이미 그룹에 가입되어 있습니다",
		"",
	)

	ErrNotGroupMember = NewBaseError(
		http.StatusForbidden,
		"NOT_GROUP_MEMBER",
		"그룹 멤버만 이용할 수 있습니다",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값 검증에 실패했습니다",
		"",
	)

	// Storage-related errors
	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"파일 업로드에 실패했습니다",
		"",
	)

	// Generic database error
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"데이터 처리 중 오류가 발생했습니다",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as an AppError
// while keeping the original error text in details.
func NewDatabaseExecuteError(err error, message string) error {
	return ErrDatabaseExecute.WrapCause(err, message)
}
