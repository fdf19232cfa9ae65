package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrCourseNotFound     = errors.New("course not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrAttemptsExceeded   = errors.New("maximum attempts reached for this quiz")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrValidation         = errors.New("invalid input")

	// ErrAIUnavailable marks a failed text-generation call. It is always
	// recoverable: callers substitute a fallback template and never surface
	// it to the end user.
	ErrAIUnavailable = errors.New("ai service unavailable")
)
