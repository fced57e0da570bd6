package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrNoDepartment signals that the acting user has no department
	// assigned while the operation requires one.
	ErrNoDepartment = errors.New("user has no department assigned")
)

// Department and subject errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrSubjectNotFound    = errors.New("subject not found")
	// ErrSubjectNotInDepartment signals that a question targets a subject
	// outside the asking student's department.
	ErrSubjectNotInDepartment = errors.New("subject does not belong to your department")
)

// Question and answer errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	// ErrFacultyNotAssigned signals that a faculty user tried to answer a
	// question in a subject they are not assigned to.
	ErrFacultyNotAssigned = errors.New("faculty is not assigned to this subject")
)

// Vote errors
var (
	// ErrAlreadyVoted is the benign duplicate-upvote outcome. It never
	// changes state and callers report it rather than fail on it.
	ErrAlreadyVoted = errors.New("already voted on this answer")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a field-level message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
