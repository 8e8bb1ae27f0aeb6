package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidArgument marks caller mistakes: missing ids, unknown references
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDataAccess marks failures reported by the store
	ErrDataAccess = errors.New("data access error")

	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
)

// NewInvalidArgumentError creates an InvalidArgument error with a human readable message
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return &CustomError{
		Err:     ErrInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewResourceNotFoundError creates a not found error for the outer surfaces.
// Repositories and services never return it: absence is a nil result.
func NewResourceNotFoundError(format string, args ...interface{}) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsInvalidArgument reports whether err is an InvalidArgument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// DataAccessError is returned by every repository operation the store rejected.
// Op describes the attempted operation, Err is the driver cause.
type DataAccessError struct {
	Op  string
	Err error
}

// NewDataAccessError wraps cause with the description of the failed operation
func NewDataAccessError(cause error, format string, args ...interface{}) *DataAccessError {
	return &DataAccessError{
		Op:  fmt.Sprintf(format, args...),
		Err: cause,
	}
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return "error " + e.Op
	}
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDataAccess) match any DataAccessError
func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}

// IsDataAccess reports whether err carries a DataAccessError
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
