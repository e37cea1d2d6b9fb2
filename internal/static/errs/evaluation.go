package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrEmptySource         = errors.New("source code is empty")
	ErrRunInFlight         = errors.New("an evaluation for this problem and language is already running")
	ErrProblemNotFound     = errors.New("problem not found")
	ErrUserNotFound        = errors.New("user not found")
)

// ExecutionError is a failure of the execution collaborator for a single run:
// compile error, runtime crash, timeout or transport failure.
type ExecutionError struct {
	Reason string
	Err    error
}

func (e *ExecutionError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Reason
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError builds an ExecutionError with a formatted reason.
func NewExecutionError(err error, format string, args ...interface{}) *ExecutionError {
	return &ExecutionError{Reason: fmt.Sprintf(format, args...), Err: err}
}

// PersistenceError wraps a failure to store a verdict and its code.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save user code: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LoadError wraps a failure to fetch a problem, profile or submission history.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
