// Package errors provides centralized error definitions and error handling
// utilities for the tasktally codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - SeedError: errors related to acquiring the seed data set
//   - StoreError: errors related to the task store
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewSeedError("fetch failed", errors.ErrSeedUnavailable).WithSource(path)
//
//	// Semantic error
//	err := errors.NewNotFoundError("task", "abc123")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrSeedUnavailable) { ... }
//
//	var seedErr *errors.SeedError
//	if errors.As(err, &seedErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Retryable: transient errors that may succeed on retry
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Info, Warning, Error, Critical
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Seed-related sentinel errors
var (
	// ErrSeedUnavailable indicates the seed data could not be fetched.
	ErrSeedUnavailable = New("seed data unavailable")
	// ErrSeedEmpty indicates the fetched seed decoded to zero records.
	ErrSeedEmpty = New("seed data is empty")
	// ErrAlreadySeeded indicates the store's one-shot seed pass already ran.
	ErrAlreadySeeded = New("store already seeded")
)

// Store-related sentinel errors
var (
	// ErrTaskNotFound indicates that a task could not be found.
	ErrTaskNotFound = New("task not found")
	// ErrNothingToUndo indicates the last-deleted slot is empty.
	ErrNothingToUndo = New("nothing to undo")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TallyError is the base interface for all tasktally errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type TallyError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// SeedError represents errors from acquiring or decoding the seed data set.
//
// Example:
//
//	err := errors.NewSeedError("fetch failed", errors.ErrSeedUnavailable)
//	err = err.WithSource("data/tasks.json").WithStatusCode(503)
type SeedError struct {
	baseError
	Source     string
	StatusCode int
}

// NewSeedError creates a new SeedError. Seed errors are retryable by
// default since the dashboard falls back to generated data and a later
// session may find the source healthy again.
func NewSeedError(message string, cause error) *SeedError {
	return &SeedError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithSource adds the seed path or URL to the error context.
func (e *SeedError) WithSource(source string) *SeedError {
	e.Source = source
	return e
}

// WithStatusCode adds an HTTP status code to the error context.
func (e *SeedError) WithStatusCode(code int) *SeedError {
	e.StatusCode = code
	return e
}

// WithSeverity sets the error severity.
func (e *SeedError) WithSeverity(s Severity) *SeedError {
	e.severity = s
	return e
}

// WithRetryable sets whether the error is retryable.
func (e *SeedError) WithRetryable(r bool) *SeedError {
	e.retryable = r
	return e
}

// Error returns the formatted error message.
func (e *SeedError) Error() string {
	var parts []string
	if e.Source != "" {
		parts = append(parts, fmt.Sprintf("source=%s", e.Source))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	prefix := "seed error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("seed error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SeedError) Is(target error) bool {
	if _, ok := target.(*SeedError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// StoreError represents errors related to the task store.
//
// Example:
//
//	err := errors.NewStoreError("update rejected", errors.ErrTaskNotFound).WithTaskID("t-1")
type StoreError struct {
	baseError
	TaskID string
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithTaskID adds a task ID to the error context.
func (e *StoreError) WithTaskID(id string) *StoreError {
	e.TaskID = id
	return e
}

// WithSeverity sets the error severity.
func (e *StoreError) WithSeverity(s Severity) *StoreError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	prefix := "store error"
	if e.TaskID != "" {
		prefix = fmt.Sprintf("store error [task=%s]", e.TaskID)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *StoreError) Is(target error) bool {
	if _, ok := target.(*StoreError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("task", "abc123")
//	fmt.Println(err) // "task 'abc123' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if errors.Is(target, ErrTaskNotFound) {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("seed count must be positive")
//	err = err.WithField("seed.count").WithValue(-1)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry.
//
// Example:
//
//	if errors.IsRetryable(err) {
//	    scheduleRefetch()
//	}
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var tallyErr TallyError
	if As(err, &tallyErr) {
		return tallyErr.IsRetryable()
	}

	return false
}

// IsUserFacing returns true if the error message is safe to display to end
// users. Semantic errors are always user-facing.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    banner = err.Error()
//	} else {
//	    banner = "an internal error occurred"
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var tallyErr TallyError
	if As(err, &tallyErr) {
		return tallyErr.IsUserFacing()
	}

	var notFound *NotFoundError
	var validation *ValidationError
	if As(err, &notFound) || As(err, &validation) {
		return true
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TallyError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var tallyErr TallyError
	if As(err, &tallyErr) {
		return tallyErr.Severity()
	}

	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to seed store")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to read seed file %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
