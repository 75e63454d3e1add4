package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this month"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PatternValidationError carries every problem found in a pattern grid.
// Callers report the whole list at once.
type PatternValidationError struct {
	Errors []string
}

func (e *PatternValidationError) Error() string {
	return fmt.Sprintf("invalid pattern: %s", strings.Join(e.Errors, "; "))
}

// PreconditionError aborts an operation before any row is written
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrPatternNotFound           = &NotFoundError{Entity: "pattern"}
	ErrShiftNotFound             = &NotFoundError{Entity: "shift"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrPatternAssignmentNotFound = &NotFoundError{Entity: "pattern assignment"}
	ErrShiftAssignmentNotFound   = &NotFoundError{Entity: "shift assignment"}
)

// Already Exists Errors
var (
	ErrPatternAssignmentExists = &AlreadyExistsError{Entity: "pattern assignment", Context: "for this user and month"}
	ErrShiftCodeExists         = &AlreadyExistsError{Entity: "shift", Context: "with this code"}
)

// Business Logic Errors
var (
	ErrPatternInUse            = errors.New("pattern is referenced by pattern assignments")
	ErrRowIndexOutOfRange      = errors.New("row index is outside the pattern grid")
	ErrInvalidMonthFormat      = errors.New("invalid month format, expected YYYY-MM")
	ErrInvalidTimeFormat       = errors.New("invalid time format, expected HH:MM")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrRateLimitExceeded       = errors.New("rate limit exceeded")
)

// Precondition Errors
var (
	ErrNoPatternAssignments = &PreconditionError{Reason: "no pattern assignments found for this month"}
	ErrNoActiveShifts       = &PreconditionError{Reason: "no active shifts configured"}
)

// Authentication Errors
var (
	ErrMissingActor      = &AuthenticationError{Message: "acting user not found in context"}
	ErrAdminRoleRequired = &AuthorizationError{Message: "admin role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPatternValidation checks if an error is a PatternValidationError
func IsPatternValidation(err error) bool {
	var patternErr *PatternValidationError
	return errors.As(err, &patternErr)
}

// IsPrecondition checks if an error is a PreconditionError
func IsPrecondition(err error) bool {
	var preErr *PreconditionError
	return errors.As(err, &preErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewPatternValidationError creates a new PatternValidationError
func NewPatternValidationError(errs []string) error {
	return &PatternValidationError{Errors: errs}
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(reason string) error {
	return &PreconditionError{Reason: reason}
}
