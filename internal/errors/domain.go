package errors

import "fmt"

// ValidationError reports malformed or missing input, an invalid enum value
// or a malformed interval.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an unknown slot, booking or user identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// AuthorizationError reports a caller whose role may not run the operation.
type AuthorizationError struct {
	Role     string
	Required []string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("role '%s' is not allowed, requires one of %v", e.Role, e.Required)
}

func NewAuthorizationError(role string, required ...string) *AuthorizationError {
	return &AuthorizationError{Role: role, Required: required}
}

// AuthenticationError reports missing, expired or invalid credentials.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate e-mail on signup.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}
