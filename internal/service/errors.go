package service

import (
	"errors"
	"fmt"
)

// Sentinel errors that callers branch on with errors.Is.
var (
	// ErrTaskNotFound is returned when a local lookup by ID fails.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidCredentials is returned when login is rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when signup hits an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// NetworkError reports a transport failure, a timeout, or a 5xx response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError reports a rejected session token (HTTP 401 or 403).
// Callers should treat the session as invalid and route to login.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string { return fmt.Sprintf("auth rejected (HTTP %d)", e.Status) }

// ServerError reports a non-auth 4xx response, or a 2xx response whose
// body did not carry the expected object.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("server error: %s", e.Message)
	case e.Message == "":
		return fmt.Sprintf("server error (HTTP %d)", e.Status)
	default:
		return fmt.Sprintf("server error (HTTP %d): %s", e.Status, e.Message)
	}
}

// ValidationError reports a client-side precondition failure.
// No remote call was made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason) }
