// Package apperr defines the error taxonomy shared by the checkout path.
// Handlers map these types to HTTP statuses in exactly one place.
package apperr

import "fmt"

// ValidationError is bad or missing client input. Maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError means an integration has no credentials configured. It is
// a client-visible precondition failure, not a server fault. Maps to 400.
type ConfigurationError struct {
	Integration string
}

func (e *ConfigurationError) Error() string { return e.Integration + " not configured" }

// GatewayError is a non-success from an upstream provider. The provider status
// and body are preserved verbatim for diagnostics. Maps to 500.
type GatewayError struct {
	Provider string
	Status   int
	Body     string
}

func (e *GatewayError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Body)
}

// PersistenceError means the durable order append failed. This is the one
// failure the confirm operation must surface. Maps to 500.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }
