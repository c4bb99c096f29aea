// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeUndefinedUnit indicates an unknown unit token
	TypeUndefinedUnit Type = "UNDEFINED_UNIT"

	// TypeIncompatibleUnits indicates units with no dimensional path
	TypeIncompatibleUnits Type = "INCOMPATIBLE_UNITS"

	// TypeNonIntegralExponent indicates a non-integral measurement exponent
	TypeNonIntegralExponent Type = "NON_INTEGRAL_EXPONENT"

	// TypeDivisionByZero indicates a zero divisor in measurement arithmetic
	TypeDivisionByZero Type = "DIVISION_BY_ZERO"

	// TypeMalformedCatalog indicates a bad catalog entry at build time
	TypeMalformedCatalog Type = "MALFORMED_CATALOG"

	// TypePersistence indicates a bundle load/store error
	TypePersistence Type = "PERSISTENCE_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// UndefinedUnit creates an undefined unit error for an unknown token
func UndefinedUnit(token string) *Error {
	return Newf(TypeUndefinedUnit, "undefined unit '%s'", token).
		WithContext("token", token)
}

// IncompatibleUnits creates an incompatible units error naming both unit strings
func IncompatibleUnits(from, to string) *Error {
	return Newf(TypeIncompatibleUnits, "incompatible units cannot be converted: %s and %s", from, to).
		WithContext("from", from).
		WithContext("to", to)
}

// NonIntegralExponent creates a non-integral exponent error
func NonIntegralExponent(exponent string) *Error {
	return Newf(TypeNonIntegralExponent, "cannot raise a measurement to non-integral power %s", exponent).
		WithContext("exponent", exponent)
}

// DivisionByZero creates a zero-divisor error
func DivisionByZero() *Error {
	return New(TypeDivisionByZero, "division by zero")
}

// MalformedCatalog creates a catalog authoring error
func MalformedCatalog(message string, cause error) *Error {
	return Wrap(TypeMalformedCatalog, message, cause)
}

// Persistence creates a bundle persistence error
func Persistence(message string, cause error) *Error {
	return Wrap(TypePersistence, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
