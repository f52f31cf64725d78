// Package apperr defines the error taxonomy shared by the validation layer,
// the persistence gateway and the HTTP handlers. Every failure surfaced by an
// entity operation is one of the types below; nothing is logged-and-swallowed
// inside the data layer.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Violation codes carried by FieldError.
const (
	CodeRequired  = "required"
	CodeRange     = "range"
	CodePattern   = "pattern"
	CodeEnum      = "enum"
	CodePrecision = "precision"
	CodeReference = "reference"
)

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError carries every violation found in a candidate payload,
// never just the first one.
type ValidationError struct {
	Entity     string       `json:"entity"`
	Violations []FieldError `json:"violations"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(msgs, "; "))
}

// ConflictError is a uniqueness constraint violation, distinct from
// field-shape validation.
type ConflictError struct {
	Entity string
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with the same %s already exists", e.Entity, e.Field)
}

// NotFoundError means the referenced identifier does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// TransformError is a secret-hashing failure. The write it belongs to must
// not proceed.
type TransformError struct {
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("secret transform failed: %v", e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// GatewayError wraps a storage failure. Timeout marks errors a caller may
// retry with backoff.
type GatewayError struct {
	Op      string
	Entity  string
	Timeout bool
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s on %s failed: %v", e.Op, e.Entity, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError and
// returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

func IsTransform(err error) bool {
	var te *TransformError
	return errors.As(err, &te)
}

// IsRetryable reports whether err is a gateway timeout that the caller may
// retry with backoff.
func IsRetryable(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.Timeout
}
