package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorCarriesAllViolations(t *testing.T) {
	err := &ValidationError{
		Entity: "admin",
		Violations: []FieldError{
			{Field: "name", Code: CodeRequired, Message: "name is required"},
			{Field: "phone", Code: CodeRange, Message: "phone must be exactly 10 characters long"},
		},
	}
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "phone must be exactly 10 characters long")

	got, ok := IsValidation(fmt.Errorf("create: %w", err))
	require.True(t, ok)
	assert.Len(t, got.Violations, 2)
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsConflict(&ConflictError{Entity: "category", Field: "name"}))
	assert.True(t, IsNotFound(&NotFoundError{Entity: "user", ID: "x"}))
	assert.True(t, IsTransform(&TransformError{Err: errors.New("boom")}))

	assert.False(t, IsConflict(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestGatewayRetryability(t *testing.T) {
	timeout := &GatewayError{Op: "insert", Entity: "order", Timeout: true, Err: context.DeadlineExceeded}
	assert.True(t, IsRetryable(timeout))

	hard := &GatewayError{Op: "insert", Entity: "order", Err: errors.New("connection refused")}
	assert.False(t, IsRetryable(hard))
	assert.ErrorIs(t, timeout, context.DeadlineExceeded)
}
