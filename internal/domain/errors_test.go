package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fct/internal/domain"
)

func TestFailure_Error(t *testing.T) {
	cause := errors.New("connection reset")

	assert.Equal(t, "drone 7 not found", domain.NotFoundf("drone %d not found", 7).Error())
	assert.Equal(t, "cannot load drone: connection reset",
		domain.Wrap(domain.KindConflict, cause, "cannot load drone").Error())
}

func TestFailure_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	failure := domain.Wrap(domain.KindBadRequest, cause, "bad telemetry frame")

	assert.ErrorIs(t, failure, cause)
}

func TestAsFailure(t *testing.T) {
	// Arrange
	err := fmt.Errorf("dispatch: %w", domain.Conflict("drone already in flight"))

	// Act
	failure, ok := domain.AsFailure(err)

	// Assert
	require.True(t, ok)
	assert.Equal(t, domain.KindConflict, failure.Kind)
	assert.Equal(t, "drone already in flight", failure.Message)

	_, ok = domain.AsFailure(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", domain.NotFound("no such drone"))

	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.False(t, domain.IsKind(err, domain.KindConflict))
	assert.False(t, domain.IsKind(errors.New("plain"), domain.KindNotFound))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		failure *domain.Failure
		kind    domain.Kind
		name    string
	}{
		{failure: domain.NotFound("x"), kind: domain.KindNotFound, name: "not_found"},
		{failure: domain.Conflictf("%s", "x"), kind: domain.KindConflict, name: "conflict"},
		{failure: domain.BadRequestf("%s", "x"), kind: domain.KindBadRequest, name: "bad_request"},
		{failure: domain.Validation(), kind: domain.KindValidation, name: "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.failure.Kind)
			assert.Equal(t, tt.name, tt.failure.Kind.String())
		})
	}

	assert.Equal(t, "unknown", domain.Kind(0).String())
}

func TestValidation_KeepsFieldOrder(t *testing.T) {
	failure := domain.Validation(
		domain.FieldError{Field: "name", DefaultMessage: "must not be blank"},
		domain.FieldError{Field: "age", DefaultMessage: "must be positive"},
	)

	require.Len(t, failure.Fields, 2)
	assert.Equal(t, "name", failure.Fields[0].Field)
	assert.Equal(t, "age", failure.Fields[1].Field)
}
