package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fct/internal/domain"
	"fct/internal/storage"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedKind    domain.Kind
		expectedMessage string
	}{
		{
			name:            "gorm record not found",
			err:             fmt.Errorf("get drone: %w", gorm.ErrRecordNotFound),
			expectedKind:    domain.KindNotFound,
			expectedMessage: "resource not found",
		},
		{
			name:            "storage not found",
			err:             storage.ErrNotFound,
			expectedKind:    domain.KindNotFound,
			expectedMessage: "resource not found",
		},
		{
			name:            "storage already exists",
			err:             storage.ErrAlreadyExists,
			expectedKind:    domain.KindConflict,
			expectedMessage: "resource already exists",
		},
		{
			name:            "storage conflict",
			err:             storage.ErrConflict,
			expectedKind:    domain.KindConflict,
			expectedMessage: "data conflict",
		},
		{
			name:            "unique violation",
			err:             &pgconn.PgError{Code: storage.UniqueViolation, Message: "duplicate key value violates unique constraint"},
			expectedKind:    domain.KindConflict,
			expectedMessage: "resource already exists",
		},
		{
			name:            "foreign key violation",
			err:             fmt.Errorf("insert mission: %w", &pgconn.PgError{Code: storage.ForeignKeyViolation}),
			expectedKind:    domain.KindConflict,
			expectedMessage: "data conflict",
		},
		{
			name:            "invalid text representation",
			err:             &pgconn.PgError{Code: storage.InvalidTextRepresentation, Message: "invalid input syntax for type uuid"},
			expectedKind:    domain.KindBadRequest,
			expectedMessage: "invalid data",
		},
		{
			name:            "check violation",
			err:             &pgconn.PgError{Code: storage.CheckViolation, Message: "new row violates check constraint"},
			expectedKind:    domain.KindBadRequest,
			expectedMessage: "invalid data",
		},
		{
			name:            "storage invalid data",
			err:             storage.ErrInvalidData,
			expectedKind:    domain.KindBadRequest,
			expectedMessage: "invalid data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			translated := storage.Translate(tt.err)

			// Assert
			failure, ok := domain.AsFailure(translated)
			require.True(t, ok)
			assert.Equal(t, tt.expectedKind, failure.Kind)
			assert.Equal(t, tt.expectedMessage, failure.Message)
			assert.ErrorIs(t, translated, tt.err)
		})
	}
}

func TestTranslate_PassesThrough(t *testing.T) {
	plain := errors.New("disk full")
	failure := domain.Conflict("already docked")
	pgErr := &pgconn.PgError{Code: "40001"}

	assert.NoError(t, storage.Translate(nil))
	assert.Same(t, plain, storage.Translate(plain))
	assert.Same(t, failure, storage.Translate(failure))
	assert.Same(t, pgErr, storage.Translate(pgErr))
}

func TestTranslate_DoesNotLeakSchemaDetails(t *testing.T) {
	// Arrange
	pgErr := &pgconn.PgError{
		Code:       storage.NotNullViolation,
		Message:    `null value in column "serial_number" of relation "drones" violates not-null constraint`,
		TableName:  "drones",
		ColumnName: "serial_number",
	}

	// Act
	failure, ok := domain.AsFailure(storage.Translate(pgErr))

	// Assert
	require.True(t, ok)
	assert.Equal(t, domain.KindBadRequest, failure.Kind)
	assert.Equal(t, "invalid data", failure.Message)
	assert.NotContains(t, failure.Message, "serial_number")
	assert.NotContains(t, failure.Message, "drones")
}
