package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewConflict(CodeEmailExists, "email is already in use")

	mapped := ToDomainError(original)
	assert.Equal(t, CodeEmailExists, mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)

	assert.Equal(t, CodeNotFound, mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		pgCode     string
		wantCode   string
		wantStatus int
	}{
		{"unique violation", "23505", CodeDuplicateEntry, http.StatusConflict},
		{"foreign key violation", "23503", CodeForeignKey, http.StatusBadRequest},
		{"other pg error", "42P01", CodeDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := ToDomainError(&pgconn.PgError{Code: tt.pgCode})
			assert.Equal(t, tt.wantCode, mapped.Code)
			assert.Equal(t, tt.wantStatus, mapped.HTTPStatus)
		})
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))

	assert.Equal(t, CodeInternal, mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// The raw cause is preserved for logging but hidden from the message.
	assert.Equal(t, "internal server error: boom", mapped.Error())
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := NewInternalError(cause)

	require.ErrorIs(t, wrapped, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
