package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("passes domain errors through", func(t *testing.T) {
		original := NewValidationError("title required", map[string]any{"field": "title"})
		wrapped := fmt.Errorf("create: %w", original)

		de := ToDomainError(wrapped)
		require.NotNil(t, de)
		assert.Equal(t, CodeValidation, de.Code)
		assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
		assert.Equal(t, "title", de.Details["field"])
	})

	t.Run("maps pgx no rows to not found", func(t *testing.T) {
		de := ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
		assert.Equal(t, CodeNotFound, de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	})

	t.Run("hides unexpected errors", func(t *testing.T) {
		cause := errors.New("dial tcp 10.0.0.3:5432: connection refused")
		de := ToDomainError(cause)
		assert.Equal(t, CodeInternal, de.Code)
		assert.Equal(t, "internal server error", de.Message)
		assert.ErrorIs(t, de, cause)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
		assert.NoError(t, MapError(nil))
	})
}

func TestFromStatus(t *testing.T) {
	cases := []struct {
		status  int
		code    string
		message string
	}{
		{http.StatusNotFound, CodeNotFound, "Cannot GET /nope"},
		{http.StatusMethodNotAllowed, CodeNotFound, "Method Not Allowed"},
		{http.StatusRequestEntityTooLarge, CodeValidation, "Request Entity Too Large"},
		{http.StatusUnauthorized, CodeUnauthorized, "Unauthorized"},
		{http.StatusBadGateway, CodeInternal, "internal server error"},
	}
	for _, tc := range cases {
		de := FromStatus(tc.status, tc.message)
		assert.Equal(t, tc.code, de.Code, "status %d", tc.status)
		assert.Equal(t, tc.message, de.Message, "status %d", tc.status)
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NewForbidden("nope"), CodeForbidden))
	assert.False(t, IsCode(NewForbidden("nope"), CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeForbidden))
}
