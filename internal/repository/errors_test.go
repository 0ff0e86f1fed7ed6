package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslatePgError(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.ErrorIs(t, translatePgError(unique), ErrDuplicate)

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	assert.ErrorIs(t, translatePgError(fk), ErrReferenceNotFound)

	check := &pgconn.PgError{Code: pgerrcode.CheckViolation}
	assert.Same(t, check, translatePgError(check))

	plain := errors.New("boom")
	assert.Same(t, plain, translatePgError(plain))
}

func TestNormalizePage(t *testing.T) {
	limit, offset := normalizePage(0, -5)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = normalizePage(50, 100)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 100, offset)
}
