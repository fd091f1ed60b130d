package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapStudentFKErr_ForeignKeyViolation(t *testing.T) {
	// A roster delete racing the upsert surfaces as SQLSTATE 23503; callers
	// must see the sentinel, not the raw driver error.
	pgErr := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "attendance_records_student_id_fkey",
	}

	err := mapStudentFKErr(pgErr)

	assert.True(t, errors.Is(err, ErrStudentMissing))
}

func TestMapStudentFKErr_WrappedForeignKeyViolation(t *testing.T) {
	wrapped := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23503"})

	err := mapStudentFKErr(wrapped)

	assert.True(t, errors.Is(err, ErrStudentMissing))
}

func TestMapStudentFKErr_OtherCodesPassThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	err := mapStudentFKErr(pgErr)

	assert.False(t, errors.Is(err, ErrStudentMissing))
	assert.Equal(t, error(pgErr), err)
}

func TestMapStudentFKErr_NonPgError(t *testing.T) {
	plain := errors.New("connection reset")

	err := mapStudentFKErr(plain)

	assert.Equal(t, plain, err)
}
