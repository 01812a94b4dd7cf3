package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

func TestMapUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "organizations_name_key",
		Detail:         "Key (name)=(Microsoft) already exists.",
	}

	err := MapUniqueViolation(fmt.Errorf("insert: %w", pgErr), "organization with this name already exists.")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "name", apperrors.FieldOf(err))
	assert.Equal(t, "organization with this name already exists.", err.Error())
	assert.True(t, IsDuplicateConstraintError(pgErr, "organizations_name_key"))
	assert.False(t, IsDuplicateConstraintError(pgErr, "other_key"))
}

func TestMapUniqueViolation_PassThrough(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, MapUniqueViolation(plain, "ignored"))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	assert.Equal(t, error(fk), MapUniqueViolation(fk, "ignored"))
	assert.False(t, IsUniqueViolation(fk))
}

func TestForeignKeyConstraint(t *testing.T) {
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "jobs_degree_id_fkey"}
	assert.Equal(t, "jobs_degree_id_fkey", ForeignKeyConstraint(fmt.Errorf("insert: %w", fk)))

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "degrees_name_key"}
	assert.Empty(t, ForeignKeyConstraint(unique))
	assert.Empty(t, ForeignKeyConstraint(errors.New("boom")))
}
