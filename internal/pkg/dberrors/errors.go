package dberrors

import (
	"errors"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
)

// reKeyField extracts the column from "Key (name)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// IsUniqueViolation reports whether err is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsDuplicateConstraintError checks if the error is a unique violation
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraintName
}

// ForeignKeyConstraint returns the violated constraint name when err is a
// foreign key violation, and "" otherwise.
func ForeignKeyConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return pgErr.ConstraintName
	}
	return ""
}

// MapUniqueViolation turns a unique violation into a field scoped validation
// error. The field comes from the violation detail; message is used verbatim.
// Any other error is returned unchanged.
func MapUniqueViolation(err error, message string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	field := ""
	if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
		field = m[1]
	}
	return apperrors.NewValidationError(field, message)
}
