package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
)

// Postgres SQLSTATE codes that map onto the error taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// classifyStorageError maps a failed write onto the error taxonomy using
// structured codes: GORM's translated errors first, then raw Postgres codes.
func classifyStorageError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Wrap(apperrors.ErrDuplicateTransaction, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.Wrap(apperrors.ErrInvalidReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.Wrap(apperrors.ErrDuplicateTransaction, err)
		case pgForeignKeyViolation:
			return apperrors.Wrap(apperrors.ErrInvalidReference, err)
		case pgNotNullViolation, pgCheckViolation, pgNumericOutOfRange:
			return apperrors.Wrap(apperrors.ErrInsertValidation, err)
		}
	}

	return apperrors.Wrap(apperrors.ErrTransactionSave, err)
}
