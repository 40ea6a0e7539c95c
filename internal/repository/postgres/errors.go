package postgres

import (
	"database/sql"
	"errors"

	"car-rental-backend/internal/domain"

	"github.com/lib/pq"
)

// PostgreSQL error codes surfaced to callers.
const (
	codeNotNullViolation     = "23502"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeInvalidTextRepresent = "22P02"
	codeNumericOutOfRange    = "22003"
)

// translateError maps driver errors onto domain error kinds. Errors it does
// not recognise pass through unchanged.
func translateError(err error, entity domain.Entity, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(entity, id)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case codeUniqueViolation:
		return domain.Conflict(entity, id, "%s already exists: %s", entity, detail(pqErr))
	case codeForeignKeyViolation, codeNotNullViolation, codeCheckViolation,
		codeInvalidTextRepresent, codeNumericOutOfRange:
		return domain.BadRequest("invalid %s: %s", entity, detail(pqErr))
	}
	return err
}

// translateDeleteError treats a foreign key violation as a dependent row that
// appeared after the guards ran.
func translateDeleteError(err error, entity domain.Entity, id int64) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codeForeignKeyViolation {
		return domain.Conflict(entity, id, "cannot delete %s %d: it is still referenced", entity, id)
	}
	return translateError(err, entity, id)
}

func detail(pqErr *pq.Error) string {
	if pqErr.Detail != "" {
		return pqErr.Detail
	}
	return pqErr.Message
}
