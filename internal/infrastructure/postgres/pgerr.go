package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-catalog-service/pkg/apperrors"
)

// uniqueViolation is the Postgres error code for a unique-index collision.
const uniqueViolation = "23505"

// constraint name -> the wire-level field it guards. A 23505 raised by a
// constraint not listed here maps to a duplicate error without field
// attribution.
var uniqueConstraintFields = map[string]string{
	"products_sku_key":   "sku",
	"users_email_key":    "email",
	"users_username_key": "username",
}

// ErrVersionConflict reports a lost optimistic write: the row changed between
// fetch and update. It deliberately stays outside the client taxonomy and is
// mapped to an internal error at the boundary.
var ErrVersionConflict = errors.New("row version conflict")

// translateUnique converts unique-violation failures into taxonomy errors
// and passes everything else through.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.Duplicate(uniqueConstraintFields[pgErr.ConstraintName])
	}
	return err
}
