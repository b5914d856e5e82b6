package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"rentease-backend/internal/domain"
)

const uniqueViolation = "23505"

// mapError converts driver errors into domain errors. entity names the
// record in NotFound messages.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError("%s not found", entity)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.NewConflictError("%s already exists", entity)
	}
	return err
}

// requireRows returns NotFound when an UPDATE or DELETE matched nothing.
func requireRows(result sql.Result, entity string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewNotFoundError("%s not found", entity)
	}
	return nil
}

func nullInt32(v *int32) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: *v, Valid: true}
}

func int32Ptr(v sql.NullInt32) *int32 {
	if !v.Valid {
		return nil
	}
	i := v.Int32
	return &i
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
