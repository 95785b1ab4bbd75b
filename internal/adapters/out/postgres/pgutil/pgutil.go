// Package pgutil holds the helpers shared by the gorm repositories: the
// optimistic-concurrency write check and Postgres error classification.
package pgutil

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique violation of constraint.
// An empty constraint matches any unique index.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
}

// VersionedWrite describes an UPDATE guarded by the version the aggregate
// was loaded with.
type VersionedWrite struct {
	Table   string
	Entity  string
	ID      uuid.UUID
	Version int
	Status  string
	Result  *gorm.DB
}

// CheckVersionedWrite turns a zero-row guarded UPDATE into either
// ObjectNotFoundError (the row is gone) or ConcurrencyConflictError (someone
// else wrote first).
func CheckVersionedWrite(ctx context.Context, db *gorm.DB, w VersionedWrite) error {
	if w.Result.Error != nil {
		return w.Result.Error
	}
	if w.Result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Table(w.Table).Where("id = ?", w.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(w.Entity, w.ID.String())
	}
	return errs.NewConcurrencyConflictError(w.Entity, w.ID.String(), w.Version, w.Status)
}
