package queries

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)
)

// GetHistoryQuery reads the audit log of one entity. When At is set the
// response also carries the status the entity had at that instant.
type GetHistoryQuery struct {
	entityType history.EntityType
	entityID   kernel.UUID
	at         *time.Time

	guard guard.ConstructorGuard
}

func NewGetHistoryQuery(entityType string, entityID kernel.UUID, at *time.Time) (GetHistoryQuery, error) {
	t := history.EntityType(entityType)
	if !t.Valid() {
		return GetHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("entityType",
			fmt.Errorf("%q is not one of order, route, delivery, vehicle", entityType))
	}
	if err := entityID.Validate(); err != nil {
		return GetHistoryQuery{}, err
	}
	return GetHistoryQuery{entityType: t, entityID: entityID, at: at, guard: guard.NewConstructorGuard()}, nil
}

func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

func (q GetHistoryQuery) EntityType() history.EntityType {
	return q.entityType
}

func (q GetHistoryQuery) EntityID() kernel.UUID {
	return q.entityID
}

func (q GetHistoryQuery) At() *time.Time {
	return q.at
}

type HistoryView struct {
	Entries []history.Entry
	// StatusAt is the replayed status, set only when the query asked for an
	// instant at which the entity existed.
	StatusAt *string
}
