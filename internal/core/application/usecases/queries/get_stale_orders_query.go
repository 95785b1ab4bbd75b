package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetStaleOrdersQueryIsNotConstructed = errors.New(
		"GetStaleOrdersQuery must be created via NewGetStaleOrdersQuery constructor",
	)
)

// GetStaleOrdersQuery reports dispatchable orders validated before
// asOf - olderThan. It is a business report; nothing expires.
type GetStaleOrdersQuery struct {
	olderThan time.Duration
	asOf      time.Time

	guard guard.ConstructorGuard
}

func NewGetStaleOrdersQuery(olderThan time.Duration, asOf time.Time) (GetStaleOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStaleOrdersQuery{}, errs.NewValueIsOutOfRangeError("olderThan", olderThan, "1ns", "unbounded")
	}
	if asOf.IsZero() {
		return GetStaleOrdersQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetStaleOrdersQuery{olderThan: olderThan, asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleOrdersQueryIsNotConstructed)
}

func (q GetStaleOrdersQuery) Cutoff() time.Time {
	return q.asOf.Add(-q.olderThan)
}
