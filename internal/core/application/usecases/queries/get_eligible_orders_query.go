package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetEligibleOrdersQueryIsNotConstructed = errors.New(
		"GetEligibleOrdersQuery must be created via NewGetEligibleOrdersQuery constructor",
	)
)

// GetEligibleOrdersQuery lists the dispatch pool: orders in a dispatchable
// status that no active route stop holds. An empty zone lists every zone.
//
// Example:
//
//	query := NewGetEligibleOrdersQuery("north")
//	orders, err := NewGetEligibleOrdersQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s: %d units\n", o.ID, o.ApprovedUnits)
//	}
type GetEligibleOrdersQuery struct {
	zoneID string

	guard guard.ConstructorGuard
}

func NewGetEligibleOrdersQuery(zoneID string) GetEligibleOrdersQuery {
	return GetEligibleOrdersQuery{zoneID: zoneID, guard: guard.NewConstructorGuard()}
}

func (q GetEligibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleOrdersQueryIsNotConstructed)
}

func (q GetEligibleOrdersQuery) ZoneID() string {
	return q.zoneID
}
