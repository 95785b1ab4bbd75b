package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

type routeRow struct {
	ID            uuid.UUID
	DriverID      uuid.UUID
	VehicleID     uuid.UUID
	ZoneID        string
	ScheduledDate time.Time
	Status        string
	CancelReason  string
	CreatedAt     time.Time
	Version       int
}

type stopRow struct {
	OrderID  uuid.UUID
	Position int
	Released bool
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.RouteID().Bytes()

	var row routeRow
	res := db.Raw(`
		SELECT id, driver_id, vehicle_id, zone_id, scheduled_date, status, cancel_reason, created_at, version
		FROM routes
		WHERE id = ?
	`, id).Scan(&row)
	if res.Error != nil {
		return RouteView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return RouteView{}, errs.NewObjectNotFoundError("routeId", query.RouteID())
	}

	var stops []stopRow
	err := db.Raw(`
		SELECT order_id, position, released
		FROM stops
		WHERE route_id = ?
		ORDER BY position
	`, id).Scan(&stops).Error
	if err != nil {
		return RouteView{}, err
	}

	view := RouteView{
		ID:            query.RouteID(),
		ZoneID:        row.ZoneID,
		ScheduledDate: row.ScheduledDate.UTC(),
		Status:        row.Status,
		CancelReason:  row.CancelReason,
		CreatedAt:     row.CreatedAt,
		Version:       row.Version,
		Stops:         make([]StopView, 0, len(stops)),
	}
	if view.DriverID, err = kernel.UUIDFromGoogle(row.DriverID); err != nil {
		return RouteView{}, err
	}
	if view.VehicleID, err = kernel.UUIDFromGoogle(row.VehicleID); err != nil {
		return RouteView{}, err
	}
	for _, s := range stops {
		orderID, idErr := kernel.UUIDFromGoogle(s.OrderID)
		if idErr != nil {
			return RouteView{}, idErr
		}
		view.Stops = append(view.Stops, StopView{OrderID: orderID, Position: s.Position, Released: s.Released})
	}

	return view, nil
}
