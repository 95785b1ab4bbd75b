package routerepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// ActiveStopIndex is the partial unique index that keeps an order on at most
// one active stop.
const ActiveStopIndex = "ux_stops_active_order"

type RouteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID      uuid.UUID `gorm:"type:uuid;index"`
	VehicleID     uuid.UUID `gorm:"type:uuid;index"`
	ZoneID        string    `gorm:"index"`
	ScheduledDate time.Time `gorm:"type:date"`
	Status        string    `gorm:"index"`
	CancelReason  string
	CreatedAt     time.Time
	Version       int
	Stops         []StopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

func (RouteDTO) TableName() string {
	return "routes"
}

// StopDTO.Active mirrors "route not cancelled and stop not released" so the
// partial unique index can see it.
type StopDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID  uuid.UUID `gorm:"type:uuid;index"`
	OrderID  uuid.UUID `gorm:"type:uuid;index:ux_stops_active_order,unique,where:active"`
	Position int
	Released bool
	Active   bool
}

func (StopDTO) TableName() string {
	return "stops"
}

func fromDomain(r *route.Route) RouteDTO {
	dto := RouteDTO{
		ID:            r.ID().Bytes(),
		DriverID:      r.DriverID().Bytes(),
		VehicleID:     r.VehicleID().Bytes(),
		ZoneID:        r.ZoneID(),
		ScheduledDate: r.ScheduledDate(),
		Status:        r.Status().String(),
		CancelReason:  r.CancelReason(),
		CreatedAt:     r.CreatedAt(),
		Version:       r.Version(),
	}
	dto.Stops = stopsFromDomain(r)
	return dto
}

func stopsFromDomain(r *route.Route) []StopDTO {
	cancelled := r.Status() == route.Cancelled
	stops := make([]StopDTO, 0, len(r.Stops()))
	for _, s := range r.Stops() {
		stops = append(stops, StopDTO{
			ID:       s.ID().Bytes(),
			RouteID:  r.ID().Bytes(),
			OrderID:  s.OrderID().Bytes(),
			Position: s.Position(),
			Released: s.Released(),
			Active:   !cancelled && !s.Released(),
		})
	}
	return stops
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromGoogle(dto.DriverID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromGoogle(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	status, err := route.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, s := range dto.Stops {
		stopID, stopErr := kernel.UUIDFromGoogle(s.ID)
		if stopErr != nil {
			return nil, stopErr
		}
		orderID, stopErr := kernel.UUIDFromGoogle(s.OrderID)
		if stopErr != nil {
			return nil, stopErr
		}
		stop, stopErr := route.RestoreStop(stopID, orderID, s.Position, s.Released)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return route.RestoreRoute(
		id,
		driverID,
		vehicleID,
		dto.ZoneID,
		dto.ScheduledDate,
		status,
		stops,
		dto.CancelReason,
		dto.CreatedAt,
		dto.Version,
	)
}
