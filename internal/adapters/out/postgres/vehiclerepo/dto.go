package vehiclerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

type VehicleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate    string    `gorm:"uniqueIndex"`
	Capacity int
	Status   string     `gorm:"index"`
	RouteID  *uuid.UUID `gorm:"type:uuid;index"`
	Loads    []LoadDTO  `gorm:"serializer:json;type:jsonb"`
	Version  int
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

type LoadDTO struct {
	OrderID uuid.UUID `json:"orderId"`
	Units   int       `json:"units"`
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	var routeID *uuid.UUID
	if id := v.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	loads := make([]LoadDTO, 0, len(v.Loads()))
	for _, l := range v.Loads() {
		loads = append(loads, LoadDTO{OrderID: l.OrderID.Bytes(), Units: l.Units})
	}

	return VehicleDTO{
		ID:       v.ID().Bytes(),
		Plate:    v.Plate(),
		Capacity: v.Capacity(),
		Status:   v.Status().String(),
		RouteID:  routeID,
		Loads:    loads,
		Version:  v.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromGoogle(*dto.RouteID)
		if routeErr != nil {
			return nil, routeErr
		}
		routeID = &rID
	}

	status, err := vehicle.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	loads := make([]vehicle.Load, 0, len(dto.Loads))
	for _, l := range dto.Loads {
		orderID, loadErr := kernel.UUIDFromGoogle(l.OrderID)
		if loadErr != nil {
			return nil, loadErr
		}
		load, loadErr := vehicle.NewLoad(orderID, l.Units)
		if loadErr != nil {
			return nil, loadErr
		}
		loads = append(loads, load)
	}

	return vehicle.RestoreVehicle(id, dto.Plate, dto.Capacity, status, routeID, loads, dto.Version)
}
