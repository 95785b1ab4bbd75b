package postgres

import (
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/historyrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &orderrepo.ResolutionDTO{},
		&routerepo.RouteDTO{}, &routerepo.StopDTO{},
		&deliveryrepo.DeliveryDTO{}, &deliveryrepo.EvidenceDTO{}, &deliveryrepo.IncidentDTO{},
		&vehiclerepo.VehicleDTO{},
		&historyrepo.EntryDTO{},
	}
}

// Migrate creates or alters the tables behind Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
