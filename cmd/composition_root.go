package cmd

import (
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler of the service on top of the outbound
// adapters created by main.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    ports.CatalogClient
	drivers    ports.DriverDirectory
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	catalog ports.CatalogClient,
	drivers ports.DriverDirectory,
	m *metrics.Metrics,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
		catalog:    catalog,
		drivers:    drivers,
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CommandHandlers() httpadapter.CommandHandlers {
	uow := c.uoWFactory()
	return httpadapter.CommandHandlers{
		CreateOrder:           commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		ValidateOrder:         commands.NewValidateOrderCommandHandler(c.orderUoWFactory(), c.catalog),
		ChangeOrderStatus:     commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory()),
		RegisterVehicle:       commands.NewRegisterVehicleCommandHandler(c.vehicleUoWFactory()),
		SetVehicleMaintenance: commands.NewSetVehicleMaintenanceCommandHandler(c.vehicleUoWFactory()),
		CreateDraftRoute:      commands.NewCreateDraftRouteCommandHandler(uow, c.drivers),
		AddStop:               commands.NewAddStopCommandHandler(uow),
		RemoveStop:            commands.NewRemoveStopCommandHandler(uow),
		ReorderStops:          commands.NewReorderStopsCommandHandler(uow),
		ChangeRouteVehicle:    commands.NewChangeRouteVehicleCommandHandler(uow),
		ChangeRouteStatus:     commands.NewChangeRouteStatusCommandHandler(uow),
		ChangeDeliveryStatus:  commands.NewChangeDeliveryStatusCommandHandler(uow),
		AttachEvidence:        commands.NewAttachEvidenceCommandHandler(uow),
		ReportIncident:        commands.NewReportIncidentCommandHandler(uow),
		ResolveIncident:       commands.NewResolveIncidentCommandHandler(uow),
	}
}

func (c *CompositionRoot) QueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		GetEligibleOrders:  queries.NewGetEligibleOrdersQueryHandler(c.gormDB),
		GetStaleOrders:     queries.NewGetStaleOrdersQueryHandler(c.gormDB),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		GetRoute:           queries.NewGetRouteQueryHandler(c.gormDB),
		GetDelivery:        queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetRouteDeliveries: queries.NewGetRouteDeliveriesQueryHandler(c.gormDB),
		GetHistory:         queries.NewGetHistoryQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) Server() *httpadapter.Server {
	return httpadapter.NewServer(c.CommandHandlers(), c.QueryHandlers(), c.cfg.StaleOrdersThreshold)
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStaleOrdersReportJob(
			queries.NewGetStaleOrdersQueryHandler(c.gormDB),
			c.metrics.StaleOrders,
			c.cfg.StaleOrdersSchedule,
			c.cfg.StaleOrdersThreshold,
			c.logger,
		),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
