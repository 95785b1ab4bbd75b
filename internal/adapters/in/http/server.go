package http

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"
)

// CommandHandler is satisfied by every command handler of the application
// layer.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every query handler of the application layer.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

type CommandHandlers struct {
	CreateOrder           CommandHandler[commands.CreateOrderCommand]
	ValidateOrder         CommandHandler[commands.ValidateOrderCommand]
	ChangeOrderStatus     CommandHandler[commands.ChangeOrderStatusCommand]
	RegisterVehicle       CommandHandler[commands.RegisterVehicleCommand]
	SetVehicleMaintenance CommandHandler[commands.SetVehicleMaintenanceCommand]
	CreateDraftRoute      CommandHandler[commands.CreateDraftRouteCommand]
	AddStop               CommandHandler[commands.RouteStopCommand]
	RemoveStop            CommandHandler[commands.RouteStopCommand]
	ReorderStops          CommandHandler[commands.ReorderStopsCommand]
	ChangeRouteVehicle    CommandHandler[commands.ChangeRouteVehicleCommand]
	ChangeRouteStatus     CommandHandler[commands.ChangeRouteStatusCommand]
	ChangeDeliveryStatus  CommandHandler[commands.ChangeDeliveryStatusCommand]
	AttachEvidence        CommandHandler[commands.AttachEvidenceCommand]
	ReportIncident        CommandHandler[commands.ReportIncidentCommand]
	ResolveIncident       CommandHandler[commands.ResolveIncidentCommand]
}

type QueryHandlers struct {
	GetEligibleOrders  QueryHandler[queries.GetEligibleOrdersQuery, []queries.OrderSummary]
	GetStaleOrders     QueryHandler[queries.GetStaleOrdersQuery, []queries.OrderSummary]
	GetOrder           QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetRoute           QueryHandler[queries.GetRouteQuery, queries.RouteView]
	GetDelivery        QueryHandler[queries.GetDeliveryQuery, queries.DeliveryView]
	GetRouteDeliveries QueryHandler[queries.GetRouteDeliveriesQuery, []queries.DeliveryView]
	GetHistory         QueryHandler[queries.GetHistoryQuery, queries.HistoryView]
}

// Server implements servers.ServerInterface. Handlers translate the wire
// model into commands and queries and return errors untouched; ErrorHandler
// turns them into responses.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers

	// staleAfter is the default threshold of GET /orders/stale.
	staleAfter time.Duration
	now        func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, staleAfter time.Duration) *Server {
	return &Server{
		commands:   commandHandlers,
		queries:    queryHandlers,
		staleAfter: staleAfter,
		now:        func() time.Time { return time.Now().UTC() },
	}
}
