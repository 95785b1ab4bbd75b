package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRoute handles POST /api/v1/routes - creates a draft route.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body servers.CreateRouteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	driverID, err := toKernelID("driverId", body.DriverId)
	if err != nil {
		return err
	}
	vehicleID, err := toKernelID("vehicleId", body.VehicleId)
	if err != nil {
		return err
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateDraftRouteCommand(routeID, driverID, vehicleID, body.ZoneId, body.ScheduledDate.Time)
	if err != nil {
		return err
	}
	if err := s.commands.CreateDraftRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: routeID.Bytes()})
}

// GetRoute handles GET /api/v1/routes/{routeId}.
func (s *Server) GetRoute(ctx echo.Context, routeID servers.RouteId) error {
	id, err := toKernelID("routeId", routeID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return err
	}

	view, err := s.queries.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toRoute(view))
}

// AddStop handles POST /api/v1/routes/{routeId}/stops - appends an order.
func (s *Server) AddStop(ctx echo.Context, routeID servers.RouteId) error {
	var body servers.AddStopJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.routeStop(ctx, s.commands.AddStop, routeID, body.OrderId)
}

// RemoveStop handles DELETE /api/v1/routes/{routeId}/stops/{orderId}.
func (s *Server) RemoveStop(ctx echo.Context, routeID servers.RouteId, orderID servers.OrderId) error {
	return s.routeStop(ctx, s.commands.RemoveStop, routeID, orderID)
}

func (s *Server) routeStop(
	ctx echo.Context,
	handler CommandHandler[commands.RouteStopCommand],
	routeID servers.RouteId,
	orderID servers.OrderId,
) error {
	rid, err := toKernelID("routeId", routeID)
	if err != nil {
		return err
	}
	oid, err := toKernelID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRouteStopCommand(rid, oid)
	if err != nil {
		return err
	}
	if err := handler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReorderStops handles PUT /api/v1/routes/{routeId}/stops - the body is the
// full new sequence of the route's active stops.
func (s *Server) ReorderStops(ctx echo.Context, routeID servers.RouteId) error {
	id, err := toKernelID("routeId", routeID)
	if err != nil {
		return err
	}

	var body servers.ReorderStopsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	sequence, err := toKernelIDs("orderIds", body.OrderIds)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReorderStopsCommand(id, sequence)
	if err != nil {
		return err
	}
	if err := s.commands.ReorderStops.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeRouteVehicle handles PUT /api/v1/routes/{routeId}/vehicle.
func (s *Server) ChangeRouteVehicle(ctx echo.Context, routeID servers.RouteId) error {
	id, err := toKernelID("routeId", routeID)
	if err != nil {
		return err
	}

	var body servers.ChangeRouteVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	vehicleID, err := toKernelID("vehicleId", body.VehicleId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeRouteVehicleCommand(id, vehicleID)
	if err != nil {
		return err
	}
	if err := s.commands.ChangeRouteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PublishRoute handles POST /api/v1/routes/{routeId}/publish.
func (s *Server) PublishRoute(ctx echo.Context, routeID servers.RouteId) error {
	return s.changeRouteStatus(ctx, routeID, commands.RouteActionPublish, "")
}

// StartRoute handles POST /api/v1/routes/{routeId}/start.
func (s *Server) StartRoute(ctx echo.Context, routeID servers.RouteId) error {
	return s.changeRouteStatus(ctx, routeID, commands.RouteActionStart, "")
}

// CompleteRoute handles POST /api/v1/routes/{routeId}/complete.
func (s *Server) CompleteRoute(ctx echo.Context, routeID servers.RouteId) error {
	return s.changeRouteStatus(ctx, routeID, commands.RouteActionComplete, "")
}

// CancelRoute handles POST /api/v1/routes/{routeId}/cancel.
func (s *Server) CancelRoute(ctx echo.Context, routeID servers.RouteId) error {
	var body servers.CancelRouteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.changeRouteStatus(ctx, routeID, commands.RouteActionCancel, body.Reason)
}

func (s *Server) changeRouteStatus(ctx echo.Context, routeID servers.RouteId, action commands.RouteAction, reason string) error {
	id, err := toKernelID("routeId", routeID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeRouteStatusCommand(id, action, reason)
	if err != nil {
		return err
	}
	if err := s.commands.ChangeRouteStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRouteDeliveries handles GET /api/v1/routes/{routeId}/deliveries.
func (s *Server) GetRouteDeliveries(ctx echo.Context, routeID servers.RouteId) error {
	id, err := toKernelID("routeId", routeID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetRouteDeliveriesQuery(id)
	if err != nil {
		return err
	}

	views, err := s.queries.GetRouteDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	response, err := toDeliveries(views)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, response)
}
