package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterVehicle handles POST /api/v1/vehicles - registers a fleet vehicle.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var body servers.RegisterVehicleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVehicleCommand(vehicleID, body.Plate, body.Capacity)
	if err != nil {
		return err
	}
	if err := s.commands.RegisterVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: vehicleID.Bytes()})
}

// SetVehicleMaintenance handles POST /api/v1/vehicles/{vehicleId}/maintenance.
func (s *Server) SetVehicleMaintenance(ctx echo.Context, vehicleID servers.VehicleId) error {
	id, err := toKernelID("vehicleId", vehicleID)
	if err != nil {
		return err
	}

	var body servers.SetVehicleMaintenanceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewSetVehicleMaintenanceCommand(id, body.Maintenance)
	if err != nil {
		return err
	}
	if err := s.commands.SetVehicleMaintenance.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
