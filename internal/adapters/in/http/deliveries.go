package http

import (
	"fmt"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetDelivery handles GET /api/v1/deliveries/{deliveryId}.
func (s *Server) GetDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	id, err := toKernelID("deliveryId", deliveryID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}

	view, err := s.queries.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	response, err := toDelivery(view)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, response)
}

// DepartDelivery handles POST /api/v1/deliveries/{deliveryId}/depart.
func (s *Server) DepartDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	return s.changeDeliveryStatus(ctx, deliveryID, commands.DeliveryActionDepart, servers.DeliveryOutcome{})
}

// CompleteDelivery handles POST /api/v1/deliveries/{deliveryId}/complete.
// The body is optional.
func (s *Server) CompleteDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	var body servers.CompleteDeliveryJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return err
		}
	}
	return s.changeDeliveryStatus(ctx, deliveryID, commands.DeliveryActionComplete, body)
}

// FailDelivery handles POST /api/v1/deliveries/{deliveryId}/fail.
func (s *Server) FailDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	var body servers.FailDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.changeDeliveryStatus(ctx, deliveryID, commands.DeliveryActionFail, body)
}

// CancelDelivery handles POST /api/v1/deliveries/{deliveryId}/cancel.
func (s *Server) CancelDelivery(ctx echo.Context, deliveryID servers.DeliveryId) error {
	var body servers.CancelDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.changeDeliveryStatus(ctx, deliveryID, commands.DeliveryActionCancel, body)
}

func (s *Server) changeDeliveryStatus(
	ctx echo.Context,
	deliveryID servers.DeliveryId,
	action commands.DeliveryAction,
	outcome servers.DeliveryOutcome,
) error {
	id, err := toKernelID("deliveryId", deliveryID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDeliveryStatusCommand(id, action, value(outcome.Reason), value(outcome.Observations))
	if err != nil {
		return err
	}
	return s.handleDeliveryStatus(ctx, cmd)
}

// CompleteDeliveryPartially handles POST /api/v1/deliveries/{deliveryId}/complete-partial.
func (s *Server) CompleteDeliveryPartially(ctx echo.Context, deliveryID servers.DeliveryId) error {
	id, err := toKernelID("deliveryId", deliveryID)
	if err != nil {
		return err
	}

	var body servers.CompleteDeliveryPartiallyJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	lines := make([]delivery.DeliveredLine, 0, len(body.Lines))
	for i, l := range body.Lines {
		lineID, err := toKernelID(fmt.Sprintf("lines[%d].lineId", i), l.LineId)
		if err != nil {
			return err
		}
		lines = append(lines, delivery.DeliveredLine{LineID: lineID, Quantity: l.Quantity})
	}

	cmd, err := commands.NewCompletePartialDeliveryCommand(id, lines, value(body.Observations))
	if err != nil {
		return err
	}
	return s.handleDeliveryStatus(ctx, cmd)
}

func (s *Server) handleDeliveryStatus(ctx echo.Context, cmd commands.ChangeDeliveryStatusCommand) error {
	if err := s.commands.ChangeDeliveryStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AttachEvidence handles POST /api/v1/deliveries/{deliveryId}/evidences.
func (s *Server) AttachEvidence(ctx echo.Context, deliveryID servers.DeliveryId) error {
	id, err := toKernelID("deliveryId", deliveryID)
	if err != nil {
		return err
	}

	var body servers.AttachEvidenceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	evidenceID := kernel.NewUUID()
	evidence, err := delivery.NewEvidence(
		evidenceID,
		delivery.EvidenceKind(body.Kind),
		body.Url,
		value(body.Hash),
		value(body.SizeBytes),
		body.CapturedAt.UTC(),
	)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAttachEvidenceCommand(id, evidence)
	if err != nil {
		return err
	}
	if err := s.commands.AttachEvidence.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: evidenceID.Bytes()})
}

// ReportIncident handles POST /api/v1/deliveries/{deliveryId}/incidents.
func (s *Server) ReportIncident(ctx echo.Context, deliveryID servers.DeliveryId) error {
	id, err := toKernelID("deliveryId", deliveryID)
	if err != nil {
		return err
	}

	var body servers.ReportIncidentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	incidentID := kernel.NewUUID()
	incident, err := delivery.NewIncident(incidentID, body.Kind, body.Description, s.now())
	if err != nil {
		return err
	}

	cmd, err := commands.NewReportIncidentCommand(id, incident)
	if err != nil {
		return err
	}
	if err := s.commands.ReportIncident.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: incidentID.Bytes()})
}

// ResolveIncident handles POST /api/v1/incidents/{incidentId}/resolve.
func (s *Server) ResolveIncident(ctx echo.Context, incidentID openapi_types.UUID) error {
	id, err := toKernelID("incidentId", incidentID)
	if err != nil {
		return err
	}

	var body servers.ResolveIncidentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewResolveIncidentCommand(id, body.Resolution)
	if err != nil {
		return err
	}
	if err := s.commands.ResolveIncident.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
