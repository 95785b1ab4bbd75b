package http

import (
	"fmt"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - ingests an order snapshot.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	orderID, err := toKernelID("id", body.Id)
	if err != nil {
		return err
	}
	clientID, err := toKernelID("clientId", body.ClientId)
	if err != nil {
		return err
	}
	sellerID, err := toKernelID("sellerId", body.SellerId)
	if err != nil {
		return err
	}

	lines := make([]commands.OrderLineInput, 0, len(body.Lines))
	for i, l := range body.Lines {
		lineID, err := toKernelID(fmt.Sprintf("lines[%d].id", i), l.Id)
		if err != nil {
			return err
		}
		lines = append(lines, commands.OrderLineInput{
			LineID:        lineID,
			SKU:           l.Sku,
			Quantity:      l.Quantity,
			UnitOfMeasure: l.UnitOfMeasure,
			ListPrice:     kernel.Money(l.ListPrice),
			FinalPrice:    kernel.Money(l.FinalPrice),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		clientID,
		sellerID,
		body.ZoneId,
		body.PaymentTerm,
		lines,
		kernel.Money(value(body.DiscountTotal)),
		kernel.Money(value(body.TaxTotal)),
	)
	if err != nil {
		return err
	}

	if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: body.Id})
}

// GetEligibleOrders handles GET /api/v1/orders/eligible - lists the dispatch pool.
func (s *Server) GetEligibleOrders(ctx echo.Context, params servers.GetEligibleOrdersParams) error {
	query := queries.NewGetEligibleOrdersQuery(value(params.ZoneId))

	orders, err := s.queries.GetEligibleOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetStaleOrders handles GET /api/v1/orders/stale - validated orders waiting
// longer than olderThan, or the configured threshold.
func (s *Server) GetStaleOrders(ctx echo.Context, params servers.GetStaleOrdersParams) error {
	olderThan := s.staleAfter
	if params.OlderThan != nil {
		d, err := time.ParseDuration(*params.OlderThan)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("olderThan", err)
		}
		olderThan = d
	}

	query, err := queries.NewGetStaleOrdersQuery(olderThan, s.now())
	if err != nil {
		return err
	}

	orders, err := s.queries.GetStaleOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// ValidateOrder handles POST /api/v1/orders/{orderId}/validation.
func (s *Server) ValidateOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return err
	}

	var body servers.ValidateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	results := make([]order.ValidationResult, 0, len(body.Lines))
	for i, l := range body.Lines {
		result, err := toValidationResult(i, l)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	cmd, err := commands.NewValidateOrderCommand(id, results)
	if err != nil {
		return err
	}
	if err := s.commands.ValidateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toValidationResult keeps the line as submitted. Missing quantities and
// misplaced substitute SKUs are reported by the validation engine together
// with every other line problem.
func toValidationResult(i int, l servers.LineDisposition) (order.ValidationResult, error) {
	lineID, err := toKernelID(fmt.Sprintf("lines[%d].lineId", i), l.LineId)
	if err != nil {
		return order.ValidationResult{}, err
	}

	var disposition order.Disposition
	switch l.Disposition {
	case servers.Approved:
		disposition = order.Approved{SubstituteSKU: value(l.SubstituteSku)}
	case servers.PartiallyApproved:
		disposition = order.PartiallyApproved{
			Quantity:      l.Quantity,
			Reason:        value(l.Reason),
			SubstituteSKU: value(l.SubstituteSku),
		}
	case servers.Substituted:
		disposition = order.Substituted{SKU: value(l.SubstituteSku), Quantity: l.Quantity, Reason: value(l.Reason)}
	case servers.Rejected:
		disposition = order.LineRejected{Reason: value(l.Reason)}
	default:
		_, err := order.ParseDispositionKind(string(l.Disposition))
		return order.ValidationResult{}, err
	}

	return order.ValidationResult{LineID: lineID, Disposition: disposition}, nil
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.RejectOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.changeOrderStatus(ctx, orderID, commands.OrderActionReject, body.Reason)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.changeOrderStatus(ctx, orderID, commands.OrderActionCancel, body.Reason)
}

// MarkOrderInPreparation handles POST /api/v1/orders/{orderId}/preparation.
func (s *Server) MarkOrderInPreparation(ctx echo.Context, orderID servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderID, commands.OrderActionPrepare, "")
}

// MarkOrderInvoiced handles POST /api/v1/orders/{orderId}/invoice.
func (s *Server) MarkOrderInvoiced(ctx echo.Context, orderID servers.OrderId) error {
	return s.changeOrderStatus(ctx, orderID, commands.OrderActionInvoice, "")
}

func (s *Server) changeOrderStatus(ctx echo.Context, orderID servers.OrderId, action commands.OrderAction, reason string) error {
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, action, reason)
	if err != nil {
		return err
	}
	if err := s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
