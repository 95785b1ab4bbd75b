package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/metrics"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

type queryFunc[Q, R any] func(ctx context.Context, query Q) (R, error)

func (f queryFunc[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	return f(ctx, query)
}

func newRouter(t *testing.T, cmds httpadapter.CommandHandlers, qs httpadapter.QueryHandlers) (*echo.Echo, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	server := httpadapter.NewServer(cmds, qs, 24*time.Hour)
	e, err := httpadapter.NewRouter(server, m, zap.NewNop(), httpadapter.RouterConfig{LogLevel: log.OFF})
	require.NoError(t, err)
	return e, m
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const orderBody = `{
	"id": "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11",
	"clientId": "6a1f9c1e-3b7e-4f3e-9a53-0f1d2e3c4b5a",
	"sellerId": "2c9e7b4d-1a2b-4c3d-8e9f-0a1b2c3d4e5f",
	"zoneId": "north",
	"paymentTerm": "net30",
	"taxTotal": 100,
	"lines": [{
		"id": "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a",
		"sku": "SKU-1",
		"quantity": 4,
		"unitOfMeasure": "box",
		"listPrice": 1000,
		"finalPrice": 900
	}]
}`

func TestCreateOrder(t *testing.T) {
	var got commands.CreateOrderCommand
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		CreateOrder: commandFunc[commands.CreateOrderCommand](func(_ context.Context, cmd commands.CreateOrderCommand) error {
			got = cmd
			return nil
		}),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders", orderBody)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11")
	assert.Equal(t, "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11", got.OrderID().String())
	assert.Equal(t, "north", got.ZoneID())
	assert.Equal(t, kernel.Money(100), got.TaxTotal())
	assert.Equal(t, kernel.Money(0), got.DiscountTotal())
	require.Len(t, got.Lines(), 1)
	assert.Equal(t, 4, got.Lines()[0].Quantity)
}

func TestCreateOrder_RejectedByDocument(t *testing.T) {
	called := false
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		CreateOrder: commandFunc[commands.CreateOrderCommand](func(context.Context, commands.CreateOrderCommand) error {
			called = true
			return nil
		}),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders", `{"zoneId": "north"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, httpadapter.CodeRequestInvalid, decodeError(t, rec).Code)
	assert.False(t, called)
}

// engineBackedValidation runs the real validation engine against an order
// whose lines carry the given IDs, each requesting five units.
func engineBackedValidation(t *testing.T, lineIDs ...string) commandFunc[commands.ValidateOrderCommand] {
	t.Helper()
	lines := make([]*order.Line, 0, len(lineIDs))
	for i, id := range lineIDs {
		lineID, err := kernel.UUIDFromString(id)
		require.NoError(t, err)
		l, err := order.NewLine(lineID, fmt.Sprintf("SKU-%d", i), 5, "unit", 100, 100)
		require.NoError(t, err)
		lines = append(lines, l)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", "cash", lines, 0, 0,
		time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return func(_ context.Context, cmd commands.ValidateOrderCommand) error {
		_, err := services.NewValidationEngine().Validate(o, cmd.Results(), map[string]bool{})
		return err
	}
}

func TestValidateOrder_ReportsEveryOffendingLine(t *testing.T) {
	first := "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
	second := "1a2b3c4d-5e6f-4071-8293-a4b5c6d7e8f9"
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		ValidateOrder: engineBackedValidation(t, first, second),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders/0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11/validation",
		`{"lines": [
			{"lineId": "`+first+`", "disposition": "partially_approved", "reason": "short"},
			{"lineId": "`+second+`", "disposition": "substituted", "quantity": 2, "reason": "discontinued"}
		]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.NotNil(t, body.Details)
	require.Len(t, *body.Details, 2)

	byLine := map[string]servers.ErrorDetail{}
	for _, d := range *body.Details {
		byLine[*d.LineId] = d
	}
	assert.Equal(t, "approvedQuantity", *byLine[first].Field)
	assert.Equal(t, order.ProblemQuantityRequired, *byLine[first].Problem)
	assert.Equal(t, "substituteSku", *byLine[second].Field)
	assert.Equal(t, order.ProblemSubstituteSKURequired, *byLine[second].Problem)
}

func TestValidateOrder_SubstituteSKUOnlyOnSubstitutedLines(t *testing.T) {
	approved := "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"
	partial := "1a2b3c4d-5e6f-4071-8293-a4b5c6d7e8f9"
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		ValidateOrder: engineBackedValidation(t, approved, partial),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/orders/0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11/validation",
		`{"lines": [
			{"lineId": "`+approved+`", "disposition": "approved", "substituteSku": "SKU-9"},
			{"lineId": "`+partial+`", "disposition": "partially_approved", "quantity": 2, "reason": "short", "substituteSku": "SKU-9"}
		]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	require.NotNil(t, body.Details)
	require.Len(t, *body.Details, 2)
	for _, d := range *body.Details {
		assert.Equal(t, "substituteSku", *d.Field)
		assert.Equal(t, order.ProblemSubstituteSKUForbidden, *d.Problem)
	}
}

func TestErrorMapping(t *testing.T) {
	orderID := "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11"
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "precondition",
			err:    errs.NewPreconditionError(errs.CodeOrderNotPending, "order", orderID).WithState("validated", "pending_validation"),
			status: http.StatusUnprocessableEntity,
			code:   errs.CodeOrderNotPending,
		},
		{
			name:   "not found",
			err:    errs.NewObjectNotFoundError("orderId", orderID),
			status: http.StatusNotFound,
			code:   httpadapter.CodeNotFound,
		},
		{
			name:   "concurrency conflict",
			err:    errs.NewConcurrencyConflictError("order", orderID, 3, "validated"),
			status: http.StatusConflict,
			code:   httpadapter.CodeConcurrencyConflict,
		},
		{
			name:   "dependency unavailable",
			err:    errs.NewDependencyUnavailableError("catalog", errors.New("timeout")),
			status: http.StatusServiceUnavailable,
			code:   httpadapter.CodeDependencyUnavailable,
		},
		{
			name:   "joined validation",
			err:    errors.Join(errs.NewValueIsRequiredError("reason"), errs.NewValueIsInvalidError("action")),
			status: http.StatusBadRequest,
			code:   httpadapter.CodeRequestInvalid,
		},
		{
			name:   "unexpected",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			code:   httpadapter.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newRouter(t, httpadapter.CommandHandlers{
				ChangeOrderStatus: commandFunc[commands.ChangeOrderStatusCommand](func(context.Context, commands.ChangeOrderStatusCommand) error {
					return tt.err
				}),
			}, httpadapter.QueryHandlers{})

			rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID+"/preparation", "")

			require.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "connection reset")
			}
		})
	}
}

func TestErrorMapping_PreconditionDetails(t *testing.T) {
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		ChangeRouteStatus: commandFunc[commands.ChangeRouteStatusCommand](func(context.Context, commands.ChangeRouteStatusCommand) error {
			return errs.NewPreconditionError(errs.CodeDeliveriesNotTerminal, "route", "r-1").
				WithState("in_progress", "completed").
				WithRelated("d-1", "d-2")
		}),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/routes/0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11/complete", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, errs.CodeDeliveriesNotTerminal, body.Code)
	require.NotNil(t, body.Details)
	detail := (*body.Details)[0]
	assert.Equal(t, "in_progress", *detail.Current)
	assert.Equal(t, "completed", *detail.Expected)
	assert.Equal(t, []string{"d-1", "d-2"}, *detail.Related)
}

func TestChangeOrderStatus_Actions(t *testing.T) {
	orderID := "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11"
	tests := []struct {
		path   string
		body   string
		action commands.OrderAction
		reason string
	}{
		{path: "/reject", body: `{"reason": "credit hold"}`, action: commands.OrderActionReject, reason: "credit hold"},
		{path: "/cancel", body: `{"reason": "client request"}`, action: commands.OrderActionCancel, reason: "client request"},
		{path: "/preparation", action: commands.OrderActionPrepare},
		{path: "/invoice", action: commands.OrderActionInvoice},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			var got commands.ChangeOrderStatusCommand
			e, _ := newRouter(t, httpadapter.CommandHandlers{
				ChangeOrderStatus: commandFunc[commands.ChangeOrderStatusCommand](func(_ context.Context, cmd commands.ChangeOrderStatusCommand) error {
					got = cmd
					return nil
				}),
			}, httpadapter.QueryHandlers{})

			rec := do(e, http.MethodPost, "/api/v1/orders/"+orderID+tt.path, tt.body)

			require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
			assert.Equal(t, tt.action, got.Action())
			assert.Equal(t, tt.reason, got.Reason())
			assert.Equal(t, orderID, got.OrderID().String())
		})
	}
}

func TestCreateRoute(t *testing.T) {
	var got commands.CreateDraftRouteCommand
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		CreateDraftRoute: commandFunc[commands.CreateDraftRouteCommand](func(_ context.Context, cmd commands.CreateDraftRouteCommand) error {
			got = cmd
			return nil
		}),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/routes", `{
		"driverId": "6a1f9c1e-3b7e-4f3e-9a53-0f1d2e3c4b5a",
		"vehicleId": "2c9e7b4d-1a2b-4c3d-8e9f-0a1b2c3d4e5f",
		"zoneId": "north",
		"scheduledDate": "2026-03-03"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created servers.Created
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, created.Id, got.RouteID().Bytes())
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), got.ScheduledDate())
}

func TestDeliveryActions(t *testing.T) {
	deliveryID := "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11"
	var got commands.ChangeDeliveryStatusCommand
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		ChangeDeliveryStatus: commandFunc[commands.ChangeDeliveryStatusCommand](func(_ context.Context, cmd commands.ChangeDeliveryStatusCommand) error {
			got = cmd
			return nil
		}),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/deliveries/"+deliveryID+"/complete", "")
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, commands.DeliveryActionComplete, got.Action())

	rec = do(e, http.MethodPost, "/api/v1/deliveries/"+deliveryID+"/fail", `{"reason": "nobody home", "observations": "left a note"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, commands.DeliveryActionFail, got.Action())
	assert.Equal(t, "nobody home", got.Reason())
	assert.Equal(t, "left a note", got.Observations())

	rec = do(e, http.MethodPost, "/api/v1/deliveries/"+deliveryID+"/fail", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/v1/deliveries/"+deliveryID+"/complete-partial",
		`{"lines": [{"lineId": "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a", "quantity": 2}]}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, commands.DeliveryActionCompletePartial, got.Action())
	require.Len(t, got.Lines(), 1)
	assert.Equal(t, 2, got.Lines()[0].Quantity)
}

func TestAttachEvidence(t *testing.T) {
	var got commands.AttachEvidenceCommand
	e, _ := newRouter(t, httpadapter.CommandHandlers{
		AttachEvidence: commandFunc[commands.AttachEvidenceCommand](func(_ context.Context, cmd commands.AttachEvidenceCommand) error {
			got = cmd
			return nil
		}),
	}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodPost, "/api/v1/deliveries/0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11/evidences", `{
		"kind": "photo",
		"url": "https://files.example.com/door.jpg",
		"sizeBytes": 2048,
		"capturedAt": "2026-03-03T10:15:00Z"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "https://files.example.com/door.jpg", got.Evidence().URL)
	assert.Equal(t, int64(2048), got.Evidence().SizeBytes)
}

func TestGetEligibleOrders(t *testing.T) {
	orderID := kernel.NewUUID()
	var zone string
	e, _ := newRouter(t, httpadapter.CommandHandlers{}, httpadapter.QueryHandlers{
		GetEligibleOrders: queryFunc[queries.GetEligibleOrdersQuery, []queries.OrderSummary](
			func(_ context.Context, q queries.GetEligibleOrdersQuery) ([]queries.OrderSummary, error) {
				zone = q.ZoneID()
				return []queries.OrderSummary{{ID: orderID, ClientID: kernel.NewUUID(), ZoneID: "north", Status: "validated", ApprovedUnits: 3, FinalTotal: 2700}}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/eligible?zoneId=north", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "north", zone)
	var body []servers.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, orderID.Bytes(), body[0].Id)
	assert.Equal(t, 3, body[0].ApprovedUnits)
}

func TestGetStaleOrders(t *testing.T) {
	var cutoff time.Time
	e, _ := newRouter(t, httpadapter.CommandHandlers{}, httpadapter.QueryHandlers{
		GetStaleOrders: queryFunc[queries.GetStaleOrdersQuery, []queries.OrderSummary](
			func(_ context.Context, q queries.GetStaleOrdersQuery) ([]queries.OrderSummary, error) {
				cutoff = q.Cutoff()
				return nil, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/orders/stale", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Minute)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/v1/orders/stale?olderThan=2h", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.WithinDuration(t, time.Now().Add(-2*time.Hour), cutoff, time.Minute)

	rec = do(e, http.MethodGet, "/api/v1/orders/stale?olderThan=soon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHistory(t *testing.T) {
	entityID := "0b6f3f38-2f4c-4a57-9d0e-8d7a3c0f5e11"
	status := "validated"
	var got queries.GetHistoryQuery
	e, _ := newRouter(t, httpadapter.CommandHandlers{}, httpadapter.QueryHandlers{
		GetHistory: queryFunc[queries.GetHistoryQuery, queries.HistoryView](
			func(_ context.Context, q queries.GetHistoryQuery) (queries.HistoryView, error) {
				got = q
				return queries.HistoryView{StatusAt: &status}, nil
			}),
	})

	rec := do(e, http.MethodGet, "/api/v1/history/order/"+entityID+"?at=2026-03-03T10:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"entries": [], "statusAt": "validated"}`, rec.Body.String())
	require.NotNil(t, got.At())
	assert.True(t, got.At().Equal(time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)))

	rec = do(e, http.MethodGet, "/api/v1/history/warehouse/"+entityID, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOperationalEndpoints(t *testing.T) {
	e, _ := newRouter(t, httpadapter.CommandHandlers{}, httpadapter.QueryHandlers{})

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/health",status="200"} 1`)

	rec = do(e, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders/eligible")
}
