package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/pgtest"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory

	validatedAt time.Time
	north       *order.Order
	south       *order.Order
	pending     *order.Order
	routed      *order.Order
	draft       *route.Route
	delivery    *delivery.Delivery
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres.NewGormUnitOfWorkFactory(db, nil)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) newOrder(zone string, quantities ...int) *order.Order {
	lines := make([]*order.Line, 0, len(quantities))
	for i, q := range quantities {
		l, err := order.NewLine(kernel.NewUUID(), "SKU-"+string(rune('A'+i)), q, "box", 1000, 900)
		suite.Require().NoError(err)
		lines = append(lines, l)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), zone, "net30", lines, 0, 0,
		suite.validatedAt.Add(-time.Hour))
	suite.Require().NoError(err)
	return o
}

func (suite *QueriesIntegrationTestSuite) approve(o *order.Order) {
	resolutions := make([]order.Resolution, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		resolutions = append(resolutions, order.Resolution{
			LineID:           l.ID(),
			Kind:             order.KindApproved,
			ApprovedQuantity: l.RequestedQuantity(),
		})
	}
	suite.Require().NoError(o.ApplyValidation(resolutions, suite.validatedAt))
}

// SetupTest commits a small pool: two eligible orders, one pending and one
// held by a draft route, plus a started delivery for the draft's order.
func (suite *QueriesIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.validatedAt = time.Now().UTC().Add(-3 * time.Hour).Truncate(time.Millisecond)

	suite.north = suite.newOrder("north", 3)
	suite.south = suite.newOrder("south", 2, 5)
	suite.pending = suite.newOrder("north", 1)
	suite.routed = suite.newOrder("north", 4)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, o := range []*order.Order{suite.north, suite.south, suite.pending, suite.routed} {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for _, o := range []*order.Order{suite.north, suite.south, suite.routed} {
		suite.approve(o)
		suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	}

	draft, err := route.NewDraft(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "north", suite.validatedAt, suite.validatedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(draft.AddStop(suite.routed.ID(), suite.validatedAt))
	suite.Require().NoError(uow.RouteRepository().Add(ctx, draft))
	suite.draft = draft

	d, err := delivery.NewDelivery(kernel.NewUUID(), draft.ID(), suite.routed.ID(), draft.DriverID(), 1, suite.validatedAt)
	suite.Require().NoError(err)
	evidence, err := delivery.NewEvidence(kernel.NewUUID(), delivery.EvidencePhoto, "https://files.example.com/1.jpg", "sha256:01", 1024, suite.validatedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(d.AttachEvidence(evidence, suite.validatedAt))
	incident, err := delivery.NewIncident(kernel.NewUUID(), "access", "gate locked", suite.validatedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(d.ReportIncident(incident, suite.validatedAt))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.delivery = d

	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) TestGetEligibleOrders() {
	ctx := context.Background()
	handler := queries.NewGetEligibleOrdersQueryHandler(suite.db)

	all, err := handler.Handle(ctx, queries.NewGetEligibleOrdersQuery(""))
	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{suite.north.ID(), suite.south.ID()}, ids(all))

	north, err := handler.Handle(ctx, queries.NewGetEligibleOrdersQuery("north"))
	suite.Require().NoError(err)
	suite.Require().Len(north, 1)
	suite.Equal(suite.north.ID(), north[0].ID)
	suite.Equal(3, north[0].ApprovedUnits)
	suite.Equal(order.Validated.String(), north[0].Status)
	suite.Equal(kernel.Money(2700), north[0].FinalTotal)
}

func (suite *QueriesIntegrationTestSuite) TestGetEligibleOrders_NotConstructed() {
	_, err := queries.NewGetEligibleOrdersQueryHandler(suite.db).Handle(context.Background(), queries.GetEligibleOrdersQuery{})
	suite.ErrorIs(err, queries.ErrGetEligibleOrdersQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestGetStaleOrders() {
	ctx := context.Background()
	handler := queries.NewGetStaleOrdersQueryHandler(suite.db)

	q, err := queries.NewGetStaleOrdersQuery(time.Hour, time.Now().UTC())
	suite.Require().NoError(err)
	stale, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{suite.north.ID(), suite.south.ID(), suite.routed.ID()}, ids(stale))

	q, err = queries.NewGetStaleOrdersQuery(4*time.Hour, time.Now().UTC())
	suite.Require().NoError(err)
	stale, err = handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Empty(stale)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder() {
	ctx := context.Background()
	handler := queries.NewGetOrderQueryHandler(suite.db)

	q, err := queries.NewGetOrderQuery(suite.south.ID())
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal("south", view.ZoneID)
	suite.Equal(7, view.ApprovedUnits)
	suite.Equal(1, view.Version)
	suite.Require().Len(view.Lines, 2)
	suite.Equal("SKU-A", view.Lines[0].SKU)
	suite.Require().NotNil(view.Lines[1].Resolution)
	suite.Equal(string(order.KindApproved), view.Lines[1].Resolution.Disposition)
	suite.Equal(5, view.Lines[1].Resolution.ApprovedQuantity)

	q, err = queries.NewGetOrderQuery(suite.pending.ID())
	suite.Require().NoError(err)
	view, err = handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Nil(view.Lines[0].Resolution)
	suite.Nil(view.ValidatedAt)

	q, err = queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, q)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetRoute() {
	ctx := context.Background()
	q, err := queries.NewGetRouteQuery(suite.draft.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetRouteQueryHandler(suite.db).Handle(ctx, q)

	suite.Require().NoError(err)
	suite.Equal(route.Draft.String(), view.Status)
	suite.Equal(suite.draft.VehicleID(), view.VehicleID)
	suite.Equal(suite.validatedAt.Format(time.DateOnly), view.ScheduledDate.Format(time.DateOnly))
	suite.Require().Len(view.Stops, 1)
	suite.Equal(suite.routed.ID(), view.Stops[0].OrderID)
	suite.Equal(1, view.Stops[0].Position)
	suite.False(view.Stops[0].Released)
}

func (suite *QueriesIntegrationTestSuite) TestGetDeliveries() {
	ctx := context.Background()

	q, err := queries.NewGetDeliveryQuery(suite.delivery.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetDeliveryQueryHandler(suite.db).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending.String(), view.Status)
	suite.Require().Len(view.Evidences, 1)
	suite.Equal("https://files.example.com/1.jpg", view.Evidences[0].URL)
	suite.Require().Len(view.Incidents, 1)
	suite.Equal("gate locked", view.Incidents[0].Description)
	suite.False(view.Incidents[0].Resolved)

	rq, err := queries.NewGetRouteDeliveriesQuery(suite.draft.ID())
	suite.Require().NoError(err)
	list, err := queries.NewGetRouteDeliveriesQueryHandler(suite.db).Handle(ctx, rq)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(suite.delivery.ID(), list[0].ID)

	rq, err = queries.NewGetRouteDeliveriesQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetRouteDeliveriesQueryHandler(suite.db).Handle(ctx, rq)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	q, err = queries.NewGetDeliveryQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetDeliveryQueryHandler(suite.db).Handle(ctx, q)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetHistory() {
	ctx := context.Background()
	handler := queries.NewGetHistoryQueryHandler(suite.db)

	before := suite.validatedAt.Add(-time.Minute)
	q, err := queries.NewGetHistoryQuery("order", suite.north.ID(), &before)
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Require().Len(view.Entries, 2)
	suite.Equal("created", view.Entries[0].Event)
	suite.Equal("validated", view.Entries[1].Event)
	suite.Require().NotNil(view.StatusAt)
	suite.Equal(order.PendingValidation.String(), *view.StatusAt)

	later := suite.validatedAt.Add(time.Minute)
	q, err = queries.NewGetHistoryQuery("order", suite.north.ID(), &later)
	suite.Require().NoError(err)
	view, err = handler.Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal(order.Validated.String(), *view.StatusAt)

	_, err = queries.NewGetHistoryQuery("warehouse", suite.north.ID(), nil)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	q, err = queries.NewGetHistoryQuery("route", kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, q)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func ids(orders []queries.OrderSummary) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
