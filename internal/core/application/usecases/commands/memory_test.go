package commands_test

import (
	"context"
	"errors"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// memoryStore keeps aggregates by pointer for workflow tests. Loads return
// the stored instance, so assertions read the state the handler left.
type memoryStore struct {
	orders     map[kernel.UUID]*order.Order
	routes     map[kernel.UUID]*route.Route
	deliveries map[kernel.UUID]*delivery.Delivery
	vehicles   map[kernel.UUID]*vehicle.Vehicle

	committed []history.Entry
	writes    int
	commits   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:     map[kernel.UUID]*order.Order{},
		routes:     map[kernel.UUID]*route.Route{},
		deliveries: map[kernel.UUID]*delivery.Delivery{},
		vehicles:   map[kernel.UUID]*vehicle.Vehicle{},
	}
}

// seed stores aggregates built by the test and drops their creation entries.
func (s *memoryStore) seed(aggregates ...any) {
	for _, a := range aggregates {
		switch agg := a.(type) {
		case *order.Order:
			agg.PullTransitions()
			s.orders[agg.ID()] = agg
		case *route.Route:
			agg.PullTransitions()
			s.routes[agg.ID()] = agg
		case *delivery.Delivery:
			agg.PullTransitions()
			s.deliveries[agg.ID()] = agg
		case *vehicle.Vehicle:
			agg.PullTransitions()
			s.vehicles[agg.ID()] = agg
		}
	}
}

func (s *memoryStore) events() []string {
	out := make([]string, 0, len(s.committed))
	for _, e := range s.committed {
		out = append(out, e.EventType())
	}
	return out
}

func (s *memoryStore) Create() commands.UoW {
	return &memoryUoW{store: s}
}

type memoryUoW struct {
	store   *memoryStore
	pending []history.Entry
	open    bool
}

type versionedRecorder interface {
	Version() int
	IncrementVersion()
	PullTransitions() []history.Entry
}

var errTxNotOpen = errors.New("transaction is not open")

func (u *memoryUoW) Begin(context.Context) error {
	u.open = true
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if !u.open {
		return errTxNotOpen
	}
	u.store.committed = append(u.store.committed, u.pending...)
	u.store.commits++
	u.pending = nil
	u.open = false
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.pending = nil
	u.open = false
	return nil
}

func (u *memoryUoW) track(agg versionedRecorder, bump bool) {
	if bump {
		agg.IncrementVersion()
	}
	u.store.writes++
	u.pending = append(u.pending, agg.PullTransitions()...)
}

func (u *memoryUoW) OrderRepository() ports.OrderRepository {
	return memoryOrders{u}
}

func (u *memoryUoW) RouteRepository() ports.RouteRepository {
	return memoryRoutes{u}
}

func (u *memoryUoW) DeliveryRepository() ports.DeliveryRepository {
	return memoryDeliveries{u}
}

func (u *memoryUoW) VehicleRepository() ports.VehicleRepository {
	return memoryVehicles{u}
}

type memoryOrders struct{ uow *memoryUoW }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.uow.store.orders[o.ID()] = o
	r.uow.track(o, false)
	return nil
}

func (r memoryOrders) Update(_ context.Context, o *order.Order) error {
	r.uow.track(o, true)
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.uow.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return o, nil
}

func (r memoryOrders) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

type memoryRoutes struct{ uow *memoryUoW }

func (r memoryRoutes) Add(_ context.Context, rt *route.Route) error {
	r.uow.store.routes[rt.ID()] = rt
	r.uow.track(rt, false)
	return nil
}

func (r memoryRoutes) Update(_ context.Context, rt *route.Route) error {
	r.uow.track(rt, true)
	return nil
}

func (r memoryRoutes) Get(_ context.Context, id kernel.UUID) (*route.Route, error) {
	rt, ok := r.uow.store.routes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("routeId", id)
	}
	return rt, nil
}

func (r memoryRoutes) FindActiveByOrder(_ context.Context, orderID kernel.UUID) (*route.Route, error) {
	for _, rt := range r.uow.store.routes {
		if rt.HoldsOrder(orderID) {
			return rt, nil
		}
	}
	return nil, nil
}

type memoryDeliveries struct{ uow *memoryUoW }

func (r memoryDeliveries) Add(_ context.Context, d *delivery.Delivery) error {
	r.uow.store.deliveries[d.ID()] = d
	r.uow.track(d, false)
	return nil
}

func (r memoryDeliveries) Update(_ context.Context, d *delivery.Delivery) error {
	r.uow.track(d, true)
	return nil
}

func (r memoryDeliveries) Get(_ context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	d, ok := r.uow.store.deliveries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryId", id)
	}
	return d, nil
}

func (r memoryDeliveries) GetByIncident(_ context.Context, incidentID kernel.UUID) (*delivery.Delivery, error) {
	for _, d := range r.uow.store.deliveries {
		if _, ok := d.Incident(incidentID); ok {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("incidentId", incidentID)
}

func (r memoryDeliveries) GetByRoute(_ context.Context, routeID kernel.UUID) ([]*delivery.Delivery, error) {
	var out []*delivery.Delivery
	for _, d := range r.uow.store.deliveries {
		if d.RouteID().IsEqual(routeID) {
			out = append(out, d)
		}
	}
	return out, nil
}

type memoryVehicles struct{ uow *memoryUoW }

func (r memoryVehicles) Add(_ context.Context, v *vehicle.Vehicle) error {
	r.uow.store.vehicles[v.ID()] = v
	r.uow.track(v, false)
	return nil
}

func (r memoryVehicles) Update(_ context.Context, v *vehicle.Vehicle) error {
	r.uow.track(v, true)
	return nil
}

func (r memoryVehicles) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.uow.store.vehicles[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicleId", id)
	}
	return v, nil
}
