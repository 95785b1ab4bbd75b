package services

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// RouteCoordinator enforces the rules that span orders, routes, deliveries
// and vehicles. It works on aggregates loaded by the caller inside one unit
// of work; the caller persists every aggregate it passed in.
//
// Every method is safe to re-invoke after success: a repeated transition is
// a no-op.
type RouteCoordinator struct{}

func NewRouteCoordinator() RouteCoordinator {
	return RouteCoordinator{}
}

// RequireAvailable checks that a draft route may name v.
func (RouteCoordinator) RequireAvailable(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if !v.IsAvailable() {
		return errs.NewPreconditionError(errs.CodeVehicleUnavailable, "vehicle", v.ID().String()).
			WithState(v.Status().String(), vehicle.Available.String())
	}
	return nil
}

// ChangeVehicle swaps the vehicle of a draft route.
func (c RouteCoordinator) ChangeVehicle(r *route.Route, v *vehicle.Vehicle, at time.Time) error {
	if r.VehicleID().IsEqual(v.ID()) {
		return nil
	}
	if err := c.RequireAvailable(v); err != nil {
		return err
	}
	return r.ChangeVehicle(v.ID(), at)
}

// AttachOrder adds o as a stop of r. activeRoute is the route currently
// holding o on an active stop, nil when there is none.
func (RouteCoordinator) AttachOrder(r *route.Route, o *order.Order, activeRoute *route.Route, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if activeRoute != nil && !activeRoute.IsEqual(r) {
		return errs.NewPreconditionError(errs.CodeOrderAlreadyRouted, "order", o.ID().String()).
			WithField("routeId").
			WithRelated(activeRoute.ID().String())
	}
	if r.HoldsOrder(o.ID()) {
		return nil
	}
	if !o.Status().IsDispatchable() {
		return errs.NewPreconditionError(errs.CodeOrderNotValidated, "order", o.ID().String()).
			WithState(o.Status().String(), order.Validated.String())
	}
	return r.AddStop(o.ID(), at)
}

// PublishRoute locks r and reserves v with the approved units of orders.
func (RouteCoordinator) PublishRoute(r *route.Route, v *vehicle.Vehicle, orders []*order.Order, at time.Time) error {
	if r.Status() == route.Published {
		return nil
	}
	if !r.VehicleID().IsEqual(v.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("route %s uses vehicle %s", r.ID(), r.VehicleID()))
	}

	loads := make([]vehicle.Load, 0, len(orders))
	for _, o := range orders {
		load, err := vehicle.NewLoad(o.ID(), o.ApprovedUnits())
		if err != nil {
			return err
		}
		loads = append(loads, load)
	}

	if err := r.Publish(at); err != nil {
		return err
	}
	return v.Reserve(r.ID(), loads, at)
}

// StartRoute re-checks every stop's order and creates one pending delivery
// per stop, in stop order. It returns nil deliveries when r was already
// started.
func (RouteCoordinator) StartRoute(r *route.Route, orders map[kernel.UUID]*order.Order, at time.Time) ([]*delivery.Delivery, error) {
	if r.Status() == route.InProgress {
		return nil, nil
	}
	if r.Status() != route.Published {
		return nil, r.Start(at)
	}

	stops := r.ActiveStops()
	for _, s := range stops {
		o, ok := orders[s.OrderID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("orderId", s.OrderID())
		}
		if !o.Status().IsDispatchable() {
			return nil, errs.NewPreconditionError(errs.CodeOrderNotValidated, "order", o.ID().String()).
				WithState(o.Status().String(), order.Validated.String()).
				WithRelated(r.ID().String())
		}
	}

	if err := r.Start(at); err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(stops))
	for _, s := range stops {
		d, err := delivery.NewDelivery(kernel.NewUUID(), r.ID(), s.OrderID(), r.DriverID(), s.Position(), at)
		if err != nil {
			return nil, err
		}
		if err := orders[s.OrderID()].Dispatch(r.ID(), at); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

// CompleteRoute closes r once every delivery is terminal and frees v.
// Otherwise it fails listing the deliveries still open.
func (RouteCoordinator) CompleteRoute(r *route.Route, v *vehicle.Vehicle, deliveries []*delivery.Delivery, at time.Time) error {
	if r.Status() == route.Completed {
		return nil
	}

	var open []string
	for _, d := range deliveries {
		if !d.Status().IsTerminal() {
			open = append(open, d.ID().String())
		}
	}
	if len(open) > 0 {
		return errs.NewPreconditionError(errs.CodeDeliveriesNotTerminal, "route", r.ID().String()).
			WithField("deliveries").
			WithRelated(open...)
	}

	if err := r.Complete(at); err != nil {
		return err
	}
	return v.Release(r.ID(), at)
}

// CancelRoute abandons a draft or published route, frees v and returns the
// orders of its stops to the dispatch pool.
func (RouteCoordinator) CancelRoute(r *route.Route, v *vehicle.Vehicle, orders []*order.Order, reason string, at time.Time) error {
	if r.Status() == route.Cancelled {
		return nil
	}
	if err := r.Cancel(reason, at); err != nil {
		return err
	}
	for _, o := range orders {
		if !o.Status().IsDispatchable() {
			continue
		}
		if err := o.ReturnToPool("route "+r.ID().String()+" cancelled", at); err != nil {
			return err
		}
	}
	if v == nil {
		return nil
	}
	return v.Release(r.ID(), at)
}

// CheckDeliveredLines verifies a partial delivery against the approved
// quantities of o.
func (RouteCoordinator) CheckDeliveredLines(o *order.Order, lines []delivery.DeliveredLine) error {
	for _, l := range lines {
		if _, ok := o.Line(l.LineID); !ok {
			return errs.NewPreconditionError(errs.CodeDeliveredLineInvalid, "order", o.ID().String()).
				WithField("lineId").
				WithRelated(l.LineID.String())
		}
		if approved := o.ApprovedQuantity(l.LineID); l.Quantity > approved {
			return errs.NewPreconditionError(errs.CodeDeliveredLineInvalid, "order", o.ID().String()).
				WithField("quantity").
				WithState(fmt.Sprintf("%d", l.Quantity), fmt.Sprintf("at most %d", approved)).
				WithRelated(l.LineID.String())
		}
	}
	return nil
}

// ApplyDeliveryOutcome propagates a delivery that just reached a terminal
// status to its order, its route stop and the vehicle:
//   - delivered: the order is delivered and its units leave the vehicle
//   - failed: the order returns to the pool and the stop is released; the
//     goods stay aboard
//   - cancelled: as failed, and the vehicle capacity is returned
func (RouteCoordinator) ApplyDeliveryOutcome(
	d *delivery.Delivery,
	r *route.Route,
	o *order.Order,
	v *vehicle.Vehicle,
	at time.Time,
) error {
	switch d.Status() {
	case delivery.DeliveredComplete, delivery.DeliveredPartial:
		if err := o.MarkDelivered(at); err != nil {
			return err
		}
		return unload(v, o.ID(), at)

	case delivery.Failed, delivery.Cancelled:
		note := "delivery " + d.ID().String() + " " + d.Status().String()
		if err := o.ReturnToPool(note, at); err != nil {
			return err
		}
		if err := r.ReleaseStop(o.ID(), note, at); err != nil {
			return err
		}
		if d.Status() == delivery.Cancelled {
			return unload(v, o.ID(), at)
		}
		return nil
	}
	return nil
}

func unload(v *vehicle.Vehicle, orderID kernel.UUID, at time.Time) error {
	if v == nil || v.Status() != vehicle.Assigned {
		return nil
	}
	return v.Unload(orderID, at)
}
