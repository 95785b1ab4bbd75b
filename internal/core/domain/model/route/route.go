package route

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewDraft constructor")

// Route is the transportation manifest of one driver and vehicle for one
// day. It owns its stops.
//
// Route follows these invariants:
//   - stop positions are dense 1..N and each order appears at most once
//   - stops and vehicle change only in Draft
//   - a cancelled route holds no active stop
type Route struct {
	kernel.Versioned
	history.Recorder

	id            kernel.UUID
	driverID      kernel.UUID
	vehicleID     kernel.UUID
	zoneID        string
	scheduledDate time.Time
	status        Status
	stops         []*Stop
	cancelReason  string
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewDraft creates a route in Draft. Vehicle availability is checked by the
// caller; the vehicle is reserved only at publish.
func NewDraft(
	id kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	zoneID string,
	scheduledDate time.Time,
	at time.Time,
) (*Route, error) {
	r := &Route{
		status:    Draft,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDriverID(driverID),
		r.setVehicleID(vehicleID),
		r.setZoneID(zoneID),
		r.setScheduledDate(scheduledDate),
	); err != nil {
		return nil, err
	}

	r.record("created", Unknown, Draft, "", at)
	return r, nil
}

func RestoreRoute(
	id kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	zoneID string,
	scheduledDate time.Time,
	status Status,
	stops []*Stop,
	cancelReason string,
	createdAt time.Time,
	version int,
) (*Route, error) {
	r := &Route{
		Versioned:    kernel.RestoreVersioned(version),
		cancelReason: cancelReason,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDriverID(driverID),
		r.setVehicleID(vehicleID),
		r.setZoneID(zoneID),
		r.setScheduledDate(scheduledDate),
		status.Validate(),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

func (r *Route) DriverID() kernel.UUID {
	return r.driverID
}

func (r *Route) VehicleID() kernel.UUID {
	return r.vehicleID
}

func (r *Route) ZoneID() string {
	return r.zoneID
}

func (r *Route) ScheduledDate() time.Time {
	return r.scheduledDate
}

func (r *Route) Status() Status {
	return r.status
}

func (r *Route) CancelReason() string {
	return r.cancelReason
}

func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

// Stops returns every stop, released ones included, in position order.
func (r *Route) Stops() []*Stop {
	out := make([]*Stop, len(r.stops))
	copy(out, r.stops)
	return out
}

// ActiveStops returns the stops that still hold their order.
func (r *Route) ActiveStops() []*Stop {
	if r.status == Cancelled {
		return nil
	}
	out := make([]*Stop, 0, len(r.stops))
	for _, s := range r.stops {
		if !s.released {
			out = append(out, s)
		}
	}
	return out
}

// OrderIDs lists the orders of the active stops in position order.
func (r *Route) OrderIDs() []kernel.UUID {
	active := r.ActiveStops()
	ids := make([]kernel.UUID, 0, len(active))
	for _, s := range active {
		ids = append(ids, s.orderID)
	}
	return ids
}

// HoldsOrder reports whether orderID is on an active stop.
func (r *Route) HoldsOrder(orderID kernel.UUID) bool {
	for _, s := range r.ActiveStops() {
		if s.orderID.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AddStop appends orderID as the last stop. Adding an order that is already
// a stop of this route is a no-op.
func (r *Route) AddStop(orderID kernel.UUID, at time.Time) error {
	if err := r.requireDraft("stops"); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if r.HoldsOrder(orderID) {
		return nil
	}

	stop, err := NewStop(kernel.NewUUID(), orderID, len(r.stops)+1)
	if err != nil {
		return err
	}
	r.stops = append(r.stops, stop)
	r.record("stop_added", r.status, r.status, "order "+orderID.String(), at)
	return nil
}

// RemoveStop drops orderID and renumbers the remaining stops. Removing an
// order that is not on the route is a no-op.
func (r *Route) RemoveStop(orderID kernel.UUID, at time.Time) error {
	if err := r.requireDraft("stops"); err != nil {
		return err
	}

	kept := make([]*Stop, 0, len(r.stops))
	for _, s := range r.stops {
		if !s.orderID.IsEqual(orderID) {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(r.stops) {
		return nil
	}

	for i, s := range kept {
		s.position = i + 1
	}
	r.stops = kept
	r.record("stop_removed", r.status, r.status, "order "+orderID.String(), at)
	return nil
}

// ReorderStops sets the stop sequence to sequence, which must be a
// permutation of the current orders. On error the route is left unchanged.
func (r *Route) ReorderStops(sequence []kernel.UUID, at time.Time) error {
	if err := r.requireDraft("stops"); err != nil {
		return err
	}

	byOrder := make(map[kernel.UUID]*Stop, len(r.stops))
	for _, s := range r.stops {
		byOrder[s.orderID] = s
	}

	if len(sequence) != len(r.stops) {
		return r.invalidPermutation(fmt.Errorf("%d orders given for %d stops", len(sequence), len(r.stops)))
	}
	seen := make(map[kernel.UUID]struct{}, len(sequence))
	reordered := make([]*Stop, 0, len(sequence))
	for _, orderID := range sequence {
		if _, dup := seen[orderID]; dup {
			return r.invalidPermutation(fmt.Errorf("order %s appears twice", orderID))
		}
		seen[orderID] = struct{}{}
		stop, ok := byOrder[orderID]
		if !ok {
			return r.invalidPermutation(fmt.Errorf("order %s is not a stop of this route", orderID))
		}
		reordered = append(reordered, stop)
	}

	for i, s := range reordered {
		s.position = i + 1
	}
	r.stops = reordered
	r.record("stops_reordered", r.status, r.status, "", at)
	return nil
}

func (r *Route) ChangeVehicle(vehicleID kernel.UUID, at time.Time) error {
	if err := r.requireDraft("vehicleId"); err != nil {
		return err
	}
	if r.vehicleID.IsEqual(vehicleID) {
		return nil
	}
	if err := r.setVehicleID(vehicleID); err != nil {
		return err
	}
	r.record("vehicle_changed", r.status, r.status, "vehicle "+vehicleID.String(), at)
	return nil
}

// Publish locks the composition. Publishing a published route is a no-op.
func (r *Route) Publish(at time.Time) error {
	if r.status == Published {
		return nil
	}
	if r.status == Draft && len(r.stops) == 0 {
		return errs.NewPreconditionError(errs.CodeRouteHasNoStops, "route", r.id.String()).WithField("stops")
	}
	return r.transition(r.status.Publish, "published", "", at)
}

func (r *Route) Start(at time.Time) error {
	if r.status == InProgress {
		return nil
	}
	return r.transition(r.status.Start, "started", "", at)
}

// Complete closes an in-progress route. The caller checks that every
// delivery is terminal.
func (r *Route) Complete(at time.Time) error {
	if r.status == Completed {
		return nil
	}
	return r.transition(r.status.Complete, "completed", "", at)
}

// Cancel abandons a draft or published route and releases all its stops.
func (r *Route) Cancel(reason string, at time.Time) error {
	if r.status == Cancelled {
		return nil
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if err := r.transition(r.status.Cancel, "cancelled", reason, at); err != nil {
		return err
	}
	r.cancelReason = reason
	for _, s := range r.stops {
		s.released = true
	}
	return nil
}

// ReleaseStop detaches orderID from the route after its delivery failed or
// was cancelled.
func (r *Route) ReleaseStop(orderID kernel.UUID, note string, at time.Time) error {
	for _, s := range r.stops {
		if !s.orderID.IsEqual(orderID) {
			continue
		}
		if s.released {
			return nil
		}
		s.released = true
		r.record("stop_released", r.status, r.status, note, at)
		return nil
	}
	return errs.NewPreconditionError(errs.CodeOrderNotOnRoute, "route", r.id.String()).
		WithField("orderId").
		WithCause(fmt.Errorf("order %s", orderID))
}

func (r *Route) requireDraft(field string) error {
	if r.status != Draft {
		return errs.NewPreconditionError(errs.CodeRouteNotInDraft, "route", r.id.String()).
			WithField(field).
			WithState(r.status.String(), Draft.String())
	}
	return nil
}

func (r *Route) invalidPermutation(cause error) error {
	return errs.NewPreconditionError(errs.CodeInvalidStopPermutation, "route", r.id.String()).
		WithField("stops").
		WithCause(cause)
}

func (r *Route) transition(next func() (Status, error), event, note string, at time.Time) error {
	to, err := next()
	if err != nil {
		var pe *errs.PreconditionError
		if errors.As(err, &pe) {
			pe.EntityID = r.id.String()
		}
		return err
	}
	from := r.status
	r.status = to
	r.record(event, from, to, note, at)
	return nil
}

func (r *Route) record(event string, from, to Status, note string, at time.Time) {
	fromName := from.String()
	if from == Unknown {
		fromName = ""
	}
	r.Record(history.Entry{
		EntityType: history.EntityRoute,
		EntityID:   r.id,
		Event:      event,
		From:       fromName,
		To:         to.String(),
		Note:       note,
		At:         at,
	})
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	r.driverID = driverID
	return nil
}

func (r *Route) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}
	r.vehicleID = vehicleID
	return nil
}

func (r *Route) setZoneID(zoneID string) error {
	if zoneID == "" {
		return errs.NewValueIsRequiredError("zoneId")
	}
	r.zoneID = zoneID
	return nil
}

func (r *Route) setScheduledDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	y, m, d := date.Date()
	r.scheduledDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

func (r *Route) setStops(stops []*Stop) error {
	seen := make(map[kernel.UUID]struct{}, len(stops))
	for i, s := range stops {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.position != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("stop %d has position %d", i+1, s.position))
		}
		if _, dup := seen[s.orderID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("order %s appears twice", s.orderID))
		}
		seen[s.orderID] = struct{}{}
	}
	r.stops = append([]*Stop(nil), stops...)
	return nil
}
