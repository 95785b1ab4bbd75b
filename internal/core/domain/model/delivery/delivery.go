package delivery

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// DeliveredLine is the quantity of one order line handed over in a partial
// delivery.
type DeliveredLine struct {
	LineID   kernel.UUID
	Quantity int
}

// Delivery is the execution record of one route stop. It is created when the
// route starts and its status only moves toward a terminal state. Evidence
// and incidents are appended only while it is not terminal.
type Delivery struct {
	kernel.Versioned
	history.Recorder

	id             kernel.UUID
	routeID        kernel.UUID
	orderID        kernel.UUID
	driverID       kernel.UUID
	stopOrder      int
	status         Status
	evidences      []Evidence
	incidents      []*Incident
	deliveredLines []DeliveredLine
	reason         string
	observations   string
	departedAt     *time.Time
	completedAt    *time.Time
	createdAt      time.Time

	guard guard.ConstructorGuard
}

func NewDelivery(
	id kernel.UUID,
	routeID kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	stopOrder int,
	at time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:    Pending,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := d.setRefs(id, routeID, orderID, driverID, stopOrder); err != nil {
		return nil, err
	}

	d.record("created", Unknown, Pending, "", at)
	return d, nil
}

// Snapshot carries the persisted state of a delivery.
type Snapshot struct {
	ID             kernel.UUID
	RouteID        kernel.UUID
	OrderID        kernel.UUID
	DriverID       kernel.UUID
	StopOrder      int
	Status         Status
	Evidences      []Evidence
	Incidents      []*Incident
	DeliveredLines []DeliveredLine
	Reason         string
	Observations   string
	DepartedAt     *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	Version        int
}

func RestoreDelivery(s Snapshot) (*Delivery, error) {
	d := &Delivery{
		Versioned:      kernel.RestoreVersioned(s.Version),
		evidences:      append([]Evidence(nil), s.Evidences...),
		incidents:      append([]*Incident(nil), s.Incidents...),
		deliveredLines: append([]DeliveredLine(nil), s.DeliveredLines...),
		reason:         s.Reason,
		observations:   s.Observations,
		departedAt:     s.DepartedAt,
		completedAt:    s.CompletedAt,
		createdAt:      s.CreatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setRefs(s.ID, s.RouteID, s.OrderID, s.DriverID, s.StopOrder),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = s.Status
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) RouteID() kernel.UUID {
	return d.routeID
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

func (d *Delivery) StopOrder() int {
	return d.stopOrder
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Evidences() []Evidence {
	return append([]Evidence(nil), d.evidences...)
}

func (d *Delivery) Incidents() []*Incident {
	return append([]*Incident(nil), d.incidents...)
}

func (d *Delivery) DeliveredLines() []DeliveredLine {
	return append([]DeliveredLine(nil), d.deliveredLines...)
}

// Reason is the failure or cancellation reason.
func (d *Delivery) Reason() string {
	return d.reason
}

func (d *Delivery) Observations() string {
	return d.observations
}

func (d *Delivery) DepartedAt() *time.Time {
	return d.departedAt
}

func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Incident finds an incident by id.
func (d *Delivery) Incident(id kernel.UUID) (*Incident, bool) {
	for _, i := range d.incidents {
		if i.id.IsEqual(id) {
			return i, true
		}
	}
	return nil, false
}

// Depart moves a pending delivery en route. Departing twice is a no-op.
func (d *Delivery) Depart(at time.Time) error {
	if d.status == EnRoute {
		return nil
	}
	if d.status != Pending {
		return d.terminal("depart")
	}
	d.depart("", at)
	return nil
}

// CompleteFull closes the delivery with every approved unit handed over.
// A pending delivery departs implicitly first.
func (d *Delivery) CompleteFull(observations string, at time.Time) error {
	if d.status == DeliveredComplete {
		return nil
	}
	return d.finish(DeliveredComplete, "delivered_complete", "", observations, at)
}

// CompletePartial closes the delivery with the given quantities. Each line
// may appear once; quantities are non-negative and at least one unit was
// delivered. Checking quantities against the approved ones needs the order
// and is done by the caller.
func (d *Delivery) CompletePartial(lines []DeliveredLine, observations string, at time.Time) error {
	if d.status == DeliveredPartial {
		return nil
	}
	if err := validateDeliveredLines(lines); err != nil {
		return err
	}
	if err := d.finish(DeliveredPartial, "delivered_partial", "", observations, at); err != nil {
		return err
	}
	d.deliveredLines = append([]DeliveredLine(nil), lines...)
	return nil
}

func (d *Delivery) Fail(reason, observations string, at time.Time) error {
	if d.status == Failed {
		return nil
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return d.finish(Failed, "failed", reason, observations, at)
}

// Cancel is the supervisor override for a delivery that will not happen.
func (d *Delivery) Cancel(reason string, at time.Time) error {
	if d.status == Cancelled {
		return nil
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if d.status.IsTerminal() {
		return d.terminal("cancel")
	}
	from := d.status
	d.status = Cancelled
	d.reason = reason
	d.completedAt = &at
	d.record("cancelled", from, Cancelled, reason, at)
	return nil
}

func (d *Delivery) AttachEvidence(evidence Evidence, at time.Time) error {
	if d.status.IsTerminal() {
		return d.terminal("attach evidence")
	}
	for _, e := range d.evidences {
		if e.ID.IsEqual(evidence.ID) {
			return nil
		}
	}
	d.evidences = append(d.evidences, evidence)
	d.record("evidence_attached", d.status, d.status, string(evidence.Kind), at)
	return nil
}

func (d *Delivery) ReportIncident(incident *Incident, at time.Time) error {
	if d.status.IsTerminal() {
		return d.terminal("report incident")
	}
	if _, exists := d.Incident(incident.ID()); exists {
		return nil
	}
	d.incidents = append(d.incidents, incident)
	d.record("incident_reported", d.status, d.status, incident.Kind(), at)
	return nil
}

// ResolveIncident is allowed after the delivery closed. Resolving a resolved
// incident is a no-op.
func (d *Delivery) ResolveIncident(incidentID kernel.UUID, resolution string, at time.Time) error {
	incident, ok := d.Incident(incidentID)
	if !ok {
		return errs.NewObjectNotFoundError("incidentId", incidentID)
	}
	changed, err := incident.resolve(resolution, at)
	if err != nil || !changed {
		return err
	}
	d.record("incident_resolved", d.status, d.status, resolution, at)
	return nil
}

func (d *Delivery) finish(to Status, event, reason, observations string, at time.Time) error {
	if d.status.IsTerminal() {
		return d.terminal(event)
	}
	if d.status == Pending {
		d.depart("implicit", at)
	}
	from := d.status
	d.status = to
	d.reason = reason
	d.observations = observations
	d.completedAt = &at
	d.record(event, from, to, reason, at)
	return nil
}

func (d *Delivery) depart(note string, at time.Time) {
	d.status = EnRoute
	d.departedAt = &at
	d.record("departed", Pending, EnRoute, note, at)
}

func (d *Delivery) terminal(action string) error {
	return errs.NewPreconditionError(errs.CodeDeliveryTerminal, "delivery", d.id.String()).
		WithState(d.status.String(), "pending|en_route").
		WithCause(fmt.Errorf("cannot %s", action))
}

func (d *Delivery) record(event string, from, to Status, note string, at time.Time) {
	fromName := from.String()
	if from == Unknown {
		fromName = ""
	}
	d.Record(history.Entry{
		EntityType: history.EntityDelivery,
		EntityID:   d.id,
		Event:      event,
		From:       fromName,
		To:         to.String(),
		Note:       note,
		At:         at,
	})
}

func (d *Delivery) setRefs(id, routeID, orderID, driverID kernel.UUID, stopOrder int) error {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := routeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("routeId", err))
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if err := driverID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("driverId", err))
	}
	if stopOrder < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("stopOrder", fmt.Errorf("%d is not greater than 0", stopOrder)))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}
	d.id, d.routeID, d.orderID, d.driverID, d.stopOrder = id, routeID, orderID, driverID, stopOrder
	return nil
}

func validateDeliveredLines(lines []DeliveredLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("deliveredLines")
	}
	seen := make(map[kernel.UUID]struct{}, len(lines))
	total := 0
	for _, l := range lines {
		if err := l.LineID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("deliveredLines.lineId", err)
		}
		if _, dup := seen[l.LineID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("deliveredLines", fmt.Errorf("line %s appears twice", l.LineID))
		}
		seen[l.LineID] = struct{}{}
		if l.Quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause("deliveredLines.quantity", fmt.Errorf("%d is negative", l.Quantity))
		}
		total += l.Quantity
	}
	if total == 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveredLines", errors.New("nothing was delivered"))
	}
	return nil
}
