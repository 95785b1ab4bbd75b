package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a customer purchase request as seen by the
// dispatch workflow.
//
// Order follows these invariants:
//   - finalTotal = subtotal - discountTotal + taxTotal, all in minor units
//   - lines are fixed at creation and never change afterwards
//   - resolutions are written exactly once, covering every line
//   - status only advances forward, except for cancellation, rejection and
//     ReturnToPool (a failed or abandoned dispatch)
type Order struct {
	kernel.Versioned
	history.Recorder

	id            kernel.UUID
	clientID      kernel.UUID
	sellerID      kernel.UUID
	zoneID        string
	paymentTerm   string
	lines         []*Line
	discountTotal kernel.Money
	taxTotal      kernel.Money
	status        Status
	resolutions   []Resolution
	createdAt     time.Time
	validatedAt   *time.Time

	guard guard.ConstructorGuard
}

// NewOrder ingests an order snapshot in PendingValidation.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	sellerID kernel.UUID,
	zoneID string,
	paymentTerm string,
	lines []*Line,
	discountTotal kernel.Money,
	taxTotal kernel.Money,
	at time.Time,
) (*Order, error) {
	o := &Order{
		status:    PendingValidation,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(clientID, sellerID),
		o.setZone(zoneID),
		o.setPaymentTerm(paymentTerm),
		o.setLines(lines),
		o.setTotals(discountTotal, taxTotal),
	); err != nil {
		return nil, err
	}

	o.record("created", Unknown, PendingValidation, "", at)
	return o, nil
}

// RestoreOrder rebuilds an order from persistence without recording history.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	sellerID kernel.UUID,
	zoneID string,
	paymentTerm string,
	lines []*Line,
	discountTotal kernel.Money,
	taxTotal kernel.Money,
	status Status,
	resolutions []Resolution,
	createdAt time.Time,
	validatedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		Versioned:   kernel.RestoreVersioned(version),
		createdAt:   createdAt,
		validatedAt: validatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(clientID, sellerID),
		o.setPaymentTerm(paymentTerm),
		o.setLines(lines),
		o.setTotals(discountTotal, taxTotal),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.zoneID = zoneID
	o.status = status
	o.resolutions = append([]Resolution(nil), resolutions...)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

func (o *Order) ZoneID() string {
	return o.zoneID
}

func (o *Order) PaymentTerm() string {
	return o.paymentTerm
}

func (o *Order) Lines() []*Line {
	return append([]*Line(nil), o.lines...)
}

// Line finds a line by id.
func (o *Order) Line(id kernel.UUID) (*Line, bool) {
	for _, l := range o.lines {
		if l.ID().IsEqual(id) {
			return l, true
		}
	}
	return nil, false
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Resolutions() []Resolution {
	return append([]Resolution(nil), o.resolutions...)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ValidatedAt is set once validation is accepted; nil before that.
func (o *Order) ValidatedAt() *time.Time {
	return o.validatedAt
}

func (o *Order) DiscountTotal() kernel.Money {
	return o.discountTotal
}

func (o *Order) TaxTotal() kernel.Money {
	return o.taxTotal
}

// Subtotal is the sum of line subtotals.
func (o *Order) Subtotal() kernel.Money {
	var sum kernel.Money
	for _, l := range o.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

func (o *Order) FinalTotal() kernel.Money {
	return o.Subtotal().Sub(o.discountTotal).Add(o.taxTotal)
}

// ApprovedQuantity returns the units granted for a line by validation.
// Before validation it is zero.
func (o *Order) ApprovedQuantity(lineID kernel.UUID) int {
	for _, r := range o.resolutions {
		if r.LineID.IsEqual(lineID) {
			return r.ApprovedQuantity
		}
	}
	return 0
}

// ApprovedUnits is the total number of units that will be loaded on a
// vehicle for this order.
func (o *Order) ApprovedUnits() int {
	total := 0
	for _, r := range o.resolutions {
		total += r.ApprovedQuantity
	}
	return total
}

// ApplyValidation stores the resolutions produced by the validation engine
// and moves the order out of PendingValidation. An order whose every line was
// rejected becomes Rejected, otherwise Validated.
//
// Re-applying a resolution set identical to the stored one is a no-op while
// the order still holds the outcome of that validation.
func (o *Order) ApplyValidation(resolutions []Resolution, at time.Time) error {
	if o.AcceptsRevalidation() && sameResolutions(o.resolutions, resolutions) {
		return nil
	}
	if o.status != PendingValidation {
		return errs.NewPreconditionError(errs.CodeOrderNotPending, "order", o.id.String()).
			WithState(o.status.String(), PendingValidation.String())
	}
	if len(resolutions) != len(o.lines) {
		return errs.NewValueIsInvalidErrorWithCause("resolutions",
			fmt.Errorf("%d resolutions for %d lines", len(resolutions), len(o.lines)))
	}

	allRejected := true
	for _, r := range resolutions {
		if r.Kind != KindRejected {
			allRejected = false
		}
	}

	next, event := Validated, "validated"
	if allRejected {
		next, event = Rejected, "rejected"
	}

	from := o.status
	o.resolutions = append([]Resolution(nil), resolutions...)
	o.status = next
	o.validatedAt = &at
	o.record(event, from, next, "", at)
	return nil
}

// AcceptsRevalidation reports whether the order is still in the status its
// own validation produced: Validated, or Rejected with every line rejected.
// Only then may an identical submission be replayed.
func (o *Order) AcceptsRevalidation() bool {
	if len(o.resolutions) == 0 {
		return false
	}
	switch o.status {
	case Validated:
		return true
	case Rejected:
		for _, r := range o.resolutions {
			if r.Kind != KindRejected {
				return false
			}
		}
		return true
	}
	return false
}

// Reject withdraws the whole order. Rejecting a rejected order is a no-op.
func (o *Order) Reject(reason string, at time.Time) error {
	if o.status == Rejected {
		return nil
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return o.transition(o.status.Reject, "rejected", reason, at)
}

// Cancel is the explicit cancellation exit. Cancelling twice is a no-op.
func (o *Order) Cancel(reason string, at time.Time) error {
	if o.status == Cancelled {
		return nil
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return o.transition(o.status.Cancel, "cancelled", reason, at)
}

func (o *Order) MarkInPreparation(at time.Time) error {
	if o.status == InPreparation {
		return nil
	}
	return o.transition(o.status.Prepare, "in_preparation", "", at)
}

func (o *Order) MarkInvoiced(at time.Time) error {
	if o.status == Invoiced {
		return nil
	}
	return o.transition(o.status.Invoice, "invoiced", "", at)
}

// Dispatch puts the order on the road with a started route.
func (o *Order) Dispatch(routeID kernel.UUID, at time.Time) error {
	if o.status == EnRoute {
		return nil
	}
	if !o.status.IsDispatchable() {
		return errs.NewPreconditionError(errs.CodeOrderNotValidated, "order", o.id.String()).
			WithState(o.status.String(), Validated.String())
	}
	return o.transition(o.status.Dispatch, "dispatched", "route "+routeID.String(), at)
}

func (o *Order) MarkDelivered(at time.Time) error {
	if o.status == Delivered {
		return nil
	}
	return o.transition(o.status.Deliver, "delivered", "", at)
}

// ReturnToPool makes the order dispatch-eligible again after its route was
// cancelled or its delivery did not happen.
func (o *Order) ReturnToPool(reason string, at time.Time) error {
	if o.status == Validated {
		return nil
	}
	return o.transition(o.status.ReturnToPool, "returned_to_pool", reason, at)
}

func (o *Order) transition(next func() (Status, error), event, note string, at time.Time) error {
	to, err := next()
	if err != nil {
		var pe *errs.PreconditionError
		if errors.As(err, &pe) {
			pe.EntityID = o.id.String()
		}
		return err
	}
	from := o.status
	o.status = to
	o.record(event, from, to, note, at)
	return nil
}

func (o *Order) record(event string, from, to Status, note string, at time.Time) {
	fromName := from.String()
	if from == Unknown {
		fromName = ""
	}
	o.Record(history.Entry{
		EntityType: history.EntityOrder,
		EntityID:   o.id,
		Event:      event,
		From:       fromName,
		To:         to.String(),
		Note:       note,
		At:         at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(clientID, sellerID kernel.UUID) error {
	var errList []error
	if err := clientID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("clientId", err))
	}
	if err := sellerID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("sellerId", err))
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}
	o.clientID = clientID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setZone(zoneID string) error {
	if zoneID == "" {
		return errs.NewValueIsRequiredError("zoneId")
	}
	o.zoneID = zoneID
	return nil
}

func (o *Order) setPaymentTerm(term string) error {
	if term == "" {
		return errs.NewValueIsRequiredError("paymentTerm")
	}
	o.paymentTerm = term
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if _, dup := seen[l.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("lines", fmt.Errorf("line %s appears twice", l.ID()))
		}
		seen[l.ID()] = struct{}{}
	}
	o.lines = append([]*Line(nil), lines...)
	return nil
}

func (o *Order) setTotals(discountTotal, taxTotal kernel.Money) error {
	if err := errors.Join(discountTotal.Validate("discountTotal"), taxTotal.Validate("taxTotal")); err != nil {
		return err
	}
	o.discountTotal = discountTotal
	o.taxTotal = taxTotal
	if o.lines != nil && o.FinalTotal() < 0 {
		return errs.NewValueIsOutOfRangeError("discountTotal", int64(discountTotal), 0, int64(o.Subtotal().Add(taxTotal)))
	}
	return nil
}

func sameResolutions(a, b []Resolution) bool {
	if len(a) != len(b) {
		return false
	}
	index := make(map[kernel.UUID]Resolution, len(a))
	for _, r := range a {
		index[r.LineID] = r
	}
	for _, r := range b {
		stored, ok := index[r.LineID]
		if !ok || stored != r {
			return false
		}
	}
	return true
}
