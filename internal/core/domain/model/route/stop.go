package route

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop binds one order to a 1-based position of a route. A released stop no
// longer holds its order: the route was cancelled or the delivery did not
// happen, and the order may be routed elsewhere.
type Stop struct {
	id       kernel.UUID
	orderID  kernel.UUID
	position int
	released bool

	guard guard.ConstructorGuard
}

func NewStop(id kernel.UUID, orderID kernel.UUID, position int) (*Stop, error) {
	return RestoreStop(id, orderID, position, false)
}

func RestoreStop(id kernel.UUID, orderID kernel.UUID, position int, released bool) (*Stop, error) {
	stop := &Stop{guard: guard.NewConstructorGuard(), released: released}

	if err := errors.Join(
		stop.setID(id),
		stop.setOrderID(orderID),
		stop.setPosition(position),
	); err != nil {
		return nil, err
	}

	return stop, nil
}

func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s *Stop) ID() kernel.UUID {
	return s.id
}

func (s *Stop) OrderID() kernel.UUID {
	return s.orderID
}

// Position is the 1-based stopOrder.
func (s *Stop) Position() int {
	return s.position
}

func (s *Stop) Released() bool {
	return s.released
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	s.orderID = orderID
	return nil
}

func (s *Stop) setPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("stopOrder", fmt.Errorf("%d is not greater than 0", position))
	}
	s.position = position
	return nil
}
