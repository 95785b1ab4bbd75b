package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via a NewChangeDeliveryStatusCommand constructor",
)

// DeliveryAction is a report from the field or a supervisor override.
type DeliveryAction string

const (
	DeliveryActionDepart          DeliveryAction = "depart"
	DeliveryActionComplete        DeliveryAction = "complete"
	DeliveryActionCompletePartial DeliveryAction = "complete-partial"
	DeliveryActionFail            DeliveryAction = "fail"
	DeliveryActionCancel          DeliveryAction = "cancel"
)

type ChangeDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	action       DeliveryAction
	reason       string
	observations string
	lines        []delivery.DeliveredLine

	guard guard.ConstructorGuard
}

// NewChangeDeliveryStatusCommand builds every action but a partial
// completion. Fail and cancel require a reason.
func NewChangeDeliveryStatusCommand(
	deliveryID kernel.UUID,
	action DeliveryAction,
	reason string,
	observations string,
) (ChangeDeliveryStatusCommand, error) {
	var errList []error
	if err := deliveryID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("deliveryId", err))
	}

	switch action {
	case DeliveryActionFail, DeliveryActionCancel:
		if reason == "" {
			errList = append(errList, errs.NewValueIsRequiredError("reason"))
		}
	case DeliveryActionDepart, DeliveryActionComplete:
	case DeliveryActionCompletePartial:
		errList = append(errList, errs.NewValueIsRequiredError("lines"))
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown delivery action %q", action)))
	}

	if len(errList) > 0 {
		return ChangeDeliveryStatusCommand{}, errors.Join(errList...)
	}

	return ChangeDeliveryStatusCommand{
		deliveryID:   deliveryID,
		action:       action,
		reason:       reason,
		observations: observations,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewCompletePartialDeliveryCommand carries the delivered quantity of each
// line. Lines left out were not delivered at all.
func NewCompletePartialDeliveryCommand(
	deliveryID kernel.UUID,
	lines []delivery.DeliveredLine,
	observations string,
) (ChangeDeliveryStatusCommand, error) {
	var errList []error
	if err := deliveryID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("deliveryId", err))
	}
	if len(lines) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("lines"))
	}
	if len(errList) > 0 {
		return ChangeDeliveryStatusCommand{}, errors.Join(errList...)
	}

	return ChangeDeliveryStatusCommand{
		deliveryID:   deliveryID,
		action:       DeliveryActionCompletePartial,
		observations: observations,
		lines:        append([]delivery.DeliveredLine(nil), lines...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c ChangeDeliveryStatusCommand) Action() DeliveryAction {
	return c.action
}

func (c ChangeDeliveryStatusCommand) Reason() string {
	return c.reason
}

func (c ChangeDeliveryStatusCommand) Observations() string {
	return c.observations
}

func (c ChangeDeliveryStatusCommand) Lines() []delivery.DeliveredLine {
	return append([]delivery.DeliveredLine(nil), c.lines...)
}
