package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// OrderAction is a status change requested from outside the dispatch
// workflow: by the warehouse or by fulfilment sync from the order service.
type OrderAction string

const (
	OrderActionReject  OrderAction = "reject"
	OrderActionCancel  OrderAction = "cancel"
	OrderActionPrepare OrderAction = "prepare"
	OrderActionInvoice OrderAction = "invoice"
)

// ChangeOrderStatusCommand covers RejectOrder, CancelOrder,
// MarkOrderInPreparation and MarkOrderInvoiced.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  OrderAction
	reason  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand requires a reason for reject and cancel.
func NewChangeOrderStatusCommand(orderID kernel.UUID, action OrderAction, reason string) (ChangeOrderStatusCommand, error) {
	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}

	switch action {
	case OrderActionReject, OrderActionCancel:
		if reason == "" {
			errList = append(errList, errs.NewValueIsRequiredError("reason"))
		}
	case OrderActionPrepare, OrderActionInvoice:
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown order action %q", action)))
	}

	if len(errList) > 0 {
		return ChangeOrderStatusCommand{}, errors.Join(errList...)
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		action:  action,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Action() OrderAction {
	return c.action
}

func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}
