package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrValidateOrderCommandIsNotConstructed = errors.New(
	"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
)

// ValidateOrderCommand carries the warehouse's disposition of every line.
// Coverage and per-line content are checked by the validation engine so
// that all problems are reported together.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	results []order.ValidationResult

	guard guard.ConstructorGuard
}

func NewValidateOrderCommand(orderID kernel.UUID, results []order.ValidationResult) (ValidateOrderCommand, error) {
	cmd := ValidateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ValidateOrderCommand{}, err
	}
	if len(results) == 0 {
		return ValidateOrderCommand{}, errs.NewValueIsRequiredError("results")
	}

	cmd.orderID = orderID
	cmd.results = append([]order.ValidationResult(nil), results...)
	return cmd, nil
}

func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

func (c ValidateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ValidateOrderCommand) Results() []order.ValidationResult {
	return append([]order.ValidationResult(nil), c.results...)
}
