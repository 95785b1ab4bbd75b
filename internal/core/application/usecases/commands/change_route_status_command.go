package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrChangeRouteStatusCommandIsNotConstructed = errors.New(
	"ChangeRouteStatusCommand must be created via NewChangeRouteStatusCommand constructor",
)

// RouteAction is one step of the route lifecycle.
type RouteAction string

const (
	RouteActionPublish  RouteAction = "publish"
	RouteActionStart    RouteAction = "start"
	RouteActionComplete RouteAction = "complete"
	RouteActionCancel   RouteAction = "cancel"
)

type ChangeRouteStatusCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	action  RouteAction
	reason  string

	guard guard.ConstructorGuard
}

// NewChangeRouteStatusCommand requires a reason to cancel.
func NewChangeRouteStatusCommand(routeID kernel.UUID, action RouteAction, reason string) (ChangeRouteStatusCommand, error) {
	var errList []error
	if err := routeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("routeId", err))
	}

	switch action {
	case RouteActionCancel:
		if reason == "" {
			errList = append(errList, errs.NewValueIsRequiredError("reason"))
		}
	case RouteActionPublish, RouteActionStart, RouteActionComplete:
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown route action %q", action)))
	}

	if len(errList) > 0 {
		return ChangeRouteStatusCommand{}, errors.Join(errList...)
	}

	return ChangeRouteStatusCommand{
		routeID: routeID,
		action:  action,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRouteStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRouteStatusCommandIsNotConstructed)
}

func (c ChangeRouteStatusCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c ChangeRouteStatusCommand) Action() RouteAction {
	return c.action
}

func (c ChangeRouteStatusCommand) Reason() string {
	return c.reason
}
