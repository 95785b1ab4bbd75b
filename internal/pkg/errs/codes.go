package errs

// Precondition codes carried by PreconditionError.Code. They are part of the
// HTTP contract and must stay stable.
const (
	CodeInvalidTransition       = "InvalidTransition"
	CodeOrderNotPending         = "OrderNotPendingValidation"
	CodeOrderNotValidated       = "OrderNotValidated"
	CodeOrderAlreadyRouted      = "OrderAlreadyRouted"
	CodeOrderNotOnRoute         = "OrderNotOnRoute"
	CodeRouteNotInDraft         = "RouteNotInDraft"
	CodeRouteNotPublished       = "RouteNotPublished"
	CodeRouteNotInProgress      = "RouteNotInProgress"
	CodeRouteInProgress         = "RouteInProgress"
	CodeRouteHasNoStops         = "RouteHasNoStops"
	CodeInvalidStopPermutation  = "InvalidStopPermutation"
	CodeDeliveriesNotTerminal   = "DeliveriesNotTerminal"
	CodeDeliveryTerminal        = "DeliveryTerminal"
	CodeDeliveredLineInvalid    = "DeliveredLineInvalid"
	CodeVehicleUnavailable      = "VehicleUnavailable"
	CodeVehicleCapacityExceeded = "VehicleCapacityExceeded"
	CodeVehicleNotReserved      = "VehicleNotReserved"
	CodeDriverUnknown           = "DriverUnknown"
)
