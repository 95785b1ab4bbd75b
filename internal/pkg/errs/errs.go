package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsOutOfRange     = errors.New("value is out of range")
	ErrValueIsRequired       = errors.New("value is required")
	ErrPrecondition          = errors.New("precondition failed")
	ErrConcurrencyConflict   = errors.New("concurrent modification")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// ObjectNotFoundError is returned when a persisted object cannot be located.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that fails a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// PreconditionError is a synchronous rejection of an operation whose
// preconditions do not hold against the current state. It is never retried.
type PreconditionError struct {
	Code     string
	Entity   string
	EntityID string
	Field    string
	Current  string
	Expected string
	Related  []string
	Cause    error
}

func NewPreconditionError(code, entity, entityID string) *PreconditionError {
	return &PreconditionError{Code: code, Entity: entity, EntityID: entityID}
}

// WithState records the observed and the required state.
func (e *PreconditionError) WithState(current, expected string) *PreconditionError {
	e.Current = current
	e.Expected = expected
	return e
}

func (e *PreconditionError) WithField(field string) *PreconditionError {
	e.Field = field
	return e
}

// WithRelated lists other entities involved, e.g. the deliveries that block
// a route from completing.
func (e *PreconditionError) WithRelated(ids ...string) *PreconditionError {
	e.Related = append(e.Related, ids...)
	return e
}

func (e *PreconditionError) WithCause(cause error) *PreconditionError {
	e.Cause = cause
	return e
}

func (e *PreconditionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", ErrPrecondition, e.Code)
	if e.Entity != "" {
		fmt.Fprintf(&b, " (%s %s)", e.Entity, e.EntityID)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ", field %s", e.Field)
	}
	if e.Current != "" || e.Expected != "" {
		fmt.Fprintf(&b, ", current %s, expected %s", e.Current, e.Expected)
	}
	if len(e.Related) > 0 {
		fmt.Fprintf(&b, ", related [%s]", strings.Join(e.Related, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " (cause: %v)", e.Cause)
	}
	return b.String()
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// ConcurrencyConflictError means the stored row no longer matches the state
// the caller loaded. Refetching and retrying is appropriate.
type ConcurrencyConflictError struct {
	Entity          string
	EntityID        string
	ExpectedVersion int
	ExpectedStatus  string
}

func NewConcurrencyConflictError(entity, entityID string, expectedVersion int, expectedStatus string) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{
		Entity:          entity,
		EntityID:        entityID,
		ExpectedVersion: expectedVersion,
		ExpectedStatus:  expectedStatus,
	}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s is no longer at version %d in status %s",
		ErrConcurrencyConflict, e.Entity, e.EntityID, e.ExpectedVersion, e.ExpectedStatus)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// DependencyUnavailableError wraps a failure of a downstream collaborator.
type DependencyUnavailableError struct {
	Dependency string
	Cause      error
}

func NewDependencyUnavailableError(dependency string, cause error) *DependencyUnavailableError {
	return &DependencyUnavailableError{Dependency: dependency, Cause: cause}
}

func (e *DependencyUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrDependencyUnavailable, e.Dependency, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDependencyUnavailable, e.Dependency)
}

func (e *DependencyUnavailableError) Unwrap() error {
	return ErrDependencyUnavailable
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
