package http

import (
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Codes of the error body for failures that carry no precondition code.
const (
	CodeRequestInvalid        = "RequestInvalid"
	CodeNotFound              = "NotFound"
	CodeConcurrencyConflict   = "ConcurrencyConflict"
	CodeDependencyUnavailable = "DependencyUnavailable"
	CodeInternal              = "Internal"
)

// NewErrorHandler maps handler errors onto status codes and the {code,
// message, details} body. Only 5xx responses are logged.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, body := toErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, body)
		}
		if writeErr != nil {
			logger.Warn("writing error response", zap.Error(writeErr))
		}
	}
}

func toErrorResponse(err error) (int, servers.Error) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, servers.Error{
			Code:    httpCode(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	}

	var (
		precondition *errs.PreconditionError
		dependency   *errs.DependencyUnavailableError
	)
	switch {
	case errors.As(err, &dependency):
		return http.StatusServiceUnavailable, servers.Error{
			Code:    CodeDependencyUnavailable,
			Message: err.Error(),
			Details: &[]servers.ErrorDetail{{Entity: optional(dependency.Dependency)}},
		}
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict, withDetails(CodeConcurrencyConflict, err)
	case errors.As(err, &precondition):
		return http.StatusUnprocessableEntity, withDetails(precondition.Code, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, withDetails(CodeNotFound, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, withDetails(CodeRequestInvalid, err)
	}

	return http.StatusInternalServerError, servers.Error{
		Code:    CodeInternal,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeRequestInvalid
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusInternalServerError:
		return CodeInternal
	}
	return http.StatusText(status)
}

func withDetails(code string, err error) servers.Error {
	body := servers.Error{Code: code, Message: err.Error()}
	if details := collectDetails(err); len(details) > 0 {
		body.Details = &details
	}
	return body
}

// collectDetails flattens joined errors and reports one detail per typed
// leaf.
func collectDetails(err error) []servers.ErrorDetail {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var out []servers.ErrorDetail
		for _, inner := range e.Unwrap() {
			out = append(out, collectDetails(inner)...)
		}
		return out
	case *errs.PreconditionError:
		detail := servers.ErrorDetail{
			Entity:   optional(e.Entity),
			EntityId: optional(e.EntityID),
			Field:    optional(e.Field),
			Current:  optional(e.Current),
			Expected: optional(e.Expected),
		}
		if len(e.Related) > 0 {
			related := append([]string(nil), e.Related...)
			detail.Related = &related
		}
		return []servers.ErrorDetail{detail}
	case *order.ValidationError:
		out := make([]servers.ErrorDetail, 0, len(e.Issues))
		for _, issue := range e.Issues {
			out = append(out, servers.ErrorDetail{
				Entity:   optional("order"),
				EntityId: optional(e.OrderID),
				LineId:   optional(issue.LineID),
				Field:    optional(issue.Field),
				Problem:  optional(issue.Problem),
			})
		}
		return out
	case *errs.ObjectNotFoundError:
		return []servers.ErrorDetail{{Field: optional(e.ParamName), EntityId: optional(fmt.Sprint(e.ID))}}
	case *errs.ValueIsRequiredError:
		return []servers.ErrorDetail{{Field: optional(e.ParamName), Problem: optional("required")}}
	case *errs.ValueIsInvalidError:
		return []servers.ErrorDetail{{Field: optional(e.ParamName), Problem: optional("invalid")}}
	case *errs.ValueIsOutOfRangeError:
		return []servers.ErrorDetail{{Field: optional(e.ParamName), Problem: optional("out of range")}}
	case *errs.ConcurrencyConflictError:
		return []servers.ErrorDetail{{
			Entity:   optional(e.Entity),
			EntityId: optional(e.EntityID),
			Expected: optional(e.ExpectedStatus),
		}}
	case interface{ Unwrap() error }:
		return collectDetails(e.Unwrap())
	}
	return nil
}
