package order

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Problems reported per line by the validation engine.
const (
	ProblemMissingLineCoverage     = "missing line coverage"
	ProblemDuplicateLine           = "duplicate line"
	ProblemUnknownLine             = "unknown line"
	ProblemMissingDisposition      = "missing disposition"
	ProblemReasonRequired          = "reason required"
	ProblemSubstituteSKURequired   = "substitute sku required"
	ProblemSubstituteSKUSame       = "substitute sku equals requested sku"
	ProblemSubstituteSKUInactive   = "substitute sku is not an active catalog sku"
	ProblemSubstituteSKUForbidden  = "substitute sku is only allowed on substituted lines"
	ProblemQuantityNegative        = "approved quantity is negative"
	ProblemQuantityRequired        = "approved quantity required"
	ProblemQuantityExceeds         = "approved quantity exceeds requested quantity"
	ProblemQuantityNotBelowRequest = "partially approved quantity must be below requested quantity"
)

// LineIssue is one offending line of a submitted validation.
type LineIssue struct {
	LineID  string
	Field   string
	Problem string
}

// ValidationError aggregates every content problem of one validation
// submission so that all of them can be fixed in a single round-trip.
type ValidationError struct {
	OrderID string
	Issues  []LineIssue
}

func (e *ValidationError) Add(lineID, field, problem string) {
	e.Issues = append(e.Issues, LineIssue{LineID: lineID, Field: field, Problem: problem})
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("line %s: %s (%s)", issue.LineID, issue.Problem, issue.Field))
	}
	return fmt.Sprintf("%s: validation of order %s: %s", errs.ErrValueIsInvalid, e.OrderID, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
