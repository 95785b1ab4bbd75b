package services

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ValidationEngine turns the warehouse's line dispositions into resolutions.
// It performs no I/O: the active-SKU lookup is done by the caller before the
// engine runs, so a submission is accepted or refused as a whole.
type ValidationEngine struct{}

func NewValidationEngine() ValidationEngine {
	return ValidationEngine{}
}

// SubstituteSKUs lists the SKUs whose catalog status must be known before
// Validate is called.
func (ValidationEngine) SubstituteSKUs(results []order.ValidationResult) []string {
	var skus []string
	seen := map[string]struct{}{}
	for _, r := range results {
		s, ok := r.Disposition.(order.Substituted)
		if !ok || s.SKU == "" {
			continue
		}
		if _, dup := seen[s.SKU]; dup {
			continue
		}
		seen[s.SKU] = struct{}{}
		skus = append(skus, s.SKU)
	}
	return skus
}

// Admit refuses a submission for an order that is neither pending nor still
// holding the outcome of its own validation.
func (ValidationEngine) Admit(o *order.Order) error {
	if o.Status() != order.PendingValidation && !o.AcceptsRevalidation() {
		return notPending(o)
	}
	return nil
}

// Validate checks results against the order lines. It returns one resolution
// per line, or an *order.ValidationError listing every offending line.
// activeSKUs holds the catalog status of every substitute SKU.
func (v ValidationEngine) Validate(
	o *order.Order,
	results []order.ValidationResult,
	activeSKUs map[string]bool,
) ([]order.Resolution, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := v.Admit(o); err != nil {
		return nil, err
	}
	pending := o.Status() == order.PendingValidation

	verr := &order.ValidationError{OrderID: o.ID().String()}
	covered := make(map[kernel.UUID]struct{}, len(results))
	resolutions := make([]order.Resolution, 0, len(results))

	for _, result := range results {
		lineID := result.LineID.String()
		line, ok := o.Line(result.LineID)
		if !ok {
			verr.Add(lineID, "lineId", order.ProblemUnknownLine)
			continue
		}
		if _, dup := covered[result.LineID]; dup {
			verr.Add(lineID, "lineId", order.ProblemDuplicateLine)
			continue
		}
		covered[result.LineID] = struct{}{}

		resolution, ok := resolve(line, result.Disposition, activeSKUs, verr)
		if ok {
			resolutions = append(resolutions, resolution)
		}
	}

	for _, line := range o.Lines() {
		if _, ok := covered[line.ID()]; !ok {
			verr.Add(line.ID().String(), "lineId", order.ProblemMissingLineCoverage)
		}
	}

	if verr.HasIssues() {
		// a submission with content problems cannot repeat an accepted one
		if !pending {
			return nil, notPending(o)
		}
		return nil, verr
	}
	return resolutions, nil
}

func notPending(o *order.Order) error {
	return errs.NewPreconditionError(errs.CodeOrderNotPending, "order", o.ID().String()).
		WithState(o.Status().String(), order.PendingValidation.String())
}

func resolve(
	line *order.Line,
	disposition order.Disposition,
	activeSKUs map[string]bool,
	verr *order.ValidationError,
) (order.Resolution, bool) {
	lineID := line.ID().String()
	requested := line.RequestedQuantity()
	before := len(verr.Issues)

	res := order.Resolution{LineID: line.ID()}

	switch d := disposition.(type) {
	case order.Approved:
		res.Kind = order.KindApproved
		res.ApprovedQuantity = requested
		forbidSubstitute(lineID, d.SubstituteSKU, verr)

	case order.PartiallyApproved:
		res.Kind = order.KindPartiallyApproved
		res.Reason = d.Reason
		requireReason(lineID, d.Reason, verr)
		forbidSubstitute(lineID, d.SubstituteSKU, verr)
		switch {
		case d.Quantity == nil:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityRequired)
		case *d.Quantity < 0:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityNegative)
		case *d.Quantity > requested:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityExceeds)
		case *d.Quantity == requested:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityNotBelowRequest)
		default:
			res.ApprovedQuantity = *d.Quantity
		}

	case order.Substituted:
		res.Kind = order.KindSubstituted
		res.SubstituteSKU = d.SKU
		res.Reason = d.Reason
		requireReason(lineID, d.Reason, verr)
		switch {
		case d.SKU == "":
			verr.Add(lineID, "substituteSku", order.ProblemSubstituteSKURequired)
		case d.SKU == line.SKU():
			verr.Add(lineID, "substituteSku", order.ProblemSubstituteSKUSame)
		case !activeSKUs[d.SKU]:
			verr.Add(lineID, "substituteSku", order.ProblemSubstituteSKUInactive)
		}
		switch {
		case d.Quantity == nil || *d.Quantity == 0:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityRequired)
		case *d.Quantity < 0:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityNegative)
		case *d.Quantity > requested:
			verr.Add(lineID, "approvedQuantity", order.ProblemQuantityExceeds)
		default:
			res.ApprovedQuantity = *d.Quantity
		}

	case order.LineRejected:
		res.Kind = order.KindRejected
		res.Reason = d.Reason
		requireReason(lineID, d.Reason, verr)

	default:
		verr.Add(lineID, "disposition", order.ProblemMissingDisposition)
	}

	return res, len(verr.Issues) == before
}

func requireReason(lineID, reason string, verr *order.ValidationError) {
	if reason == "" {
		verr.Add(lineID, "reason", order.ProblemReasonRequired)
	}
}

func forbidSubstitute(lineID, sku string, verr *order.ValidationError) {
	if sku != "" {
		verr.Add(lineID, "substituteSku", order.ProblemSubstituteSKUForbidden)
	}
}
