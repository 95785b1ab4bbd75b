package order

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DispositionKind names the warehouse's resolution of one order line.
type DispositionKind string

const (
	KindApproved          DispositionKind = "approved"
	KindPartiallyApproved DispositionKind = "partially_approved"
	KindSubstituted       DispositionKind = "substituted"
	KindRejected          DispositionKind = "rejected"
)

// ParseDispositionKind validates a wire/persisted disposition name.
func ParseDispositionKind(s string) (DispositionKind, error) {
	switch k := DispositionKind(s); k {
	case KindApproved, KindPartiallyApproved, KindSubstituted, KindRejected:
		return k, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("disposition", fmt.Errorf("%q is not a valid disposition", s))
}

// Disposition is a closed union: Approved, PartiallyApproved, Substituted and
// LineRejected are its only members. Fields a kind forbids are still carried
// as submitted so the validation engine can report them.
type Disposition interface {
	Kind() DispositionKind
	sealed()
}

// Approved grants the full requested quantity. SubstituteSKU must be empty.
type Approved struct {
	SubstituteSKU string
}

// PartiallyApproved grants 0 ≤ Quantity < requested. A nil Quantity was not
// submitted. SubstituteSKU must be empty.
type PartiallyApproved struct {
	Quantity      *int
	Reason        string
	SubstituteSKU string
}

// Substituted replaces the requested SKU with SKU for Quantity units.
type Substituted struct {
	SKU      string
	Quantity *int
	Reason   string
}

// LineRejected grants nothing.
type LineRejected struct {
	Reason string
}

// Units returns a submitted quantity of n.
func Units(n int) *int {
	return &n
}

func (Approved) Kind() DispositionKind          { return KindApproved }
func (PartiallyApproved) Kind() DispositionKind { return KindPartiallyApproved }
func (Substituted) Kind() DispositionKind       { return KindSubstituted }
func (LineRejected) Kind() DispositionKind      { return KindRejected }

func (Approved) sealed()          {}
func (PartiallyApproved) sealed() {}
func (Substituted) sealed()       {}
func (LineRejected) sealed()      {}

// ValidationResult is the warehouse's submitted disposition for one line.
type ValidationResult struct {
	LineID      kernel.UUID
	Disposition Disposition
}

// Resolution is the accepted, normalised outcome of validating one line.
// It is persisted and never changes afterwards.
type Resolution struct {
	LineID           kernel.UUID
	Kind             DispositionKind
	ApprovedQuantity int
	SubstituteSKU    string
	Reason           string
}

// RestoreResolution rebuilds a persisted resolution.
func RestoreResolution(lineID kernel.UUID, kind DispositionKind, approvedQuantity int, substituteSKU, reason string) (Resolution, error) {
	if err := lineID.Validate(); err != nil {
		return Resolution{}, err
	}
	if _, err := ParseDispositionKind(string(kind)); err != nil {
		return Resolution{}, err
	}
	if approvedQuantity < 0 {
		return Resolution{}, errs.NewValueIsInvalidErrorWithCause("approvedQuantity", fmt.Errorf("%d is negative", approvedQuantity))
	}
	return Resolution{
		LineID:           lineID,
		Kind:             kind,
		ApprovedQuantity: approvedQuantity,
		SubstituteSKU:    substituteSKU,
		Reason:           reason,
	}, nil
}
