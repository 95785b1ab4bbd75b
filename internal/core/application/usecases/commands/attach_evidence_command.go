package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAttachEvidenceCommandIsNotConstructed = errors.New(
	"AttachEvidenceCommand must be created via NewAttachEvidenceCommand constructor",
)

// AttachEvidenceCommand records proof metadata for an open delivery.
type AttachEvidenceCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	evidence   delivery.Evidence

	guard guard.ConstructorGuard
}

func NewAttachEvidenceCommand(deliveryID kernel.UUID, evidence delivery.Evidence) (AttachEvidenceCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return AttachEvidenceCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	if err := evidence.ID.Validate(); err != nil {
		return AttachEvidenceCommand{}, errs.NewValueIsRequiredErrorWithCause("evidence", err)
	}

	return AttachEvidenceCommand{
		deliveryID: deliveryID,
		evidence:   evidence,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AttachEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAttachEvidenceCommandIsNotConstructed)
}

func (c AttachEvidenceCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AttachEvidenceCommand) Evidence() delivery.Evidence {
	return c.evidence
}
