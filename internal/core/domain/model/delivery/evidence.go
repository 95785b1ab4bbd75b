package delivery

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

type EvidenceKind string

const (
	EvidencePhoto     EvidenceKind = "photo"
	EvidenceSignature EvidenceKind = "signature"
	EvidenceDocument  EvidenceKind = "document"
	EvidenceAudio     EvidenceKind = "audio"
)

func ParseEvidenceKind(s string) (EvidenceKind, error) {
	switch k := EvidenceKind(s); k {
	case EvidencePhoto, EvidenceSignature, EvidenceDocument, EvidenceAudio:
		return k, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a valid evidence kind", s))
}

// Evidence is metadata of a proof stored elsewhere. File bytes never reach
// this service.
type Evidence struct {
	ID         kernel.UUID
	Kind       EvidenceKind
	URL        string
	Hash       string
	SizeBytes  int64
	CapturedAt time.Time
}

func NewEvidence(id kernel.UUID, kind EvidenceKind, rawURL, hash string, sizeBytes int64, capturedAt time.Time) (Evidence, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if _, err := ParseEvidenceKind(string(kind)); err != nil {
		errList = append(errList, err)
	}
	if u, err := url.Parse(rawURL); rawURL == "" || err != nil || u.Scheme == "" {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("url", fmt.Errorf("%q is not an absolute url", rawURL)))
	}
	if sizeBytes < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("sizeBytes", fmt.Errorf("%d is negative", sizeBytes)))
	}
	if capturedAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("capturedAt"))
	}
	if len(errList) > 0 {
		return Evidence{}, errors.Join(errList...)
	}

	return Evidence{
		ID:         id,
		Kind:       kind,
		URL:        rawURL,
		Hash:       hash,
		SizeBytes:  sizeBytes,
		CapturedAt: capturedAt,
	}, nil
}
