package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Incident is a problem reported during a delivery. Once reported only its
// resolution may change, and only from unresolved to resolved.
type Incident struct {
	id          kernel.UUID
	kind        string
	description string
	reportedAt  time.Time
	resolved    bool
	resolution  string
	resolvedAt  *time.Time
}

func NewIncident(id kernel.UUID, kind, description string, reportedAt time.Time) (*Incident, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if kind == "" {
		errList = append(errList, errs.NewValueIsRequiredError("kind"))
	}
	if description == "" {
		errList = append(errList, errs.NewValueIsRequiredError("description"))
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return &Incident{id: id, kind: kind, description: description, reportedAt: reportedAt}, nil
}

func RestoreIncident(
	id kernel.UUID,
	kind, description string,
	reportedAt time.Time,
	resolved bool,
	resolution string,
	resolvedAt *time.Time,
) (*Incident, error) {
	i, err := NewIncident(id, kind, description, reportedAt)
	if err != nil {
		return nil, err
	}
	i.resolved = resolved
	i.resolution = resolution
	i.resolvedAt = resolvedAt
	return i, nil
}

func (i *Incident) ID() kernel.UUID { return i.id }
func (i *Incident) Kind() string { return i.kind }
func (i *Incident) Description() string { return i.description }
func (i *Incident) ReportedAt() time.Time { return i.reportedAt }
func (i *Incident) Resolved() bool { return i.resolved }
func (i *Incident) Resolution() string { return i.resolution }
func (i *Incident) ResolvedAt() *time.Time { return i.resolvedAt }

// resolve reports whether the incident changed.
func (i *Incident) resolve(resolution string, at time.Time) (bool, error) {
	if i.resolved {
		return false, nil
	}
	if resolution == "" {
		return false, errs.NewValueIsRequiredError("resolution")
	}
	i.resolved = true
	i.resolution = resolution
	i.resolvedAt = &at
	return true, nil
}
