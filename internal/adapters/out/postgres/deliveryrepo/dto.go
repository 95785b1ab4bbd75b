package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID        uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_deliveries_stop,priority:1"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex:ux_deliveries_stop,priority:2;index"`
	DriverID       uuid.UUID `gorm:"type:uuid;index"`
	StopOrder      int
	Status         string `gorm:"index"`
	Reason         string
	Observations   string
	DeliveredLines []DeliveredLineDTO `gorm:"serializer:json;type:jsonb"`
	DepartedAt     *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	Version        int
	Evidences      []EvidenceDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	Incidents      []IncidentDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type DeliveredLineDTO struct {
	LineID   uuid.UUID `json:"lineId"`
	Quantity int       `json:"quantity"`
}

type EvidenceDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;index"`
	Kind       string
	URL        string
	Hash       string
	SizeBytes  int64
	CapturedAt time.Time
}

func (EvidenceDTO) TableName() string {
	return "evidences"
}

type IncidentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;index"`
	Kind        string
	Description string
	ReportedAt  time.Time
	Resolved    bool
	Resolution  string
	ResolvedAt  *time.Time
}

func (IncidentDTO) TableName() string {
	return "incidents"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:           d.ID().Bytes(),
		RouteID:      d.RouteID().Bytes(),
		OrderID:      d.OrderID().Bytes(),
		DriverID:     d.DriverID().Bytes(),
		StopOrder:    d.StopOrder(),
		Status:       d.Status().String(),
		Reason:       d.Reason(),
		Observations: d.Observations(),
		DepartedAt:   d.DepartedAt(),
		CompletedAt:  d.CompletedAt(),
		CreatedAt:    d.CreatedAt(),
		Version:      d.Version(),
	}

	for _, l := range d.DeliveredLines() {
		dto.DeliveredLines = append(dto.DeliveredLines, DeliveredLineDTO{LineID: l.LineID.Bytes(), Quantity: l.Quantity})
	}
	for _, e := range d.Evidences() {
		dto.Evidences = append(dto.Evidences, EvidenceDTO{
			ID:         e.ID.Bytes(),
			DeliveryID: dto.ID,
			Kind:       string(e.Kind),
			URL:        e.URL,
			Hash:       e.Hash,
			SizeBytes:  e.SizeBytes,
			CapturedAt: e.CapturedAt,
		})
	}
	for _, i := range d.Incidents() {
		dto.Incidents = append(dto.Incidents, IncidentDTO{
			ID:          i.ID().Bytes(),
			DeliveryID:  dto.ID,
			Kind:        i.Kind(),
			Description: i.Description(),
			ReportedAt:  i.ReportedAt(),
			Resolved:    i.Resolved(),
			Resolution:  i.Resolution(),
			ResolvedAt:  i.ResolvedAt(),
		})
	}
	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.RouteID, dto.OrderID, dto.DriverID} {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]delivery.DeliveredLine, 0, len(dto.DeliveredLines))
	for _, l := range dto.DeliveredLines {
		lineID, lineErr := kernel.UUIDFromGoogle(l.LineID)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, delivery.DeliveredLine{LineID: lineID, Quantity: l.Quantity})
	}

	evidences := make([]delivery.Evidence, 0, len(dto.Evidences))
	for _, e := range dto.Evidences {
		evidenceID, evErr := kernel.UUIDFromGoogle(e.ID)
		if evErr != nil {
			return nil, evErr
		}
		evidence, evErr := delivery.NewEvidence(evidenceID, delivery.EvidenceKind(e.Kind), e.URL, e.Hash, e.SizeBytes, e.CapturedAt)
		if evErr != nil {
			return nil, evErr
		}
		evidences = append(evidences, evidence)
	}

	incidents := make([]*delivery.Incident, 0, len(dto.Incidents))
	for _, i := range dto.Incidents {
		incidentID, incErr := kernel.UUIDFromGoogle(i.ID)
		if incErr != nil {
			return nil, incErr
		}
		incident, incErr := delivery.RestoreIncident(incidentID, i.Kind, i.Description, i.ReportedAt,
			i.Resolved, i.Resolution, i.ResolvedAt)
		if incErr != nil {
			return nil, incErr
		}
		incidents = append(incidents, incident)
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:             ids[0],
		RouteID:        ids[1],
		OrderID:        ids[2],
		DriverID:       ids[3],
		StopOrder:      dto.StopOrder,
		Status:         status,
		Evidences:      evidences,
		Incidents:      incidents,
		DeliveredLines: lines,
		Reason:         dto.Reason,
		Observations:   dto.Observations,
		DepartedAt:     dto.DepartedAt,
		CompletedAt:    dto.CompletedAt,
		CreatedAt:      dto.CreatedAt,
		Version:        dto.Version,
	})
}
