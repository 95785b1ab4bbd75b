package queries

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	views, err := loadDeliveries(h.db.WithContext(ctx), "d.id = ?", query.DeliveryID().Bytes())
	if err != nil {
		return DeliveryView{}, err
	}
	if len(views) == 0 {
		return DeliveryView{}, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID())
	}
	return views[0], nil
}

type GetRouteDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteDeliveriesQueryHandler(db *gorm.DB) GetRouteDeliveriesQueryHandler {
	return GetRouteDeliveriesQueryHandler{db: db}
}

// Handle fails with ObjectNotFound only when the route itself is unknown.
func (h GetRouteDeliveriesQueryHandler) Handle(ctx context.Context, query GetRouteDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM routes WHERE id = ?)`, query.RouteID().Bytes()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("routeId", query.RouteID())
	}

	return loadDeliveries(db, "d.route_id = ?", query.RouteID().Bytes())
}

type deliveryRow struct {
	ID             uuid.UUID
	RouteID        uuid.UUID
	OrderID        uuid.UUID
	DriverID       uuid.UUID
	StopOrder      int
	Status         string
	Reason         string
	Observations   string
	DeliveredLines []byte
	DepartedAt     *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	Version        int
}

type evidenceRow struct {
	ID         uuid.UUID
	DeliveryID uuid.UUID
	Kind       string
	URL        string
	Hash       string
	SizeBytes  int64
	CapturedAt time.Time
}

type incidentRow struct {
	ID          uuid.UUID
	DeliveryID  uuid.UUID
	Kind        string
	Description string
	ReportedAt  time.Time
	Resolved    bool
	Resolution  string
	ResolvedAt  *time.Time
}

// loadDeliveries reads the deliveries matching where, with their evidence
// and incidents, in stop order.
func loadDeliveries(db *gorm.DB, where string, args ...any) ([]DeliveryView, error) {
	var rows []deliveryRow
	err := db.Raw(`
		SELECT d.id, d.route_id, d.order_id, d.driver_id, d.stop_order, d.status, d.reason, d.observations,
			d.delivered_lines, d.departed_at, d.completed_at, d.created_at, d.version
		FROM deliveries d
		WHERE `+where+`
		ORDER BY d.stop_order
	`, args...).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}

	var evidences []evidenceRow
	err = db.Raw(`
		SELECT e.id, e.delivery_id, e.kind, e.url, e.hash, e.size_bytes, e.captured_at
		FROM evidences e
		JOIN deliveries d ON d.id = e.delivery_id
		WHERE `+where+`
		ORDER BY e.captured_at, e.id
	`, args...).Scan(&evidences).Error
	if err != nil {
		return nil, err
	}

	var incidents []incidentRow
	err = db.Raw(`
		SELECT i.id, i.delivery_id, i.kind, i.description, i.reported_at, i.resolved, i.resolution, i.resolved_at
		FROM incidents i
		JOIN deliveries d ON d.id = i.delivery_id
		WHERE `+where+`
		ORDER BY i.reported_at, i.id
	`, args...).Scan(&incidents).Error
	if err != nil {
		return nil, err
	}

	views := make([]DeliveryView, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		view, convErr := row.toView()
		if convErr != nil {
			return nil, convErr
		}
		index[row.ID] = len(views)
		views = append(views, view)
	}

	for _, e := range evidences {
		id, convErr := kernel.UUIDFromGoogle(e.ID)
		if convErr != nil {
			return nil, convErr
		}
		i := index[e.DeliveryID]
		views[i].Evidences = append(views[i].Evidences, EvidenceView{
			ID:         id,
			Kind:       e.Kind,
			URL:        e.URL,
			Hash:       e.Hash,
			SizeBytes:  e.SizeBytes,
			CapturedAt: e.CapturedAt,
		})
	}
	for _, inc := range incidents {
		id, convErr := kernel.UUIDFromGoogle(inc.ID)
		if convErr != nil {
			return nil, convErr
		}
		i := index[inc.DeliveryID]
		views[i].Incidents = append(views[i].Incidents, IncidentView{
			ID:          id,
			Kind:        inc.Kind,
			Description: inc.Description,
			ReportedAt:  inc.ReportedAt,
			Resolved:    inc.Resolved,
			Resolution:  inc.Resolution,
			ResolvedAt:  inc.ResolvedAt,
		})
	}

	return views, nil
}

func (r deliveryRow) toView() (DeliveryView, error) {
	view := DeliveryView{
		StopOrder:    r.StopOrder,
		Status:       r.Status,
		Reason:       r.Reason,
		Observations: r.Observations,
		DepartedAt:   r.DepartedAt,
		CompletedAt:  r.CompletedAt,
		CreatedAt:    r.CreatedAt,
		Version:      r.Version,
	}

	var err error
	if view.ID, err = kernel.UUIDFromGoogle(r.ID); err != nil {
		return DeliveryView{}, err
	}
	if view.RouteID, err = kernel.UUIDFromGoogle(r.RouteID); err != nil {
		return DeliveryView{}, err
	}
	if view.OrderID, err = kernel.UUIDFromGoogle(r.OrderID); err != nil {
		return DeliveryView{}, err
	}
	if view.DriverID, err = kernel.UUIDFromGoogle(r.DriverID); err != nil {
		return DeliveryView{}, err
	}
	if len(r.DeliveredLines) > 0 {
		if err = json.Unmarshal(r.DeliveredLines, &view.DeliveredLines); err != nil {
			return DeliveryView{}, err
		}
	}
	return view, nil
}
