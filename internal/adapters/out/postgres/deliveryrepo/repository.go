package deliveryrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgutil"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any, transitions []history.Entry)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, aggregate.PullTransitions())
	return nil
}

// Update writes the delivery guarded by version. Evidences are append-only;
// incidents are upserted so that a resolution reaches the stored row.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if err := pgutil.CheckVersionedWrite(ctx, r.db, pgutil.VersionedWrite{
		Table:   "deliveries",
		Entity:  "delivery",
		ID:      dto.ID,
		Version: aggregate.Version(),
		Status:  aggregate.Status().String(),
		Result:  result,
	}); err != nil {
		return err
	}

	if len(dto.Evidences) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Evidences).Error; err != nil {
			return err
		}
	}
	if len(dto.Incidents) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"resolved", "resolution", "resolved_at"}),
			}).
			Create(&dto.Incidents).Error; err != nil {
			return err
		}
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate, aggregate.PullTransitions())
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "delivery", id, "id = ?", id.Bytes())
}

func (r *GormDeliveryRepository) GetByIncident(ctx context.Context, incidentID kernel.UUID) (*delivery.Delivery, error) {
	if err := incidentID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "incident", incidentID,
		"id = (SELECT delivery_id FROM incidents WHERE id = ?)", incidentID.Bytes())
}

// GetByRoute lists the deliveries of a route in stop order.
func (r *GormDeliveryRepository) GetByRoute(ctx context.Context, routeID kernel.UUID) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.preloaded(ctx).
		Where("route_id = ?", routeID.Bytes()).
		Order("stop_order").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func (r *GormDeliveryRepository) first(ctx context.Context, param string, id kernel.UUID, query string, args ...any) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.preloaded(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormDeliveryRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Evidences", func(db *gorm.DB) *gorm.DB { return db.Order("captured_at") }).
		Preload("Incidents", func(db *gorm.DB) *gorm.DB { return db.Order("reported_at") })
}
