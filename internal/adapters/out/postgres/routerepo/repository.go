package routerepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/adapters/out/postgres/pgutil"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any, transitions []history.Entry)
}

func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapStopError(err, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, aggregate.PullTransitions())
	return nil
}

// Update writes the route row guarded by version and rewrites its stops.
// A stop that collides with another route's active stop is reported as
// OrderAlreadyRouted.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&RouteDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if err := pgutil.CheckVersionedWrite(ctx, r.db, pgutil.VersionedWrite{
		Table:   "routes",
		Entity:  "route",
		ID:      dto.ID,
		Version: aggregate.Version(),
		Status:  aggregate.Status().String(),
		Result:  result,
	}); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("route_id = ?", dto.ID).Delete(&StopDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Stops) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Stops).Error; err != nil {
			return mapStopError(err, aggregate)
		}
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate, aggregate.PullTransitions())
	return nil
}

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRouteRepository) FindActiveByOrder(ctx context.Context, orderID kernel.UUID) (*route.Route, error) {
	var stop StopDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND active", orderID.Bytes()).
		First(&stop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil //nolint:nilnil // no active route holds the order
	}
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromGoogle(stop.RouteID)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, routeID)
}

func mapStopError(err error, aggregate *route.Route) error {
	if !pgutil.IsUniqueViolation(err, ActiveStopIndex) {
		return err
	}
	return errs.NewPreconditionError(errs.CodeOrderAlreadyRouted, "route", aggregate.ID().String()).
		WithField("stops").
		WithCause(fmt.Errorf("an order of this route is already on another active route: %w", err))
}
