package workorderrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database. A second work order for
// the same order trips the unique index on order_id and is reported as
// a duplicate work order error.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *production.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err, "order_id") {
			return errs.NewDuplicateWorkOrderErrorWithCause(aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order to the database. The write
// succeeds only when the stored version is the one the aggregate was
// loaded with.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *production.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Updates(map[string]any{
			"stage":      dto.Stage,
			"state":      dto.State,
			"updated_at": dto.UpdatedAt,
			"version":    dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.staleOrMissing(ctx, aggregate.ID())
	}

	if err := r.replaceChildren(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID with its tasks and rejections.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*production.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the work order attached to the given order.
func (r *GormWorkOrderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*production.WorkOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	err := r.preloaded(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInState retrieves all work orders in the given state, oldest first.
func (r *GormWorkOrderRepository) GetAllInState(ctx context.Context, state production.WorkOrderState) ([]*production.WorkOrder, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkOrderDTO
	err := r.preloaded(ctx).Order("created_at").Find(&dtos, "state = ?", state.String()).Error
	if err != nil {
		return nil, err
	}

	workOrders := make([]*production.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, wo)
	}

	return workOrders, nil
}

func (r *GormWorkOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Rejections", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

// replaceChildren rewrites the task and rejection rows. Tasks change
// state in place and rejections only ever grow, so a full rewrite
// keeps both in step with the aggregate.
func (r *GormWorkOrderRepository) replaceChildren(ctx context.Context, dto WorkOrderDTO) error {
	if err := r.db.WithContext(ctx).Delete(&TaskDTO{}, "work_order_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&RejectionDTO{}, "work_order_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(dto.Tasks) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Tasks).Error; err != nil {
			return err
		}
	}
	if len(dto.Rejections) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Rejections).Error; err != nil {
			return err
		}
	}
	return nil
}

// staleOrMissing tells an unknown work order apart from a concurrent
// modification after a conditional update touched no rows.
func (r *GormWorkOrderRepository) staleOrMissing(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("workOrder", id.String())
	}
	return errs.NewVersionIsInvalidError("workOrder")
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation on an index covering the given column.
// The gorm postgres driver speaks pgx, so server errors surface as PgError.
func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolationCode {
		return false
	}
	return pgErr.ConstraintName == "" || strings.Contains(pgErr.ConstraintName, column)
}
