package producttype

import (
	"context"
	"errors"
	"fmt"

	"sync-actions/feature/producttype/models"

	"gorm.io/gorm"
)

// PlanRepository persists computed plans.
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a repository. A nil db disables persistence.
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Enabled reports whether a database is configured.
func (r *PlanRepository) Enabled() bool {
	return r != nil && r.db != nil
}

// Migrate creates or updates the sync_plans table.
func (r *PlanRepository) Migrate() error {
	if !r.Enabled() {
		return ErrPlansDisabled
	}
	return r.db.AutoMigrate(&models.PlanRecord{})
}

// Create inserts a plan.
func (r *PlanRepository) Create(ctx context.Context, plan *models.PlanRecord) error {
	if !r.Enabled() {
		return ErrPlansDisabled
	}
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to record plan: %w", err)
	}
	return nil
}

// Get returns the plan with the given id.
func (r *PlanRepository) Get(ctx context.Context, id string) (*models.PlanRecord, error) {
	if !r.Enabled() {
		return nil, ErrPlansDisabled
	}
	var plan models.PlanRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return &plan, nil
}

// ListByProductType returns the most recent plans of a product type.
func (r *PlanRepository) ListByProductType(ctx context.Context, key string, limit int) ([]models.PlanRecord, error) {
	if !r.Enabled() {
		return nil, ErrPlansDisabled
	}
	if limit <= 0 {
		limit = 20
	}
	var plans []models.PlanRecord
	err := r.db.WithContext(ctx).
		Where("product_type_key = ?", key).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}
