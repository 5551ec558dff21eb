package producttype

import (
	"sync-actions/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new product-type feature. db may be nil, in which
// case plans are not recorded.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) *Feature {
	syncer := NewSyncer(WithLogger(logger), WithOmitEmptyString(cfg.OmitEmptyString))
	snapshots := NewSnapshotStore(client, bucket, cfg.SnapshotPrefix, logger)
	plans := NewPlanRepository(db)
	if plans.Enabled() {
		if err := plans.Migrate(); err != nil {
			logger.Warn("Plan table migration failed, plans will not be recorded", zap.Error(err))
			plans = NewPlanRepository(nil)
		}
	}

	svc := NewService(syncer, snapshots, plans, logger, cfg)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "product-types"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
