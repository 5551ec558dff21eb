package producttype

import (
	"context"
	"encoding/json"

	"sync-actions/core/reconcile"
	"sync-actions/core/utils"
	"sync-actions/feature/producttype/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service computes, verifies and records product-type plans.
type Service struct {
	syncer    *Syncer
	snapshots *SnapshotStore
	plans     *PlanRepository
	logger    *zap.Logger
	cfg       Config
}

// NewService creates a new product-type service.
func NewService(syncer *Syncer, snapshots *SnapshotStore, plans *PlanRepository, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		syncer:    syncer,
		snapshots: snapshots,
		plans:     plans,
		logger:    logger,
		cfg:       cfg,
	}
}

// ComputeActions returns the actions between two inline snapshots.
func (s *Service) ComputeActions(ctx context.Context, req models.ActionsRequest) (*models.ActionsResponse, error) {
	actions, err := s.syncer.BuildActions(req.Previous, req.Next, req.Groups...)
	if err != nil {
		return nil, err
	}
	return s.respond(req.Previous, req.Next, actions)
}

// ComputeFromDelta maps a pre-computed delta onto actions.
func (s *Service) ComputeFromDelta(ctx context.Context, req models.DeltaRequest) (*models.ActionsResponse, error) {
	actions, err := s.syncer.BuildActionsFromDelta(req.Delta, req.Previous, req.Next, req.Groups...)
	if err != nil {
		return nil, err
	}
	return s.respond(req.Previous, req.Next, actions)
}

// ComputeFromSnapshots loads two stored snapshots, computes their actions
// and records the plan when a database is configured.
func (s *Service) ComputeFromSnapshots(ctx context.Context, req models.SnapshotActionsRequest) (*models.ActionsResponse, error) {
	var previous, next map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		previous, err = s.snapshots.Load(gctx, req.Previous)
		return err
	})
	g.Go(func() error {
		var err error
		next, err = s.snapshots.Load(gctx, req.Next)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	actions, err := s.syncer.BuildActions(previous, next, req.Groups...)
	if err != nil {
		return nil, err
	}
	resp, err := s.respond(previous, next, actions)
	if err != nil {
		return nil, err
	}

	if s.cfg.RecordPlans && s.plans.Enabled() {
		id, err := s.recordPlan(ctx, req, next, actions)
		if err != nil {
			s.logger.Warn("Failed to record plan", zap.Error(err))
		} else {
			resp.PlanID = id
		}
	}
	return resp, nil
}

// GetPlan returns a recorded plan.
func (s *Service) GetPlan(ctx context.Context, id string) (*models.PlanRecord, error) {
	return s.plans.Get(ctx, id)
}

// ListPlans returns the most recent plans of a product type.
func (s *Service) ListPlans(ctx context.Context, key string, limit int) ([]models.PlanRecord, error) {
	return s.plans.ListByProductType(ctx, key, limit)
}

func (s *Service) respond(previous, next any, actions []reconcile.UpdateAction) (*models.ActionsResponse, error) {
	resp := &models.ActionsResponse{
		Actions: actions,
		Summary: reconcile.Summarize(actions),
	}
	if s.cfg.Verify {
		ok, err := Verify(previous, next, actions)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Warn("Actions do not reproduce the next snapshot", zap.Int("actions", len(actions)))
		}
		resp.Verified = &ok
	}
	return resp, nil
}

func (s *Service) recordPlan(ctx context.Context, req models.SnapshotActionsRequest, next map[string]any, actions []reconcile.UpdateAction) (string, error) {
	encoded, err := json.Marshal(actions)
	if err != nil {
		return "", err
	}

	key := ""
	if v, ok := next["key"]; ok && v != nil {
		key = utils.ToString(v)
	} else if v, ok := next["name"]; ok && v != nil {
		key = utils.ToString(v)
	}

	plan := &models.PlanRecord{
		ID:               uuid.NewString(),
		ProductTypeKey:   key,
		PreviousSnapshot: s.snapshots.ObjectName(req.Previous),
		NextSnapshot:     s.snapshots.ObjectName(req.Next),
		ActionCount:      len(actions),
		Actions:          string(encoded),
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return "", err
	}
	s.logger.Info("Plan recorded",
		zap.String("plan_id", plan.ID),
		zap.String("product_type", plan.ProductTypeKey),
		zap.Int("actions", plan.ActionCount),
	)
	return plan.ID, nil
}
