package producttype

import (
	"context"
	"sync"

	"sync-actions/feature/producttype/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const checkConcurrency = 8

// CheckSnapshots downloads every stored snapshot and reports the ones that
// fail to decode into a valid product type.
func (s *Service) CheckSnapshots(ctx context.Context) (*models.SnapshotReport, error) {
	names, err := s.snapshots.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.SnapshotReport{
		Total:   len(names),
		Invalid: map[string]string{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)
	for _, name := range names {
		g.Go(func() error {
			err := s.checkSnapshot(gctx, name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				mu.Lock()
				report.Invalid[name] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Valid = report.Total - len(report.Invalid)
	if len(report.Invalid) > 0 {
		s.logger.Warn("Invalid snapshots found", zap.Int("invalid", len(report.Invalid)), zap.Int("total", report.Total))
	}
	return report, nil
}

func (s *Service) checkSnapshot(ctx context.Context, name string) error {
	doc, err := s.snapshots.Load(ctx, name)
	if err != nil {
		return err
	}
	pt, err := models.FromDocument(doc)
	if err != nil {
		return err
	}
	return pt.Validate()
}
