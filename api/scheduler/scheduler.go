// Package scheduler runs the periodic catalog refresh so the console's
// shared read models never drift too far from the upstream.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/medgrid/measure-console-api/upstream"
)

// Scheduler handles the periodic refresh of the cached read models
type Scheduler struct {
	cron  *cron.Cron
	cache *upstream.Catalog
	spec  string
}

// New creates a new scheduler instance refreshing the given catalog on the
// cron spec
func New(cache *upstream.Catalog, spec string) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		cache: cache,
		spec:  spec,
	}
}

// Start registers the refresh job and starts the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.refresh)
	if err != nil {
		return err
	}
	s.cron.Start()
	zap.S().Infow("catalog refresh scheduled", "spec", s.spec)
	return nil
}

// Stop halts the cron loop
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	s.cache.Refresh(ctx)
	zap.S().Debugw("catalog refreshed", "duration", time.Since(start))
}
