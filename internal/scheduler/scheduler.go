package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher re-reads the row store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler periodically re-fetches the rows so locally staged writes reconcile.
type Scheduler struct {
	Cron      *cron.Cron
	Refresher Refresher
	Timeout   time.Duration
	Ctx       context.Context
}

// NewScheduler creates a Scheduler. Each refresh is bounded by timeout.
func NewScheduler(ctx context.Context, r Refresher, timeout time.Duration) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Refresher: r,
		Timeout:   timeout,
		Ctx:       ctx,
	}
}

// RegisterRefresh schedules the refresh job on a six-field cron spec.
func (s *Scheduler) RegisterRefresh(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refresh); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logrus.Info("Scheduler.Start.started")
}

// Stop stops the cron scheduler and waits for a running refresh.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logrus.Info("Scheduler.Stop.stopped")
}

// RunNow performs one refresh immediately.
func (s *Scheduler) RunNow() {
	s.refresh()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(s.Ctx, s.Timeout)
	defer cancel()

	start := time.Now()
	err := s.Refresher.Refresh(ctx)
	entry := logrus.WithField("durationMs", time.Since(start).Milliseconds())
	if err != nil {
		entry.WithError(err).Error("Scheduler.refresh.Error")
		return
	}
	entry.Info("Scheduler.refresh.Complete")
}
