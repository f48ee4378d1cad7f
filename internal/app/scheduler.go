package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/usecase/settings"
)

// StatusRefresher is what the scheduler ticks.
type StatusRefresher interface {
	RefreshStatus(ctx context.Context) (settings.Status, error)
}

// Scheduler runs the fixed-interval background work.
type Scheduler struct {
	status   StatusRefresher
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	once     sync.Once
}

func NewScheduler(status StatusRefresher, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		status:   status,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))
	go s.runStatusTask(ctx)
}

func (s *Scheduler) Stop() {
	s.once.Do(func() {
		s.logger.Info("Stopping background scheduler")
		close(s.stopChan)
	})
}

// runStatusTask refreshes once at start, then on every tick.
func (s *Scheduler) runStatusTask(ctx context.Context) {
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
		case <-s.stopChan:
			s.logger.Info("Status task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Status task cancelled")
			return
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context) {
	st, err := s.status.RefreshStatus(ctx)
	if err != nil {
		s.logger.Error("Failed to refresh business status", zap.Error(err))
		return
	}
	s.logger.Debug("Business status refreshed", zap.Bool("open", st.Open))
}
