package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jasonlvhit/gocron"

	"github.com/kubelo1705/booking-system/internal/application/usecase"
)

// FlushScheduler drives the rating flush on a fixed period. ForceFlush runs
// the identical routine on demand.
type FlushScheduler struct {
	flush           *usecase.FlushRatingsUseCase
	scheduler       *gocron.Scheduler
	intervalMinutes uint64
	logger          *slog.Logger
}

func NewFlushScheduler(intervalMinutes uint64, flush *usecase.FlushRatingsUseCase, logger *slog.Logger) (*FlushScheduler, error) {
	s := &FlushScheduler{
		flush:           flush,
		scheduler:       gocron.NewScheduler(),
		intervalMinutes: intervalMinutes,
		logger:          logger,
	}

	if err := s.scheduler.Every(intervalMinutes).Minutes().Do(s.run); err != nil {
		return nil, fmt.Errorf("failed to setup flush schedule: %w", err)
	}

	return s, nil
}

func (s *FlushScheduler) Start() {
	s.scheduler.Start()
	s.logger.Info("Flush scheduler started", "interval_minutes", s.intervalMinutes)
}

func (s *FlushScheduler) Stop() {
	s.scheduler.Clear()
	s.logger.Info("Flush scheduler stopped")
}

func (s *FlushScheduler) ForceFlush(ctx context.Context) (usecase.FlushResult, error) {
	return s.flush.Execute(ctx)
}

func (s *FlushScheduler) run() {
	result, err := s.flush.Execute(context.Background())
	if err != nil {
		s.logger.Error("Scheduled rating flush failed", "error", err)
		return
	}
	if result.Skipped {
		return
	}
	if result.Flushed > 0 || result.Failed > 0 {
		s.logger.Info("Scheduled rating flush completed", "flushed", result.Flushed, "failed", result.Failed)
	}
}
