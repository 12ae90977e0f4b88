package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubelo1705/booking-system/internal/application/usecase"
	"github.com/kubelo1705/booking-system/internal/domain/rating"
)

type stubCache struct{}

func (stubCache) Get(context.Context, string, any) (bool, error)       { return false, nil }
func (stubCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (stubCache) Delete(context.Context, ...string) error              { return nil }
func (stubCache) AddMember(context.Context, string, ...string) error   { return nil }
func (stubCache) Members(context.Context, string) ([]string, error)    { return nil, nil }
func (stubCache) RemoveMember(context.Context, string, ...string) error { return nil }
func (stubCache) DeletePattern(context.Context, string) error          { return nil }
func (stubCache) Ping(context.Context) error                           { return nil }
func (stubCache) Close() error                                         { return nil }

type stubRatingRepository struct{}

func (stubRatingRepository) FindByRoomID(context.Context, int64) (*rating.Aggregate, error) {
	return nil, rating.ErrNotFound
}

func (stubRatingRepository) Save(context.Context, *rating.Aggregate) error { return nil }

func newTestScheduler(t *testing.T) *FlushScheduler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	flush := usecase.NewFlushRatingsUseCase(stubRatingRepository{}, stubCache{}, logger, usecase.FlushConfig{
		WriteRate:          1000,
		WriteBurst:         100,
		BreakerMaxRequests: 3,
		BreakerInterval:    time.Minute,
		BreakerTimeout:     time.Second,
	})

	s, err := NewFlushScheduler(5, flush, logger)
	require.NoError(t, err)
	return s
}

func TestForceFlushWithNothingDirty(t *testing.T) {
	s := newTestScheduler(t)

	result, err := s.ForceFlush(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Flushed)
	assert.Zero(t, result.Failed)
	assert.False(t, result.Skipped)
}

func TestStartAndStop(t *testing.T) {
	s := newTestScheduler(t)

	s.Start()
	s.Stop()
}
