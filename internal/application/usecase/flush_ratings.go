package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/kubelo1705/booking-system/internal/domain/rating"
	"github.com/kubelo1705/booking-system/internal/ports"
)

// FlushConfig bounds how hard a flush cycle may hit the durable store.
type FlushConfig struct {
	WriteRate          float64
	WriteBurst         int
	BreakerMaxRequests uint32
	BreakerInterval    time.Duration
	BreakerTimeout     time.Duration
}

type FlushResult struct {
	Flushed int
	Failed  int
	Skipped bool
}

// FlushRatingsUseCase drains dirty rating buffers into the durable store.
// The periodic scheduler and the on-demand force flush both run this exact
// routine.
type FlushRatingsUseCase struct {
	ratingRepo rating.Repository
	cache      ports.CachePort
	logger     *slog.Logger
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker

	mu sync.Mutex
}

func NewFlushRatingsUseCase(
	ratingRepo rating.Repository,
	cache ports.CachePort,
	logger *slog.Logger,
	config FlushConfig,
) *FlushRatingsUseCase {
	return &FlushRatingsUseCase{
		ratingRepo: ratingRepo,
		cache:      cache,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Limit(config.WriteRate), config.WriteBurst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "rating-flush",
			MaxRequests: config.BreakerMaxRequests,
			Interval:    config.BreakerInterval,
			Timeout:     config.BreakerTimeout,
		}),
	}
}

// Execute snapshots the dirty-set and persists each room's buffered aggregate.
// A failed room stays dirty with its buffer intact and is retried on the next
// cycle; its siblings are unaffected. Overlapping invocations are collapsed:
// a cycle that finds another one running reports itself skipped.
func (uc *FlushRatingsUseCase) Execute(ctx context.Context) (FlushResult, error) {
	if !uc.mu.TryLock() {
		uc.logger.Info("Rating flush already running, skipping cycle")
		return FlushResult{Skipped: true}, nil
	}
	defer uc.mu.Unlock()

	dirtyRooms, err := uc.cache.Members(ctx, dirtyRoomsKey)
	if err != nil {
		return FlushResult{}, fmt.Errorf("read dirty room set: %w", err)
	}
	if len(dirtyRooms) == 0 {
		return FlushResult{}, nil
	}

	var result FlushResult
	for _, member := range dirtyRooms {
		if err := uc.flushRoom(ctx, member); err != nil {
			uc.logger.Error("Failed to flush room rating", "room_id", member, "error", err)
			result.Failed++
			continue
		}
		result.Flushed++
	}

	// Evict the whole ratings read-cache class so readers re-derive from
	// the now-current durable rows.
	if err := uc.cache.DeletePattern(ctx, ratingCacheKeyPrefix+"*"); err != nil {
		uc.logger.Error("Failed to evict ratings read cache", "error", err)
	}

	uc.logger.Info("Rating flush cycle finished", "flushed", result.Flushed, "failed", result.Failed)
	return result, nil
}

func (uc *FlushRatingsUseCase) flushRoom(ctx context.Context, member string) error {
	bufferKey := ratingBufferKeyPrefix + member

	var buffered rating.Aggregate
	found, err := uc.cache.Get(ctx, bufferKey, &buffered)
	if err != nil {
		return fmt.Errorf("read rating buffer: %w", err)
	}
	if !found {
		// The buffer expired before this cycle reached it; there is
		// nothing left to persist for the room.
		return uc.cache.RemoveMember(ctx, dirtyRoomsKey, member)
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		return err
	}
	if _, err := uc.breaker.Execute(func() (interface{}, error) {
		return nil, uc.ratingRepo.Save(ctx, &buffered)
	}); err != nil {
		return fmt.Errorf("persist rating aggregate: %w", err)
	}

	if err := uc.cache.Delete(ctx, bufferKey); err != nil {
		return fmt.Errorf("drop rating buffer: %w", err)
	}
	// The room leaves the dirty-set only after its own persist succeeded,
	// never as part of a bulk clear.
	return uc.cache.RemoveMember(ctx, dirtyRoomsKey, member)
}
