package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/kubelo1705/booking-system/internal/domain/rating"
	"github.com/kubelo1705/booking-system/internal/ports"
)

// RatingAggregationUseCase maintains the per-room rating counters through the
// cache. Mutations land in a write-back buffer entry and the read cache
// immediately; the durable row only catches up on the next flush cycle.
type RatingAggregationUseCase struct {
	ratingRepo rating.Repository
	cache      ports.CachePort
	lock       ports.LockPort
	logger     *slog.Logger
	bufferTTL  time.Duration
	cacheTTL   time.Duration
	lockTTL    time.Duration
}

func NewRatingAggregationUseCase(
	ratingRepo rating.Repository,
	cache ports.CachePort,
	lock ports.LockPort,
	logger *slog.Logger,
	bufferTTL, cacheTTL, lockTTL time.Duration,
) *RatingAggregationUseCase {
	return &RatingAggregationUseCase{
		ratingRepo: ratingRepo,
		cache:      cache,
		lock:       lock,
		logger:     logger,
		bufferTTL:  bufferTTL,
		cacheTTL:   cacheTTL,
		lockTTL:    lockTTL,
	}
}

// Get is a cache-aside read. The read path never creates an aggregate; only
// mutations do that lazily.
func (uc *RatingAggregationUseCase) Get(ctx context.Context, roomID int64) (*rating.Aggregate, error) {
	var cached rating.Aggregate
	found, err := uc.cache.Get(ctx, ratingCacheKey(roomID), &cached)
	if err != nil {
		uc.logger.Warn("Failed to read rating cache", "room_id", roomID, "error", err)
	}
	if err == nil && found {
		uc.logger.Debug("Rating cache hit", "room_id", roomID)
		return &cached, nil
	}

	aggregate, err := uc.ratingRepo.FindByRoomID(ctx, roomID)
	if err != nil {
		if errors.Is(err, rating.ErrNotFound) {
			return nil, rating.ErrNotFound
		}
		return nil, fmt.Errorf("load rating aggregate for room %d: %w", roomID, err)
	}

	if err := uc.cache.Set(ctx, ratingCacheKey(roomID), aggregate, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache rating aggregate", "room_id", roomID, "error", err)
	}
	return aggregate, nil
}

func (uc *RatingAggregationUseCase) AddRating(ctx context.Context, roomID int64, value float64) (*rating.Aggregate, error) {
	return uc.mutate(ctx, roomID, func(aggregate *rating.Aggregate) error {
		aggregate.AddRating(value)
		return nil
	})
}

func (uc *RatingAggregationUseCase) UpdateRating(ctx context.Context, roomID int64, oldValue, newValue float64) (*rating.Aggregate, error) {
	return uc.mutate(ctx, roomID, func(aggregate *rating.Aggregate) error {
		return aggregate.UpdateRating(oldValue, newValue)
	})
}

func (uc *RatingAggregationUseCase) RemoveRating(ctx context.Context, roomID int64, value float64) (*rating.Aggregate, error) {
	return uc.mutate(ctx, roomID, func(aggregate *rating.Aggregate) error {
		aggregate.RemoveRating(value)
		return nil
	})
}

// mutate serializes the load-compute-store sequence per room behind a cache
// lock, so two concurrent mutations on the same room cannot overwrite each
// other's buffer write.
func (uc *RatingAggregationUseCase) mutate(ctx context.Context, roomID int64, apply func(*rating.Aggregate) error) (*rating.Aggregate, error) {
	lockKey := ratingLockKey(roomID)
	if err := acquireLock(ctx, uc.lock, lockKey, uc.lockTTL); err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.lock.Release(ctx, lockKey); err != nil {
			uc.logger.Warn("Failed to release rating lock", "room_id", roomID, "error", err)
		}
	}()

	aggregate, err := uc.loadBuffered(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if err := apply(aggregate); err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, ratingBufferKey(roomID), aggregate, uc.bufferTTL); err != nil {
		return nil, fmt.Errorf("write rating buffer for room %d: %w", roomID, err)
	}
	// Readers see the new value right away, regardless of when the next
	// flush persists it.
	if err := uc.cache.Set(ctx, ratingCacheKey(roomID), aggregate, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to refresh rating read cache", "room_id", roomID, "error", err)
	}
	if err := uc.cache.AddMember(ctx, dirtyRoomsKey, strconv.FormatInt(roomID, 10)); err != nil {
		return nil, fmt.Errorf("mark room %d dirty: %w", roomID, err)
	}

	uc.logger.Debug("Rating aggregate mutated",
		"room_id", roomID,
		"total_reviews", aggregate.TotalReviews,
		"average_rating", aggregate.AverageRating)
	return aggregate, nil
}

// loadBuffered returns the freshest known aggregate: the unflushed buffer
// entry when one exists, the durable row otherwise, or a lazily created zero
// aggregate for a room that has never been rated.
func (uc *RatingAggregationUseCase) loadBuffered(ctx context.Context, roomID int64) (*rating.Aggregate, error) {
	var buffered rating.Aggregate
	found, err := uc.cache.Get(ctx, ratingBufferKey(roomID), &buffered)
	if err != nil {
		uc.logger.Warn("Failed to read rating buffer", "room_id", roomID, "error", err)
	}
	if err == nil && found {
		return &buffered, nil
	}

	aggregate, err := uc.ratingRepo.FindByRoomID(ctx, roomID)
	if err == nil {
		return aggregate, nil
	}
	if errors.Is(err, rating.ErrNotFound) {
		return rating.NewAggregate(roomID), nil
	}
	return nil, fmt.Errorf("load rating aggregate for room %d: %w", roomID, err)
}
