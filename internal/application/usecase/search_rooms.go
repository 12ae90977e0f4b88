package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kubelo1705/booking-system/internal/domain/room"
	"github.com/kubelo1705/booking-system/internal/ports"
)

// SearchRoomsUseCase caches whole result pages keyed by a hash of the full
// criteria set. Entries are disposable: a lost entry only costs one durable
// store query.
type SearchRoomsUseCase struct {
	roomRepo room.Repository
	cache    ports.CachePort
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewSearchRoomsUseCase(roomRepo room.Repository, cache ports.CachePort, logger *slog.Logger, cacheTTL time.Duration) *SearchRoomsUseCase {
	return &SearchRoomsUseCase{
		roomRepo: roomRepo,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (uc *SearchRoomsUseCase) Execute(ctx context.Context, criteria room.SearchCriteria) (*room.Page, error) {
	criteria.Normalize()
	cacheKey := criteriaCacheKey(roomSearchKeyPrefix, criteria)

	var cached room.Page
	if found, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		uc.logger.Debug("Room search cache hit", "cache_key", cacheKey)
		return &cached, nil
	}

	page, err := uc.roomRepo.FindAvailable(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}

	if err := uc.cache.Set(ctx, cacheKey, page, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache room search result", "cache_key", cacheKey, "error", err)
	}
	return page, nil
}
