package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kubelo1705/booking-system/internal/domain/room"
	"github.com/kubelo1705/booking-system/internal/ports"
)

type SuggestRoomsUseCase struct {
	roomRepo room.Repository
	cache    ports.CachePort
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewSuggestRoomsUseCase(roomRepo room.Repository, cache ports.CachePort, logger *slog.Logger, cacheTTL time.Duration) *SuggestRoomsUseCase {
	return &SuggestRoomsUseCase{
		roomRepo: roomRepo,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (uc *SuggestRoomsUseCase) Execute(ctx context.Context, criteria room.SuggestCriteria) (*room.Page, error) {
	criteria.Normalize()
	cacheKey := criteriaCacheKey(suggestedRoomsKeyPrefix, criteria)

	var cached room.Page
	if found, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		uc.logger.Debug("Suggested rooms cache hit", "cache_key", cacheKey)
		return &cached, nil
	}

	page, err := uc.roomRepo.FindByMinRating(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("suggest rooms: %w", err)
	}

	if err := uc.cache.Set(ctx, cacheKey, page, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache suggested rooms", "cache_key", cacheKey, "error", err)
	}
	return page, nil
}
