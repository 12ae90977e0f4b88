package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kubelo1705/booking-system/internal/domain/room"
	"github.com/kubelo1705/booking-system/internal/ports"
)

type GetRoomByIDUseCase struct {
	roomRepo room.Repository
	cache    ports.CachePort
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewGetRoomByIDUseCase(roomRepo room.Repository, cache ports.CachePort, logger *slog.Logger, cacheTTL time.Duration) *GetRoomByIDUseCase {
	return &GetRoomByIDUseCase{
		roomRepo: roomRepo,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (uc *GetRoomByIDUseCase) Execute(ctx context.Context, roomID int64) (*room.Room, error) {
	cacheKey := roomCacheKey(roomID)

	var cached room.Room
	if found, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		uc.logger.Debug("Room cache hit", "room_id", roomID)
		return &cached, nil
	}

	found, err := uc.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, room.ErrNotFound
		}
		return nil, fmt.Errorf("load room %d: %w", roomID, err)
	}

	if err := uc.cache.Set(ctx, cacheKey, found, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache room", "room_id", roomID, "error", err)
	}
	return found, nil
}
