package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kubelo1705/booking-system/internal/domain/room"
	"github.com/kubelo1705/booking-system/internal/ports"
)

type GetRoomsByHotelUseCase struct {
	roomRepo room.Repository
	cache    ports.CachePort
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewGetRoomsByHotelUseCase(roomRepo room.Repository, cache ports.CachePort, logger *slog.Logger, cacheTTL time.Duration) *GetRoomsByHotelUseCase {
	return &GetRoomsByHotelUseCase{
		roomRepo: roomRepo,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (uc *GetRoomsByHotelUseCase) Execute(ctx context.Context, hotelID int64) ([]room.Room, error) {
	cacheKey := hotelRoomsKey(hotelID)

	var cached []room.Room
	if found, err := uc.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		uc.logger.Debug("Hotel rooms cache hit", "hotel_id", hotelID)
		return cached, nil
	}

	rooms, err := uc.roomRepo.FindByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("load rooms for hotel %d: %w", hotelID, err)
	}

	if err := uc.cache.Set(ctx, cacheKey, rooms, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache hotel rooms", "hotel_id", hotelID, "error", err)
	}
	return rooms, nil
}
