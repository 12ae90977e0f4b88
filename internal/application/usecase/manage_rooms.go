package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kubelo1705/booking-system/internal/domain/room"
	"github.com/kubelo1705/booking-system/internal/ports"
)

// ManageRoomsUseCase covers room writes. Every mutation invalidates all room
// read-cache classes wholesale: correctness over hit rate, with per-class
// TTLs as the safety net for a missed invalidation.
type ManageRoomsUseCase struct {
	roomRepo room.Repository
	cache    ports.CachePort
	logger   *slog.Logger
}

func NewManageRoomsUseCase(roomRepo room.Repository, cache ports.CachePort, logger *slog.Logger) *ManageRoomsUseCase {
	return &ManageRoomsUseCase{
		roomRepo: roomRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ManageRoomsUseCase) CreateRoom(ctx context.Context, newRoom *room.Room) (*room.Room, error) {
	if err := uc.roomRepo.Create(ctx, newRoom); err != nil {
		return nil, fmt.Errorf("persist room: %w", err)
	}
	uc.invalidateRoomCaches(ctx)
	uc.logger.Info("Room created", "room_id", newRoom.ID, "hotel_id", newRoom.HotelID)
	return newRoom, nil
}

func (uc *ManageRoomsUseCase) UpdateRoom(ctx context.Context, id int64, updated *room.Room) (*room.Room, error) {
	existing, err := uc.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, room.ErrNotFound
		}
		return nil, fmt.Errorf("load room %d: %w", id, err)
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := uc.roomRepo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist room %d: %w", id, err)
	}
	uc.invalidateRoomCaches(ctx)
	uc.logger.Info("Room updated", "room_id", id)
	return updated, nil
}

func (uc *ManageRoomsUseCase) DeleteRoom(ctx context.Context, id int64) error {
	if err := uc.roomRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room %d: %w", id, err)
	}
	uc.invalidateRoomCaches(ctx)
	uc.logger.Info("Room deleted", "room_id", id)
	return nil
}

func (uc *ManageRoomsUseCase) invalidateRoomCaches(ctx context.Context) {
	patterns := []string{
		roomCacheKeyPrefix + "*",
		hotelRoomsKeyPrefix + "*",
		roomSearchKeyPrefix + "*",
		suggestedRoomsKeyPrefix + "*",
	}
	for _, pattern := range patterns {
		if err := uc.cache.DeletePattern(ctx, pattern); err != nil {
			uc.logger.Error("Failed to invalidate room cache class", "pattern", pattern, "error", err)
		}
	}
}
