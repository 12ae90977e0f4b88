package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/kubelo1705/booking-system/internal/ports"
)

// Cache key classes. Every class keeps its own prefix so it can be evicted
// wholesale with a pattern delete.
const (
	ratingBufferKeyPrefix   = "ratings-buffer:"
	ratingCacheKeyPrefix    = "ratings-cache:"
	ratingLockKeyPrefix     = "ratings-lock:"
	reviewOrderLockPrefix   = "review-order-lock:"
	roomCacheKeyPrefix      = "rooms:"
	hotelRoomsKeyPrefix     = "hotel-rooms:"
	roomSearchKeyPrefix     = "room-search:"
	suggestedRoomsKeyPrefix = "suggested-rooms:"

	dirtyRoomsKey = "ratings-dirty-set"

	lockRetryInterval = 25 * time.Millisecond
)

func ratingBufferKey(roomID int64) string {
	return ratingBufferKeyPrefix + strconv.FormatInt(roomID, 10)
}

func ratingCacheKey(roomID int64) string {
	return ratingCacheKeyPrefix + strconv.FormatInt(roomID, 10)
}

func ratingLockKey(roomID int64) string {
	return ratingLockKeyPrefix + strconv.FormatInt(roomID, 10)
}

func reviewOrderLockKey(roomID int64) string {
	return reviewOrderLockPrefix + strconv.FormatInt(roomID, 10)
}

func roomCacheKey(roomID int64) string {
	return roomCacheKeyPrefix + strconv.FormatInt(roomID, 10)
}

func hotelRoomsKey(hotelID int64) string {
	return hotelRoomsKeyPrefix + strconv.FormatInt(hotelID, 10)
}

func criteriaCacheKey(prefix string, criteria any) string {
	data, _ := json.Marshal(criteria)
	hash := sha256.Sum256(data)
	return prefix + hex.EncodeToString(hash[:])[:16]
}

// acquireLock spins on a SETNX-style lock until it is granted or the holder
// outlives the lock TTL, which bounds how long a caller can be starved.
func acquireLock(ctx context.Context, lock ports.LockPort, key string, ttl time.Duration) error {
	deadline := time.Now().Add(ttl)
	for {
		ok, err := lock.Acquire(ctx, key, ttl)
		if err != nil {
			return fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("lock %s still held after %s", key, ttl)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}
