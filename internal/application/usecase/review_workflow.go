package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kubelo1705/booking-system/internal/domain/review"
	"github.com/kubelo1705/booking-system/internal/ports"
)

// ReviewWorkflowUseCase orchestrates review writes against the durable store
// and drives the matching rating delta through the aggregation pipeline.
type ReviewWorkflowUseCase struct {
	reviewRepo review.Repository
	ratings    *RatingAggregationUseCase
	lock       ports.LockPort
	logger     *slog.Logger
	lockTTL    time.Duration
}

func NewReviewWorkflowUseCase(
	reviewRepo review.Repository,
	ratings *RatingAggregationUseCase,
	lock ports.LockPort,
	logger *slog.Logger,
	lockTTL time.Duration,
) *ReviewWorkflowUseCase {
	return &ReviewWorkflowUseCase{
		reviewRepo: reviewRepo,
		ratings:    ratings,
		lock:       lock,
		logger:     logger,
		lockTTL:    lockTTL,
	}
}

func (uc *ReviewWorkflowUseCase) CreateReview(ctx context.Context, newReview *review.Review) (*review.Review, error) {
	if err := review.ValidateRating(newReview.Rating); err != nil {
		return nil, err
	}

	if err := uc.createWithOrder(ctx, newReview); err != nil {
		return nil, err
	}

	if _, err := uc.ratings.AddRating(ctx, newReview.RoomID, newReview.Rating); err != nil {
		return nil, fmt.Errorf("apply rating for review %s: %w", newReview.ID, err)
	}

	uc.logger.Info("Review created",
		"review_id", newReview.ID,
		"room_id", newReview.RoomID,
		"review_order", newReview.ReviewOrder)
	return newReview, nil
}

// createWithOrder assigns ReviewOrder as max+1 under a per-room lock, so
// concurrent creates for the same room cannot pick the same order.
func (uc *ReviewWorkflowUseCase) createWithOrder(ctx context.Context, newReview *review.Review) error {
	lockKey := reviewOrderLockKey(newReview.RoomID)
	if err := acquireLock(ctx, uc.lock, lockKey, uc.lockTTL); err != nil {
		return err
	}
	defer func() {
		if err := uc.lock.Release(ctx, lockKey); err != nil {
			uc.logger.Warn("Failed to release review order lock", "room_id", newReview.RoomID, "error", err)
		}
	}()

	lastOrder, err := uc.reviewRepo.MaxReviewOrder(ctx, newReview.RoomID)
	if err != nil {
		return fmt.Errorf("resolve review order for room %d: %w", newReview.RoomID, err)
	}
	newReview.ReviewOrder = lastOrder + 1

	if err := uc.reviewRepo.Create(ctx, newReview); err != nil {
		return fmt.Errorf("persist review: %w", err)
	}
	return nil
}

func (uc *ReviewWorkflowUseCase) UpdateReview(ctx context.Context, id string, newRating float64, newComment string) (*review.Review, error) {
	if err := review.ValidateRating(newRating); err != nil {
		return nil, err
	}

	existing, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, review.ErrNotFound) {
			return nil, review.ErrNotFound
		}
		return nil, fmt.Errorf("load review %s: %w", id, err)
	}

	oldRating := existing.Rating
	existing.Rating = newRating
	existing.Comment = newComment
	if err := uc.reviewRepo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("persist review %s: %w", id, err)
	}

	if _, err := uc.ratings.UpdateRating(ctx, existing.RoomID, oldRating, newRating); err != nil {
		return nil, fmt.Errorf("apply rating change for review %s: %w", id, err)
	}

	uc.logger.Info("Review updated", "review_id", id, "room_id", existing.RoomID)
	return existing, nil
}

// DeleteReview soft-deletes: the row stays behind with a DELETED status while
// its rating leaves the aggregate.
func (uc *ReviewWorkflowUseCase) DeleteReview(ctx context.Context, id string) error {
	existing, err := uc.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, review.ErrNotFound) {
			return review.ErrNotFound
		}
		return fmt.Errorf("load review %s: %w", id, err)
	}

	existing.Status = review.StatusDeleted
	if err := uc.reviewRepo.Save(ctx, existing); err != nil {
		return fmt.Errorf("persist review %s: %w", id, err)
	}

	if _, err := uc.ratings.RemoveRating(ctx, existing.RoomID, existing.Rating); err != nil {
		return fmt.Errorf("remove rating for review %s: %w", id, err)
	}

	uc.logger.Info("Review deleted", "review_id", id, "room_id", existing.RoomID)
	return nil
}

func (uc *ReviewWorkflowUseCase) AverageRating(ctx context.Context, roomID int64) (float64, error) {
	aggregate, err := uc.ratings.Get(ctx, roomID)
	if err != nil {
		return 0, err
	}
	return aggregate.AverageRating, nil
}

func (uc *ReviewWorkflowUseCase) ReviewByID(ctx context.Context, id string) (*review.Review, error) {
	return uc.reviewRepo.FindByID(ctx, id)
}

func (uc *ReviewWorkflowUseCase) ReviewsByRoom(ctx context.Context, roomID int64) ([]review.Review, error) {
	return uc.reviewRepo.FindByRoomID(ctx, roomID)
}

func (uc *ReviewWorkflowUseCase) ReviewsByUser(ctx context.Context, userID string) ([]review.Review, error) {
	return uc.reviewRepo.FindByUserID(ctx, userID)
}
