package adapter

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kubelo1705/booking-system/internal/domain/review"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) review.Repository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) FindByID(ctx context.Context, id string) (*review.Review, error) {
	var e review.Review
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, review.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormReviewRepository) FindByRoomID(ctx context.Context, roomID int64) ([]review.Review, error) {
	var reviews []review.Review
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("review_order ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) FindByUserID(ctx context.Context, userID string) ([]review.Review, error) {
	var reviews []review.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) Create(ctx context.Context, e *review.Review) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormReviewRepository) Save(ctx context.Context, e *review.Review) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *GormReviewRepository) MaxReviewOrder(ctx context.Context, roomID int64) (int, error) {
	var maxOrder int
	err := r.db.WithContext(ctx).
		Model(&review.Review{}).
		Where("room_id = ?", roomID).
		Select("COALESCE(MAX(review_order), 0)").
		Scan(&maxOrder).Error
	return maxOrder, err
}
