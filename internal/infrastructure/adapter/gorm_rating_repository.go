package adapter

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kubelo1705/booking-system/internal/domain/rating"
)

type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) rating.Repository {
	return &GormRatingRepository{db: db}
}

func (r *GormRatingRepository) FindByRoomID(ctx context.Context, roomID int64) (*rating.Aggregate, error) {
	var aggregate rating.Aggregate
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&aggregate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, rating.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &aggregate, nil
}

func (r *GormRatingRepository) Save(ctx context.Context, aggregate *rating.Aggregate) error {
	var existing rating.Aggregate
	err := r.db.WithContext(ctx).Where("room_id = ?", aggregate.RoomID).First(&existing).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(aggregate).Error
		}
		return err
	}

	aggregate.ID = existing.ID
	aggregate.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(aggregate).Error
}
