package review

import "context"

type Repository interface {
	FindByID(ctx context.Context, id string) (*Review, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]Review, error)
	FindByUserID(ctx context.Context, userID string) ([]Review, error)
	Create(ctx context.Context, review *Review) error
	Save(ctx context.Context, review *Review) error
	MaxReviewOrder(ctx context.Context, roomID int64) (int, error)
}
