package room

import "context"

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Room, error)
	FindByHotelID(ctx context.Context, hotelID int64) ([]Room, error)
	Create(ctx context.Context, room *Room) error
	Save(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id int64) error
	FindAvailable(ctx context.Context, criteria SearchCriteria) (*Page, error)
	FindByMinRating(ctx context.Context, criteria SuggestCriteria) (*Page, error)
}
