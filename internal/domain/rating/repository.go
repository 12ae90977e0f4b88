package rating

import "context"

type Repository interface {
	FindByRoomID(ctx context.Context, roomID int64) (*Aggregate, error)
	Save(ctx context.Context, aggregate *Aggregate) error
}
