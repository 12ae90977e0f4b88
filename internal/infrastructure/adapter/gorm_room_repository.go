package adapter

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kubelo1705/booking-system/internal/domain/room"
)

type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) room.Repository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	var e room.Room
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, room.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormRoomRepository) FindByHotelID(ctx context.Context, hotelID int64) ([]room.Room, error) {
	var rooms []room.Room
	err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Find(&rooms).Error
	return rooms, err
}

func (r *GormRoomRepository) Create(ctx context.Context, e *room.Room) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormRoomRepository) Save(ctx context.Context, e *room.Room) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *GormRoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&room.Room{}, id).Error
}

func (r *GormRoomRepository) FindAvailable(ctx context.Context, criteria room.SearchCriteria) (*room.Page, error) {
	query := r.db.WithContext(ctx).Model(&room.Room{})

	if criteria.MinPrice != nil {
		query = query.Where("rooms.price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		query = query.Where("rooms.price <= ?", *criteria.MaxPrice)
	}
	if criteria.MinCapacity != nil {
		query = query.Where("rooms.capacity >= ?", *criteria.MinCapacity)
	}
	if criteria.RoomType != "" {
		query = query.Where("rooms.type = ?", criteria.RoomType)
	}
	if criteria.City != "" {
		query = query.
			Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
			Where("LOWER(hotels.city) = LOWER(?)", criteria.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rooms []room.Room
	err := query.
		Order(orderClause(criteria.SortBy, criteria.SortDirection)).
		Offset(criteria.Page * criteria.Size).
		Limit(criteria.Size).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	return &room.Page{Rooms: rooms, Total: total, Page: criteria.Page, Size: criteria.Size}, nil
}

func (r *GormRoomRepository) FindByMinRating(ctx context.Context, criteria room.SuggestCriteria) (*room.Page, error) {
	query := r.db.WithContext(ctx).Model(&room.Room{}).Where("rooms.rating >= ?", criteria.MinRating)

	if criteria.City != "" {
		query = query.
			Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
			Where("LOWER(hotels.city) = LOWER(?)", criteria.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var rooms []room.Room
	err := query.
		Order("rooms.rating DESC").
		Offset(criteria.Page * criteria.Size).
		Limit(criteria.Size).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	return &room.Page{Rooms: rooms, Total: total, Page: criteria.Page, Size: criteria.Size}, nil
}

// orderClause interpolates column names into SQL, so unknown values fall back
// to the rating sort instead of passing through.
func orderClause(sortBy, direction string) string {
	switch sortBy {
	case room.SortByPrice, room.SortByCapacity:
	default:
		sortBy = room.SortByRating
	}
	if direction != room.SortAscending {
		direction = room.SortDescending
	}
	return fmt.Sprintf("rooms.%s %s", sortBy, direction)
}
