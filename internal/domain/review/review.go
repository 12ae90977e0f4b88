package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("review rating must be between 1 and 5")
)

const (
	StatusActive  = "ACTIVE"
	StatusDeleted = "DELETED"

	MinRating = 1.0
	MaxRating = 5.0
)

type Review struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoomID      int64     `gorm:"not null;index:idx_reviews_room_id" json:"room_id"`
	HotelID     int64     `gorm:"index:idx_reviews_hotel_id" json:"hotel_id"`
	UserID      string    `gorm:"not null;type:varchar(36);index:idx_reviews_user_id" json:"user_id"`
	BookingID   string    `gorm:"not null;uniqueIndex" json:"booking_id"`
	Rating      float64   `gorm:"not null" json:"rating"`
	Comment     string    `gorm:"type:text" json:"comment"`
	Status      string    `gorm:"type:varchar(20);default:ACTIVE" json:"status"`
	ReviewOrder int       `gorm:"not null" json:"review_order"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	return
}

func (r *Review) TableName() string {
	return "reviews"
}

func ValidateRating(value float64) error {
	if value < MinRating || value > MaxRating {
		return ErrInvalidRating
	}
	return nil
}
