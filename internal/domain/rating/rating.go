package rating

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("rating aggregate not found")
	ErrNoReviews = errors.New("rating aggregate has no reviews")
)

// Aggregate holds the per-room rating counters. The durable row is the source
// of truth between flushes; the latest unflushed value lives in the cache
// buffer and is JSON-serialized as-is.
type Aggregate struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoomID        int64     `gorm:"uniqueIndex;not null" json:"room_id"`
	SumOfRatings  float64   `gorm:"not null" json:"sum_of_ratings"`
	TotalReviews  int       `gorm:"not null" json:"total_reviews"`
	AverageRating float64   `gorm:"not null" json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewAggregate(roomID int64) *Aggregate {
	return &Aggregate{RoomID: roomID}
}

func (a *Aggregate) BeforeCreate(_ *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

func (a *Aggregate) TableName() string {
	return "room_ratings"
}

func (a *Aggregate) AddRating(value float64) {
	a.TotalReviews++
	a.SumOfRatings += value
	a.AverageRating = a.SumOfRatings / float64(a.TotalReviews)
}

// UpdateRating replaces one already-counted rating with a new value. The
// review count does not change, so an empty aggregate cannot absorb an update.
func (a *Aggregate) UpdateRating(oldValue, newValue float64) error {
	if a.TotalReviews == 0 {
		return ErrNoReviews
	}
	a.SumOfRatings = a.SumOfRatings - oldValue + newValue
	a.AverageRating = a.SumOfRatings / float64(a.TotalReviews)
	return nil
}

func (a *Aggregate) RemoveRating(value float64) {
	a.TotalReviews--
	a.SumOfRatings -= value
	if a.TotalReviews > 0 {
		a.AverageRating = a.SumOfRatings / float64(a.TotalReviews)
		return
	}
	// Removing the last review resets the aggregate instead of leaving
	// float residue or a negative count behind.
	a.TotalReviews = 0
	a.SumOfRatings = 0
	a.AverageRating = 0
}
