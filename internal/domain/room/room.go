package room

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("room not found")

type Room struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomNumber  string    `gorm:"not null;type:varchar(20)" json:"room_number"`
	Type        string    `gorm:"not null;type:varchar(50)" json:"type"`
	Price       float64   `gorm:"not null" json:"price"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Description string    `gorm:"type:text" json:"description"`
	Rating      float64   `json:"rating"`
	HotelID     int64     `gorm:"not null;index:idx_rooms_hotel_id" json:"hotel_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

type Hotel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null;type:varchar(255)" json:"name"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	City      string    `gorm:"type:varchar(100);index:idx_hotels_city" json:"city"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Hotel) TableName() string {
	return "hotels"
}
