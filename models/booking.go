package models

import (
	"time"
)

// Booking is one reserved calendar date for one room. A reservation
// spanning several nights is a group of rows sharing GroupID; the
// unique index on (room_id, date) is what ultimately keeps two
// reservations from claiming the same night.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GroupID   string    `json:"groupId" gorm:"index;size:36;not null"`
	RoomID    uint      `json:"roomId" gorm:"uniqueIndex:idx_room_date;not null"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID"`
	UserID    uint      `json:"userId"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Email     string    `json:"email" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"uniqueIndex:idx_room_date;size:10;not null"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Price     int       `json:"price"`      // per night, copied from the room at booking time
	Status    int       `json:"status" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
