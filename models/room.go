package models

import (
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Price       int            `json:"price"` // per night
	Image       string         `json:"image"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	// Rating is aggregated from reviews on read, never stored.
	Rating      float64 `json:"rating" gorm:"-"`
	ReviewCount int     `json:"reviewCount" gorm:"-"`
}
