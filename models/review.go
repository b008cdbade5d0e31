package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	RoomID    uint      `json:"roomId" gorm:"index"`
	Comment   string    `json:"comment"`
	Star      int       `json:"star"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
}
