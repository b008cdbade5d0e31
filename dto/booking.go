package dto

import (
	"time"

	"stayhub/models"
)

// CreateBookingInput books a single calendar date.
type CreateBookingInput struct {
	RoomID uint   `json:"roomId" binding:"required"`
	Date   string `json:"date" binding:"required"`
}

// CreateBookingRangeInput books [checkIn, checkOut), half-open: the
// checkout day stays free for the next guest.
type CreateBookingRangeInput struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// CreateBookingDatesInput books an explicit set of dates as one group.
type CreateBookingDatesInput struct {
	RoomID uint     `json:"roomId" binding:"required"`
	Dates  []string `json:"dates" binding:"required,min=1"`
}

// UpdateBookingInput moves an existing group to a new date or range.
type UpdateBookingInput struct {
	Date     string   `json:"date"`
	CheckIn  string   `json:"checkIn"`
	CheckOut string   `json:"checkOut"`
	Dates    []string `json:"dates"`
}

// BookingGroupResponse is one logical reservation.
type BookingGroupResponse struct {
	GroupID    string    `json:"groupId"`
	BookingID  uint      `json:"bookingId"` // first row id, usable in PATCH/DELETE paths
	RoomID     uint      `json:"roomId"`
	RoomName   string    `json:"roomName"`
	Email      string    `json:"email"`
	Dates      []string  `json:"dates"`
	CheckIn    string    `json:"checkIn,omitempty"`
	CheckOut   string    `json:"checkOut,omitempty"`
	Nights     int       `json:"nights"`
	PriceNight int       `json:"pricePerNight"`
	TotalPrice int       `json:"totalPrice"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToBookingGroupResponse flattens a group of per-day rows into one
// reservation. The group is never empty.
func ToBookingGroupResponse(group []models.Booking) BookingGroupResponse {
	first := group[0]
	resp := BookingGroupResponse{
		GroupID:    first.GroupID,
		BookingID:  first.ID,
		RoomID:     first.RoomID,
		RoomName:   first.Room.Name,
		Email:      first.Email,
		CheckIn:    first.CheckIn,
		CheckOut:   first.CheckOut,
		Nights:     len(group),
		PriceNight: first.Price,
		TotalPrice: first.Price * len(group),
		Status:     first.Status,
		CreatedAt:  first.CreatedAt,
	}
	for _, b := range group {
		resp.Dates = append(resp.Dates, b.Date)
	}
	return resp
}
