package dto

type MonthBookings struct {
	Month        string `json:"month"`
	Reservations int64  `json:"reservations"`
	Nights       int64  `json:"nights"`
}

type RoomNights struct {
	RoomID   uint   `json:"roomId"`
	RoomName string `json:"roomName"`
	Nights   int64  `json:"nights"`
}

type AdminStatsResponse struct {
	Users            int64           `json:"users"`
	Rooms            int64           `json:"rooms"`
	Reviews          int64           `json:"reviews"`
	ActiveBookings   int64           `json:"activeBookings"`
	BookingsPerMonth []MonthBookings `json:"bookingsPerMonth"`
	TopRooms         []RoomNights    `json:"topRooms"`
	AverageStar      float64         `json:"averageStar"`
}
