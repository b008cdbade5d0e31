package dto

import (
	"reflect"
	"testing"

	"stayhub/models"
)

func TestToBookingGroupResponse(t *testing.T) {
	group := []models.Booking{
		{
			ID:       10,
			GroupID:  "g1",
			RoomID:   3,
			Room:     models.Room{ID: 3, Name: "Sea View"},
			Email:    "alice@example.com",
			Date:     "2024-01-01",
			CheckIn:  "2024-01-01",
			CheckOut: "2024-01-04",
			Price:    120,
		},
		{ID: 11, GroupID: "g1", RoomID: 3, Date: "2024-01-02", Price: 120},
		{ID: 12, GroupID: "g1", RoomID: 3, Date: "2024-01-03", Price: 120},
	}

	got := ToBookingGroupResponse(group)

	if got.GroupID != "g1" || got.BookingID != 10 || got.RoomName != "Sea View" {
		t.Errorf("unexpected header fields: %+v", got)
	}
	if got.Nights != 3 {
		t.Errorf("expected 3 nights, got %d", got.Nights)
	}
	if got.TotalPrice != 360 {
		t.Errorf("expected total 360, got %d", got.TotalPrice)
	}
	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if !reflect.DeepEqual(got.Dates, wantDates) {
		t.Errorf("expected dates %v, got %v", wantDates, got.Dates)
	}
}
