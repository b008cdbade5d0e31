package controllers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/middleware"
	"stayhub/models"
)

type stubBookingStore struct {
	group        []models.Booking
	groupErr     error
	cancelled    []string
	listedEmails []string
}

func (s *stubBookingStore) CreateGroup(user models.User, room models.Room, dates []string, checkIn, checkOut string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingStore) GroupByBookingID(id uint) ([]models.Booking, error) {
	return s.group, s.groupErr
}

func (s *stubBookingStore) MoveGroup(group []models.Booking, dates []string, checkIn, checkOut string) ([]models.Booking, error) {
	return group, nil
}

func (s *stubBookingStore) CancelGroup(groupID string) error {
	s.cancelled = append(s.cancelled, groupID)
	return nil
}

func (s *stubBookingStore) BookedDates(roomID uint) ([]string, error) {
	return nil, nil
}

func (s *stubBookingStore) ListByEmail(email string) ([][]models.Booking, error) {
	s.listedEmails = append(s.listedEmails, email)
	return nil, nil
}

func bookingTestRouter(store BookingStore, userID uint, email string, role int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	setIdentity := func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxUserEmail, email)
		c.Set(middleware.CtxUserRole, role)
	}
	ctl := NewBookingController(nil, store, nil)
	router.GET("/bookings", setIdentity, ctl.GetBookings)
	router.DELETE("/bookings/:id", setIdentity, ctl.DeleteBooking)
	return router
}

func TestDeleteBookingOwnership(t *testing.T) {
	bobGroup := []models.Booking{
		{ID: 11, GroupID: "g1", RoomID: 1, Email: "bob@example.com", Date: "2024-05-01"},
	}

	tests := []struct {
		name          string
		store         *stubBookingStore
		userID        uint
		email         string
		role          int
		wantStatus    int
		wantCancelled []string
	}{
		{
			name:          "owner cancels own booking",
			store:         &stubBookingStore{group: bobGroup},
			userID:        2, email: "bob@example.com", role: constants.RoleUser,
			wantStatus:    http.StatusOK,
			wantCancelled: []string{"g1"},
		},
		{
			name:       "another user is refused",
			store:      &stubBookingStore{group: bobGroup},
			userID:     3, email: "mallory@example.com", role: constants.RoleUser,
			wantStatus: http.StatusForbidden,
		},
		{
			name:          "admin cancels any booking",
			store:         &stubBookingStore{group: bobGroup},
			userID:        1, email: "root@example.com", role: constants.RoleAdmin,
			wantStatus:    http.StatusOK,
			wantCancelled: []string{"g1"},
		},
		{
			name:       "unknown booking",
			store:      &stubBookingStore{groupErr: errors.ErrBookingNotFound},
			userID:     2, email: "bob@example.com", role: constants.RoleUser,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := bookingTestRouter(tt.store, tt.userID, tt.email, tt.role)
			req := httptest.NewRequest(http.MethodDelete, "/bookings/11", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if !reflect.DeepEqual(tt.store.cancelled, tt.wantCancelled) {
				t.Errorf("expected cancelled groups %v, got %v", tt.wantCancelled, tt.store.cancelled)
			}
		})
	}
}

func TestGetBookingsEmailFilter(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		email       string
		role        int
		wantStatus  int
		wantQueried []string
	}{
		{
			name:       "admin lookup is normalized",
			target:     "/bookings?email=%20Bob@Example.COM%20",
			email:      "root@example.com", role: constants.RoleAdmin,
			wantStatus:  http.StatusOK,
			wantQueried: []string{"bob@example.com"},
		},
		{
			name:       "non-admin cannot filter by email",
			target:     "/bookings?email=bob@example.com",
			email:      "mallory@example.com", role: constants.RoleUser,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "plain user sees their own",
			target:     "/bookings",
			email:      "bob@example.com", role: constants.RoleUser,
			wantStatus:  http.StatusOK,
			wantQueried: []string{"bob@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubBookingStore{}
			router := bookingTestRouter(store, 2, tt.email, tt.role)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if !reflect.DeepEqual(store.listedEmails, tt.wantQueried) {
				t.Errorf("expected queried emails %v, got %v", tt.wantQueried, store.listedEmails)
			}
		})
	}
}

func TestResolveUpdateDates(t *testing.T) {
	tests := []struct {
		name      string
		input     dto.UpdateBookingInput
		wantDates []string
		wantErr   bool
	}{
		{
			name:      "single date",
			input:     dto.UpdateBookingInput{Date: "2024-05-01"},
			wantDates: []string{"2024-05-01"},
		},
		{
			name:      "range expands half-open",
			input:     dto.UpdateBookingInput{CheckIn: "2024-05-01", CheckOut: "2024-05-03"},
			wantDates: []string{"2024-05-01", "2024-05-02"},
		},
		{
			name:      "explicit date set wins over other fields",
			input:     dto.UpdateBookingInput{Dates: []string{"2024-05-09", "2024-05-07"}, Date: "2024-05-01"},
			wantDates: []string{"2024-05-07", "2024-05-09"},
		},
		{
			name:    "inverted range",
			input:   dto.UpdateBookingInput{CheckIn: "2024-05-03", CheckOut: "2024-05-01"},
			wantErr: true,
		},
		{
			name:      "empty body yields nothing",
			input:     dto.UpdateBookingInput{},
			wantDates: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, _, _, err := resolveUpdateDates(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", dates)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(dates, tt.wantDates) {
				t.Errorf("expected %v, got %v", tt.wantDates, dates)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"booking conflict", errors.NewAppError(errors.ErrCodeBookingConflict, "room unavailable on 2024-01-02", nil), http.StatusConflict},
		{"duplicate booking", errors.NewAppError(errors.ErrCodeDuplicateBooking, "already booked by you on 2024-01-02", nil), http.StatusConflict},
		{"invalid date", errors.NewAppError(errors.ErrCodeInvalidDate, "invalid date", nil), http.StatusBadRequest},
		{"invalid range", errors.NewAppError(errors.ErrCodeInvalidRange, "checkOut must be after checkIn", nil), http.StatusBadRequest},
		{"invalid role", errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil), http.StatusBadRequest},
		{"booking not found", errors.ErrBookingNotFound, http.StatusNotFound},
		{"user not found", errors.ErrUserNotFound, http.StatusNotFound},
		{"duplicate email", errors.ErrUserAlreadyExists, http.StatusConflict},
		{"bad password", errors.ErrInvalidPassword, http.StatusUnauthorized},
		{"db failure", errors.NewAppError(errors.ErrCodeDBError, "boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
