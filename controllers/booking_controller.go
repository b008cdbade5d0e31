package controllers

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

// BookingStore is the slice of the booking service the handlers use.
// *services.BookingService satisfies it.
type BookingStore interface {
	CreateGroup(user models.User, room models.Room, dates []string, checkIn, checkOut string) ([]models.Booking, error)
	GroupByBookingID(id uint) ([]models.Booking, error)
	MoveGroup(group []models.Booking, dates []string, checkIn, checkOut string) ([]models.Booking, error)
	CancelGroup(groupID string) error
	BookedDates(roomID uint) ([]string, error)
	ListByEmail(email string) ([][]models.Booking, error)
}

type BookingController struct {
	db       *gorm.DB
	bookings BookingStore
	melody   *melody.Melody
	now      func() time.Time
}

func NewBookingController(db *gorm.DB, bookings BookingStore, m *melody.Melody) *BookingController {
	return &BookingController{
		db:       db,
		bookings: bookings,
		melody:   m,
		now:      time.Now,
	}
}

// broadcast pushes a booking event to connected dashboards. Failures
// never fail the request.
func (ctl *BookingController) broadcast(event string, group dto.BookingGroupResponse) {
	if ctl.melody == nil {
		return
	}
	msg, err := json.Marshal(gin.H{"event": event, "booking": group})
	if err != nil {
		return
	}
	ctl.melody.Broadcast(msg)
}

func (ctl *BookingController) loadRoom(c *gin.Context, roomID uint) (models.Room, bool) {
	var room models.Room
	if err := ctl.db.First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
		} else {
			response.ServerError(c)
		}
		return room, false
	}
	return room, true
}

func (ctl *BookingController) loadUser(c *gin.Context) (models.User, bool) {
	userID, _, _, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return models.User{}, false
	}

	var user models.User
	if err := ctl.db.First(&user, userID).Error; err != nil {
		response.Unauthorized(c)
		return user, false
	}
	return user, true
}

// create runs the shared validate-check-commit path for all three
// request shapes once the dates are expanded.
func (ctl *BookingController) create(c *gin.Context, roomID uint, dates []string, checkIn, checkOut string) {
	user, ok := ctl.loadUser(c)
	if !ok {
		return
	}

	if err := validator.ValidateBookingDates(dates, ctl.now()); err != nil {
		respondError(c, err)
		return
	}

	room, ok := ctl.loadRoom(c, roomID)
	if !ok {
		return
	}

	group, err := ctl.bookings.CreateGroup(user, room, dates, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range group {
		group[i].Room = room
	}
	resp := dto.ToBookingGroupResponse(group)
	ctl.broadcast("booking.created", resp)
	response.Created(c, resp)
}

// CreateBooking books a single calendar date.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var input dto.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}
	ctl.create(c, input.RoomID, []string{input.Date}, "", "")
}

// CreateBookingRange books [checkIn, checkOut) half-open: adjacent
// stays sharing only the checkout day do not collide.
func (ctl *BookingController) CreateBookingRange(c *gin.Context) {
	var input dto.CreateBookingRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	dates, err := services.ExpandRange(input.CheckIn, input.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	ctl.create(c, input.RoomID, dates, input.CheckIn, input.CheckOut)
}

// CreateBookingDates books an explicit date set as one group.
func (ctl *BookingController) CreateBookingDates(c *gin.Context) {
	var input dto.CreateBookingDatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	dates, err := services.NormalizeDates(input.Dates)
	if err != nil {
		respondError(c, err)
		return
	}
	ctl.create(c, input.RoomID, dates, "", "")
}

// GetBookings lists the caller's reservations; admins may pass
// ?email= to inspect any user's.
func (ctl *BookingController) GetBookings(c *gin.Context) {
	_, email, role, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if q := c.Query("email"); q != "" {
		if role != constants.RoleAdmin {
			response.Forbidden(c)
			return
		}
		// Stored emails are normalized on write; match that here or a
		// mixed-case query silently finds nothing.
		email = strings.ToLower(strings.TrimSpace(q))
	}

	groups, err := ctl.bookings.ListByEmail(email)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.BookingGroupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, dto.ToBookingGroupResponse(g))
	}
	response.Success(c, resp)
}

// GetRoomBookedDates is public: the booked dates of one room, for
// date pickers.
func (ctl *BookingController) GetRoomBookedDates(c *gin.Context) {
	roomID, ok := idParam(c, "roomId")
	if !ok {
		response.BadRequest(c, "invalid room id")
		return
	}

	if _, ok := ctl.loadRoom(c, roomID); !ok {
		return
	}

	dates, err := ctl.bookings.BookedDates(roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"roomId": roomID, "dates": dates})
}

// resolveUpdateDates turns whichever shape the PATCH body used into a
// date list.
func resolveUpdateDates(input dto.UpdateBookingInput) ([]string, string, string, error) {
	switch {
	case len(input.Dates) > 0:
		dates, err := services.NormalizeDates(input.Dates)
		return dates, "", "", err
	case input.CheckIn != "" || input.CheckOut != "":
		dates, err := services.ExpandRange(input.CheckIn, input.CheckOut)
		return dates, input.CheckIn, input.CheckOut, err
	case input.Date != "":
		return []string{input.Date}, "", "", nil
	}
	return nil, "", "", nil
}

// UpdateBooking moves a reservation to new dates. Only the owner may
// move it; the conflict check excludes the group's own rows.
func (ctl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid booking id")
		return
	}

	_, email, _, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	group, err := ctl.bookings.GroupByBookingID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if group[0].Email != email {
		response.Forbidden(c)
		return
	}

	dates, checkIn, checkOut, err := resolveUpdateDates(input)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(dates) == 0 {
		response.BadRequest(c, "a date, a checkIn/checkOut pair or a date list is required")
		return
	}
	if err := validator.ValidateBookingDates(dates, ctl.now()); err != nil {
		respondError(c, err)
		return
	}

	moved, err := ctl.bookings.MoveGroup(group, dates, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}

	for i := range moved {
		moved[i].Room = group[0].Room
	}
	resp := dto.ToBookingGroupResponse(moved)
	ctl.broadcast("booking.moved", resp)
	response.Success(c, resp)
}

// DeleteBooking cancels a whole reservation. Owners cancel their own;
// admins may cancel any.
func (ctl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid booking id")
		return
	}

	_, email, role, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	group, err := ctl.bookings.GroupByBookingID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if group[0].Email != email && role != constants.RoleAdmin {
		response.Forbidden(c)
		return
	}

	if err := ctl.bookings.CancelGroup(group[0].GroupID); err != nil {
		respondError(c, err)
		return
	}

	ctl.broadcast("booking.cancelled", dto.ToBookingGroupResponse(group))
	response.Success(c, nil)
}
