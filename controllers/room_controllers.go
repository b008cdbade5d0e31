package controllers

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

type RoomController struct {
	db       *gorm.DB
	bookings *services.BookingService
}

func NewRoomController(db *gorm.DB, bookings *services.BookingService) *RoomController {
	return &RoomController{db: db, bookings: bookings}
}

type roomRating struct {
	RoomID uint
	Avg    float64
	Count  int
}

// attachRatings fills the derived rating fields from the reviews
// table.
func (ctl *RoomController) attachRatings(rooms []models.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}

	var ratings []roomRating
	if err := ctl.db.Model(&models.Review{}).
		Select("room_id, AVG(star) AS avg, COUNT(*) AS count").
		Where("room_id IN ?", ids).
		Group("room_id").
		Scan(&ratings).Error; err != nil {
		return err
	}

	byRoom := make(map[uint]roomRating, len(ratings))
	for _, r := range ratings {
		byRoom[r.RoomID] = r
	}
	for i := range rooms {
		if r, ok := byRoom[rooms[i].ID]; ok {
			rooms[i].Rating = r.Avg
			rooms[i].ReviewCount = r.Count
		}
	}
	return nil
}

// GetRooms lists rooms with pagination and cheap filters.
func (ctl *RoomController) GetRooms(c *gin.Context) {
	page, limit := pageParams(c)

	tx := ctl.db.Model(&models.Room{})
	if name := c.Query("name"); name != "" {
		tx = tx.Where("name ILIKE ?", "%"+strings.TrimSpace(name)+"%")
	}
	if maxPrice, err := intQuery(c, "maxPrice"); err == nil && maxPrice > 0 {
		tx = tx.Where("price <= ?", maxPrice)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := tx.Order("created_at DESC").
		Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := ctl.attachRatings(rooms); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, rooms, page, limit, int(total))
}

// GetRoomDetail returns one room with its derived rating.
func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid room id")
		return
	}

	var room models.Room
	if err := ctl.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	rooms := []models.Room{room}
	if err := ctl.attachRatings(rooms); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rooms[0])
}

// CreateRoom is admin-only.
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var input dto.CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	room := models.Room{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Amenities:   input.Amenities,
	}
	if err := validator.ValidateRoom(&room); err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.db.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, room)
}

// UpdateRoom patches the given fields only.
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid room id")
		return
	}

	var input dto.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var room models.Room
	if err := ctl.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Price != nil {
		room.Price = *input.Price
	}
	if input.Image != nil {
		room.Image = *input.Image
	}
	if input.Amenities != nil {
		room.Amenities = *input.Amenities
	}

	if err := validator.ValidateRoom(&room); err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.db.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// DeleteRoom refuses while the room still has active bookings.
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid room id")
		return
	}

	var room models.Room
	if err := ctl.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	busy, err := ctl.bookings.HasActiveForRoom(room.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if busy {
		response.Conflict(c, "room still has active bookings")
		return
	}

	if err := ctl.db.Delete(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
