package controllers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

// CreateReview creates an immutable review for a room.
func (ctl *ReviewController) CreateReview(c *gin.Context) {
	userID, _, _, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var room models.Room
	if err := ctl.db.First(&room, input.RoomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	review := models.Review{
		UserID:  userID,
		RoomID:  input.RoomID,
		Star:    input.Star,
		Comment: input.Comment,
	}
	if err := validator.ValidateReview(&review); err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.db.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := ctl.db.Preload("User").First(&review, review.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, dto.ToReviewResponse(review))
}

// GetReviews lists a room's reviews, newest first.
func (ctl *ReviewController) GetReviews(c *gin.Context) {
	roomID, ok := idParam(c, "roomId")
	if !ok {
		response.BadRequest(c, "invalid room id")
		return
	}
	page, limit := pageParams(c)

	var total int64
	if err := ctl.db.Model(&models.Review{}).Where("room_id = ?", roomID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	if err := ctl.db.Preload("User").Where("room_id = ?", roomID).
		Order("created_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}
	response.SuccessWithPagination(c, resp, page, limit, int(total))
}
