package dto

import (
	"time"

	"stayhub/models"
)

type CreateReviewInput struct {
	RoomID  uint   `json:"roomId" binding:"required"`
	Star    int    `json:"star" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	RoomID    uint      `json:"roomId"`
	UserName  string    `json:"userName"`
	UserPhoto string    `json:"userPhoto"`
	Star      int       `json:"star"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		RoomID:    review.RoomID,
		UserName:  review.User.Name,
		UserPhoto: review.User.Photo,
		Star:      review.Star,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
