package dto

type CreateRoomInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       int      `json:"price" binding:"required,gt=0"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
}

type UpdateRoomInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *int      `json:"price"`
	Image       *string   `json:"image"`
	Amenities   *[]string `json:"amenities"`
}
