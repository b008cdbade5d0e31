package controllers

import (
	"github.com/gin-gonic/gin"

	"stayhub/dto"
	"stayhub/response"
	"stayhub/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetUsers lists users; admin-only via route middleware.
func (ctl *UserController) GetUsers(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := ctl.users.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}
	response.SuccessWithPagination(c, resp, page, limit, int(total))
}

// GetProfile returns the caller's own record.
func (ctl *UserController) GetProfile(c *gin.Context) {
	userID, _, _, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, err := ctl.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.ToUserResponse(user))
}

// UpdateUserRole mutates a user's role inside the closed enum.
func (ctl *UserController) UpdateUserRole(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}

	var input dto.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Role == nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	user, err := ctl.users.SetRole(id, *input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, dto.ToUserResponse(user))
}

// DeleteUser removes an account. Admins never delete themselves
// through this endpoint.
func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}

	callerID, _, _, ok := currentIdentity(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if id == callerID {
		response.Forbidden(c)
		return
	}

	if err := ctl.users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
