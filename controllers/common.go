package controllers

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/errors"
	"stayhub/middleware"
	"stayhub/response"
)

// respondError maps service errors onto the HTTP surface: conflicts to
// 409, validation to 400, lookups to 404, everything else to a
// generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrBookingNotFound),
		stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrRoomNotFound):
		response.NotFound(c)
		return
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		response.Conflict(c, "email already registered")
		return
	case stderrors.Is(err, errors.ErrInvalidPassword):
		response.Unauthorized(c)
		return
	case stderrors.Is(err, errors.ErrNotBookingOwner):
		response.Forbidden(c)
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeBookingConflict, errors.ErrCodeDuplicateBooking:
			response.Conflict(c, appErr.Message)
		case errors.ErrCodeInvalidDate, errors.ErrCodeInvalidRange,
			errors.ErrCodeValidation, errors.ErrCodeRequiredField,
			errors.ErrCodeInvalidRole, errors.ErrCodeInvalidEmail,
			errors.ErrCodeInvalidFormat:
			response.BadRequest(c, appErr.Message)
		case errors.ErrCodeDBNotFound:
			response.NotFound(c)
		case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken,
			errors.ErrCodeMissingToken, errors.ErrCodeRevokedToken:
			response.Unauthorized(c)
		default:
			response.ServerError(c)
		}
		return
	}

	response.ServerError(c)
}

// currentIdentity pulls the authenticated identity the auth middleware
// stored on the context.
func currentIdentity(c *gin.Context) (uint, string, int, bool) {
	id, okID := c.Get(middleware.CtxUserID)
	email, okEmail := c.Get(middleware.CtxUserEmail)
	role, okRole := c.Get(middleware.CtxUserRole)
	if !okID || !okEmail || !okRole {
		return 0, "", 0, false
	}
	return id.(uint), email.(string), role.(int), true
}

// pageParams reads page/limit query parameters with the usual
// defaults.
func pageParams(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if v, err := intQuery(c, "page"); err == nil && v >= 0 {
		page = v
	}
	if v, err := intQuery(c, "limit"); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

func intQuery(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, stderrors.New("missing")
	}
	return strconv.Atoi(v)
}

// idParam parses a numeric :id path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
