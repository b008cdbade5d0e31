package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
)

type AuthController struct {
	users   *services.UserService
	revoker *services.TokenRevoker
}

func NewAuthController(users *services.UserService, revoker *services.TokenRevoker) *AuthController {
	return &AuthController{users: users, revoker: revoker}
}

func (ctl *AuthController) issueFor(c *gin.Context, user models.User) {
	accessToken, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(user),
	})
}

// IssueToken handles POST /jwt: upsert the user by email (first sight
// creates it with the user role) and mint a token for it.
func (ctl *AuthController) IssueToken(c *gin.Context) {
	var input dto.IssueTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	user, err := ctl.users.EnsureUser(input.Email, input.Name, input.Photo)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.issueFor(c, user)
}

// AuthGoogle validates a Google ID token and runs the same
// upsert-and-issue path with the verified identity.
func (ctl *AuthController) AuthGoogle(c *gin.Context) {
	var input dto.GoogleTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), input.IDToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	photo, _ := payload.Claims["picture"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	user, err := ctl.users.EnsureUser(email, name, photo)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.issueFor(c, user)
}

// Register creates a password-backed account and signs it in.
func (ctl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	user, err := ctl.users.Register(input.Email, input.Name, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.issueFor(c, user)
}

// Login checks a password and signs the user in.
func (ctl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	user, err := ctl.users.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.issueFor(c, user)
}

// Logout denylists the presented token's jti until its expiry.
func (ctl *AuthController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	claims, err := services.VerifyToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := ctl.revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
