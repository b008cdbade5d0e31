package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub/response"
	"stayhub/services"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
	CtxTokenJTI  = "tokenJTI"
)

// RevocationChecker reports whether a token id has been revoked.
// *services.TokenRevoker satisfies it.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware validates the Bearer token and, when roles are given,
// requires the caller to hold one of them. revoked may be nil in
// tests; the denylist check is skipped then.
func AuthMiddleware(revoked RevocationChecker, roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(authHeader[len("Bearer "):])

		claims, err := services.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				response.ServerError(c)
				c.Abort()
				return
			}
			if isRevoked {
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == claims.UserInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserInfo.UserID)
		c.Set(CtxUserEmail, claims.UserInfo.Email)
		c.Set(CtxUserRole, claims.UserInfo.Role)
		c.Set(CtxTokenJTI, claims.ID)
		c.Next()
	}
}
