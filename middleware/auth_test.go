package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stayhub/constants"
	"stayhub/services"
)

type stubRevocation struct {
	revoked bool
	err     error
	gotJTI  string
}

func (s *stubRevocation) IsRevoked(ctx context.Context, jti string) (bool, error) {
	s.gotJTI = jti
	return s.revoked, s.err
}

func authTestRouter(revoked RevocationChecker, roles ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(revoked, roles...), func(c *gin.Context) {
		email, _ := c.Get(CtxUserEmail)
		c.String(http.StatusOK, "%v", email)
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userToken, err := services.GenerateToken(services.UserInfo{
		UserID: 1, Email: "alice@example.com", Role: constants.RoleUser,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	adminToken, err := services.GenerateToken(services.UserInfo{
		UserID: 2, Email: "root@example.com", Role: constants.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		roles      []int
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{"missing header", nil, "", http.StatusUnauthorized, ""},
		{"not bearer", nil, "Basic abc", http.StatusUnauthorized, ""},
		{"garbage token", nil, "Bearer not.a.token", http.StatusUnauthorized, ""},
		{"valid token", nil, "Bearer " + userToken, http.StatusOK, "alice@example.com"},
		{"role mismatch", []int{constants.RoleAdmin}, "Bearer " + userToken, http.StatusForbidden, ""},
		{"role match", []int{constants.RoleAdmin}, "Bearer " + adminToken, http.StatusOK, "root@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(authTestRouter(nil, tt.roles...), tt.authHeader)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareRevocation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := services.GenerateToken(services.UserInfo{
		UserID: 1, Email: "alice@example.com", Role: constants.RoleUser,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		checker    *stubRevocation
		wantStatus int
	}{
		{"revoked jti is rejected", &stubRevocation{revoked: true}, http.StatusUnauthorized},
		{"live jti passes", &stubRevocation{}, http.StatusOK},
		{"denylist lookup failure", &stubRevocation{err: errors.New("redis down")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(authTestRouter(tt.checker), "Bearer "+token)
			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.checker.gotJTI == "" {
				t.Error("expected the checker to be consulted with the token jti")
			}
		})
	}
}
