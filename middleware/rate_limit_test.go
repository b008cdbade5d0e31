package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 1 request/minute with a burst of 3: requests 1..3 pass, 4 is refused.
	rl := NewIPRateLimiter(1, 3, time.Minute)

	router := gin.New()
	router.GET("/limited", RateLimitByIP(rl), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for i := 1; i <= 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", w.Code)
	}
}
