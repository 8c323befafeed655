package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLimitMiddlewareThrottlesAfterTheBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, 2)

	router := gin.New()
	router.Use(rl.LimitMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLimitMiddlewareTracksClientsSeparately(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, 1)

	router := gin.New()
	router.Use(rl.LimitMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, addr)
	}
}
