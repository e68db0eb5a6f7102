package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	rdb.FlushDB(ctx)
	return rdb
}

func limitedRouter(rdb *redis.Client, limit int) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiterMiddleware(rdb, limit, 1*time.Minute))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func limitedRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("Success: Requests under the limit pass with headers", func(t *testing.T) {
		rdb.FlushDB(ctx)

		limit := 3
		router := limitedRouter(rdb, limit)

		for i := 1; i <= limit; i++ {
			w := limitedRequest(router, "10.0.0.10")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fmt.Sprintf("%d", limit), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, fmt.Sprintf("%d", limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Fail: Requests over the limit get 429", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 2)

		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.11").Code)
		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.11").Code)

		w := limitedRequest(router, "10.0.0.11")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
		assert.Contains(t, w.Body.String(), "retry_in_s")
	})

	t.Run("Edge: Limits are tracked per client IP", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 1)

		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.12").Code)
		assert.Equal(t, http.StatusTooManyRequests, limitedRequest(router, "10.0.0.12").Code)
		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.13").Code)
	})

	t.Run("Edge: Fails open when redis is unreachable", func(t *testing.T) {
		badRdb := redis.NewClient(&redis.Options{
			Addr: "localhost:9999",
		})

		router := limitedRouter(badRdb, 1)

		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.14").Code)
		assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.14").Code)
	})
}
