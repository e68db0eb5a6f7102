package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"chorechart/internal/adapters/handler/http/middleware"
	"chorechart/internal/core/services"
)

type RouterDependencies struct {
	ChildHandler      *ChildHandler
	TaskHandler       *TaskHandler
	CompletionHandler *CompletionHandler
	ReviewHandler     *ReviewHandler
	SessionService    *services.SessionService
	DB                *sqlx.DB
	Redis             *redis.Client
	Logger            *zap.Logger
	StartTime         time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.GinZapMiddleware(deps.Logger))

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if err := deps.DB.Ping(); err != nil {
			dbStatus = "unreachable"
		}

		redisStatus := "connected"
		if deps.Redis == nil || deps.Redis.Ping(c.Request.Context()).Err() != nil {
			redisStatus = "unreachable"
		}

		statusCode := 200
		if dbStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	// Caregiver surface: no session, the whole household shares one chart.
	deps.ChildHandler.RegisterRoutes(apiV1)
	deps.TaskHandler.RegisterCaregiverRoutes(apiV1)

	// Child surface: scoped to the selected child via the session token.
	session := apiV1.Group("")
	session.Use(middleware.SessionMiddleware(deps.SessionService))
	{
		deps.TaskHandler.RegisterSessionRoutes(session)
		deps.CompletionHandler.RegisterRoutes(session)
		deps.ReviewHandler.RegisterRoutes(session)
	}

	return router
}
