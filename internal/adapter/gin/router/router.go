package router

import (
	"net/http"

	"user-api/internal/adapter/gin/handler"
	"user-api/internal/adapter/gin/middleware"
	"user-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// Unmatched routes and methods fall through to Gin's default 404.
// A trailing slash on /users is optional.
func SetupRouter(userHandler *handler.UserHandler, serviceName string, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	// /users/ is served directly instead of redirected
	router.RedirectTrailingSlash = false

	// Global middleware, also applied to 404 responses
	router.Use(middleware.Recovery(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	users := router.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/", userHandler.ListUsers)
		users.POST("/", userHandler.CreateUser)
	}

	return router
}
