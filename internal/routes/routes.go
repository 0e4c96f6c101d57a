package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	serviceHandler *handlers.ServiceHandler,
	portfolioHandler *handlers.PortfolioHandler,
	messageHandler *handlers.MessageHandler,
	userHandler *handlers.UserHandler,
	adminKey string,
) {
	api := router.Group("/api")

	NewServiceRoutes(serviceHandler).RegisterRoutes(api)
	NewPortfolioRoutes(portfolioHandler).RegisterRoutes(api)
	NewMessageRoutes(messageHandler).RegisterRoutes(api)
	NewUserRoutes(userHandler, adminKey).RegisterRoutes(api)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Portfolio API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"services":  "/api/services",
				"portfolio": "/api/portfolio",
				"messages":  "/api/messages",
				"users":     "/api/users",
				"health":    "/api/health",
			},
		})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": fmt.Sprintf("Route %s not found", c.Request.URL.Path),
		})
	})
}
