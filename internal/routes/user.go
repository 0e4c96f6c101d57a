package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-api/internal/handlers"
	"portfolio-api/internal/middlewares"
)

type UserRoutes struct {
	handler  *handlers.UserHandler
	adminKey string
}

func NewUserRoutes(handler *handlers.UserHandler, adminKey string) *UserRoutes {
	return &UserRoutes{handler: handler, adminKey: adminKey}
}

func (r *UserRoutes) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	// The user resource has no login flow of its own, so the whole group sits
	// behind the shared admin key.
	users.Use(middlewares.RequireAdminKey(r.adminKey))
	{
		users.GET("", r.handler.ListUsers)
		users.GET("/:id", r.handler.GetUser)
		users.POST("", r.handler.CreateUser)
		users.PUT("/:id", r.handler.UpdateUser)
		users.DELETE("/:id", r.handler.DeleteUser)
	}
}
