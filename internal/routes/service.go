package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-api/internal/handlers"
)

type ServiceRoutes struct {
	handler *handlers.ServiceHandler
}

func NewServiceRoutes(handler *handlers.ServiceHandler) *ServiceRoutes {
	return &ServiceRoutes{handler: handler}
}

func (r *ServiceRoutes) RegisterRoutes(router *gin.RouterGroup) {
	services := router.Group("/services")
	{
		services.GET("", r.handler.ListServices)
		services.GET("/:id", r.handler.GetService)
		services.POST("", r.handler.CreateService)
		services.PUT("/:id", r.handler.UpdateService)
		services.DELETE("/:id", r.handler.DeleteService)
	}
}
