package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-api/internal/handlers"
)

type MessageRoutes struct {
	handler *handlers.MessageHandler
}

func NewMessageRoutes(handler *handlers.MessageHandler) *MessageRoutes {
	return &MessageRoutes{handler: handler}
}

func (r *MessageRoutes) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	{
		messages.GET("", r.handler.ListMessages)
		messages.GET("/:id", r.handler.GetMessage)
		messages.POST("", r.handler.CreateMessage)
		messages.PATCH("/:id/read", r.handler.MarkMessageRead)
		messages.DELETE("/:id", r.handler.DeleteMessage)
	}
}
