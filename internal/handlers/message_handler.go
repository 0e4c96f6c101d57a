package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repositories"
	"portfolio-api/internal/responses"
	"portfolio-api/internal/services"
)

type MessageManager interface {
	List(ctx context.Context, filter repositories.MessageFilter) ([]models.Message, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Message, error)
	Create(ctx context.Context, req services.CreateMessageRequest) (*models.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MessageHandler struct {
	service MessageManager
}

func NewMessageHandler(service MessageManager) *MessageHandler {
	return &MessageHandler{service: service}
}

// ListMessages handles GET /api/messages. Recognized filter: isRead.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	var filter repositories.MessageFilter
	if v, ok := c.GetQuery("isRead"); ok {
		b := v == "true"
		filter.IsRead = &b
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err, "Message not found")
		return
	}
	responses.SuccessList(c, len(items), items)
}

// GetMessage handles GET /api/messages/:id.
func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Message not found")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, "Message not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// CreateMessage handles POST /api/messages, the contact form submission.
// Success is reported as soon as the record is stored; the notification
// emails happen in the background.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Message not found")
		return
	}
	responses.Success(c, http.StatusCreated, item, "Message sent successfully! We will contact you soon.")
}

// MarkMessageRead handles PATCH /api/messages/:id/read. Idempotent.
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Message not found")
		return
	}

	item, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, "Message not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// DeleteMessage handles DELETE /api/messages/:id.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Message not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Message not found")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
