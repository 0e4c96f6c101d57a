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

// ServiceManager is the slice of the service layer this handler needs.
type ServiceManager interface {
	List(ctx context.Context, filter repositories.ServiceFilter) ([]models.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Service, error)
	Create(ctx context.Context, req services.CreateServiceRequest) (*models.Service, error)
	Update(ctx context.Context, id uuid.UUID, req services.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceHandler struct {
	service ServiceManager
}

func NewServiceHandler(service ServiceManager) *ServiceHandler {
	return &ServiceHandler{service: service}
}

// ListServices handles GET /api/services. Recognized filters: category,
// isActive. Anything else is ignored.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var filter repositories.ServiceFilter
	if v, ok := c.GetQuery("category"); ok {
		filter.Category = &v
	}
	if v, ok := c.GetQuery("isActive"); ok {
		b := v == "true"
		filter.IsActive = &b
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err, "Service not found")
		return
	}
	responses.SuccessList(c, len(items), items)
}

// GetService handles GET /api/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Service not found")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, "Service not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// CreateService handles POST /api/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req services.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Service not found")
		return
	}
	responses.Success(c, http.StatusCreated, item, "")
}

// UpdateService handles PUT /api/services/:id with a partial payload.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Service not found")
		return
	}

	var req services.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, "Service not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// DeleteService handles DELETE /api/services/:id. The confirmation carries no
// record body.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Service not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Service not found")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Service deleted successfully")
}
