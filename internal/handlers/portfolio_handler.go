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

type PortfolioManager interface {
	List(ctx context.Context, filter repositories.PortfolioFilter) ([]models.Portfolio, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error)
	Create(ctx context.Context, req services.CreatePortfolioRequest) (*models.Portfolio, error)
	Update(ctx context.Context, id uuid.UUID, req services.UpdatePortfolioRequest) (*models.Portfolio, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PortfolioHandler struct {
	service PortfolioManager
}

func NewPortfolioHandler(service PortfolioManager) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// ListPortfolio handles GET /api/portfolio. Recognized filters: category,
// isFeatured. The list is always restricted to active items.
func (h *PortfolioHandler) ListPortfolio(c *gin.Context) {
	var filter repositories.PortfolioFilter
	if v, ok := c.GetQuery("category"); ok {
		filter.Category = &v
	}
	if v, ok := c.GetQuery("isFeatured"); ok {
		b := v == "true"
		filter.IsFeatured = &b
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err, "Project not found")
		return
	}
	responses.SuccessList(c, len(items), items)
}

// GetPortfolio handles GET /api/portfolio/:id.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, "Project not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// CreatePortfolio handles POST /api/portfolio.
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req services.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Project not found")
		return
	}
	responses.Success(c, http.StatusCreated, item, "")
}

// UpdatePortfolio handles PUT /api/portfolio/:id with a partial payload.
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	var req services.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, "Project not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// DeletePortfolio handles DELETE /api/portfolio/:id.
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Project not found")
		return
	}
	responses.Success(c, http.StatusOK, nil, "Project deleted successfully")
}
