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

type UserManager interface {
	List(ctx context.Context, filter repositories.UserFilter) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, req services.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req services.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserHandler struct {
	service UserManager
}

func NewUserHandler(service UserManager) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/users. Recognized filter: role.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var filter repositories.UserFilter
	if v, ok := c.GetQuery("role"); ok {
		filter.Role = &v
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.Error(c, err, "User not found")
		return
	}
	responses.SuccessList(c, len(items), items)
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "User not found")
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, "User not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "User not found")
		return
	}
	responses.Success(c, http.StatusCreated, item, "")
}

// UpdateUser handles PUT /api/users/:id with a partial payload.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "User not found")
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, "User not found")
		return
	}
	responses.Success(c, http.StatusOK, item, "")
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusNotFound, "User not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "User not found")
		return
	}
	responses.Success(c, http.StatusOK, nil, "User deleted successfully")
}
