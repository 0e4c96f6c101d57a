package services

import (
	"context"

	"github.com/google/uuid"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repositories"
	"portfolio-api/internal/validation"
)

type CreateServiceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Category    string   `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateServiceRequest carries a partial payload; nil fields keep their
// stored value.
type UpdateServiceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Price       *string   `json:"price"`
	Features    *[]string `json:"features"`
	Category    *string   `json:"category"`
	IsActive    *bool     `json:"isActive"`
}

type ServiceService struct {
	repo *repositories.ServiceRepository
}

func NewServiceService(repo *repositories.ServiceRepository) *ServiceService {
	return &ServiceService{repo: repo}
}

func (s *ServiceService) List(ctx context.Context, filter repositories.ServiceFilter) ([]models.Service, error) {
	return s.repo.List(ctx, filter)
}

func (s *ServiceService) Get(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ServiceService) Create(ctx context.Context, req CreateServiceRequest) (*models.Service, error) {
	service := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Price:       req.Price,
		Features:    req.Features,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.Prepare()

	if err := validation.Struct(service); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// Update merges the partial payload over the stored record and re-validates
// the result before writing it back.
func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*models.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		service.Title = *req.Title
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Icon != nil {
		service.Icon = *req.Icon
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Features != nil {
		service.Features = *req.Features
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.Prepare()

	if err := validation.Struct(service); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
