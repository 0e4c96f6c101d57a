package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repositories"
	"portfolio-api/internal/validation"
)

type CreatePortfolioRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Technologies   []string   `json:"technologies"`
	Images         []string   `json:"images"`
	ProjectURL     string     `json:"projectUrl"`
	GithubURL      string     `json:"githubUrl"`
	Client         string     `json:"client"`
	CompletionDate *time.Time `json:"completionDate"`
	IsFeatured     bool       `json:"isFeatured"`
	IsActive       *bool      `json:"isActive"`
}

type UpdatePortfolioRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Category       *string    `json:"category"`
	Technologies   *[]string  `json:"technologies"`
	Images         *[]string  `json:"images"`
	ProjectURL     *string    `json:"projectUrl"`
	GithubURL      *string    `json:"githubUrl"`
	Client         *string    `json:"client"`
	CompletionDate *time.Time `json:"completionDate"`
	IsFeatured     *bool      `json:"isFeatured"`
	IsActive       *bool      `json:"isActive"`
}

type PortfolioService struct {
	repo *repositories.PortfolioRepository
}

func NewPortfolioService(repo *repositories.PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

func (s *PortfolioService) List(ctx context.Context, filter repositories.PortfolioFilter) ([]models.Portfolio, error) {
	return s.repo.List(ctx, filter)
}

func (s *PortfolioService) Get(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PortfolioService) Create(ctx context.Context, req CreatePortfolioRequest) (*models.Portfolio, error) {
	item := &models.Portfolio{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Technologies: req.Technologies,
		Images:       req.Images,
		ProjectURL:   req.ProjectURL,
		GithubURL:    req.GithubURL,
		Client:       req.Client,
		IsFeatured:   req.IsFeatured,
		IsActive:     true,
	}
	if req.CompletionDate != nil {
		item.CompletionDate = *req.CompletionDate
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.Prepare()

	if err := validation.Struct(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PortfolioService) Update(ctx context.Context, id uuid.UUID, req UpdatePortfolioRequest) (*models.Portfolio, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Technologies != nil {
		item.Technologies = *req.Technologies
	}
	if req.Images != nil {
		item.Images = *req.Images
	}
	if req.ProjectURL != nil {
		item.ProjectURL = *req.ProjectURL
	}
	if req.GithubURL != nil {
		item.GithubURL = *req.GithubURL
	}
	if req.Client != nil {
		item.Client = *req.Client
	}
	if req.CompletionDate != nil {
		item.CompletionDate = *req.CompletionDate
	}
	if req.IsFeatured != nil {
		item.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.Prepare()

	if err := validation.Struct(item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
