package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service matches the services table.
// Columns: id, title, description, icon, price, features, category, is_active, created_at, updated_at
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=100"`
	Description string    `json:"description" validate:"required,max=500"`
	Icon        string    `json:"icon"`
	Price       string    `json:"price"`
	Features    []string  `json:"features"`
	Category    string    `json:"category" validate:"omitempty,oneof=web-development mobile-app design consulting other"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Prepare trims free-text fields and fills defaults before validation.
func (s *Service) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Title = strings.TrimSpace(s.Title)
	s.Description = strings.TrimSpace(s.Description)
	for i, f := range s.Features {
		s.Features[i] = strings.TrimSpace(f)
	}
	if s.Icon == "" {
		s.Icon = "🎯"
	}
	if s.Price == "" {
		s.Price = "Contact for pricing"
	}
	if s.Category == "" {
		s.Category = "other"
	}
}
