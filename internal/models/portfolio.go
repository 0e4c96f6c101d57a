package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Portfolio matches the portfolio table and represents one previous project.
// List queries only ever return active items, featured first.
type Portfolio struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title" validate:"required,max=100"`
	Description    string    `json:"description" validate:"required,max=1000"`
	Category       string    `json:"category" validate:"omitempty,oneof=website web-app ecommerce mobile-app design other"`
	Technologies   []string  `json:"technologies"`
	Images         []string  `json:"images"`
	ProjectURL     string    `json:"projectUrl"`
	GithubURL      string    `json:"githubUrl"`
	Client         string    `json:"client" validate:"omitempty,max=100"`
	CompletionDate time.Time `json:"completionDate"`
	IsFeatured     bool      `json:"isFeatured"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Prepare trims free-text fields and fills defaults before validation.
func (p *Portfolio) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.ProjectURL = strings.TrimSpace(p.ProjectURL)
	p.GithubURL = strings.TrimSpace(p.GithubURL)
	p.Client = strings.TrimSpace(p.Client)
	for i, t := range p.Technologies {
		p.Technologies[i] = strings.TrimSpace(t)
	}
	for i, img := range p.Images {
		p.Images[i] = strings.TrimSpace(img)
	}
	if p.Category == "" {
		p.Category = "website"
	}
	if p.CompletionDate.IsZero() {
		p.CompletionDate = time.Now().UTC()
	}
}
