package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is a contact form submission. Rows are immutable after creation
// except for the is_read flag, flipped by the mark-read operation.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject" validate:"required,max=100"`
	Body      string    `json:"message" validate:"required,min=10,max=1000"`
	IsRead    bool      `json:"isRead"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Prepare trims all fields and lower-cases the email before validation.
func (m *Message) Prepare() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Subject = strings.TrimSpace(m.Subject)
	m.Body = strings.TrimSpace(m.Body)
}
