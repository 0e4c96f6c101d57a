package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User matches the users table. There is no login flow; these rows back the
// team/about section and are managed through the admin-key-gated endpoints.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=50"`
	Email     string    `json:"email" validate:"required,email"`
	Role      string    `json:"role" validate:"omitempty,oneof=admin member"`
	Bio       string    `json:"bio" validate:"omitempty,max=500"`
	Avatar    string    `json:"avatar" validate:"omitempty,url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Prepare trims fields, lower-cases the email and fills the default role.
func (u *User) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Bio = strings.TrimSpace(u.Bio)
	u.Avatar = strings.TrimSpace(u.Avatar)
	if u.Role == "" {
		u.Role = "member"
	}
}
