package handler

import (
	"time"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,username"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,username"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required,min=5"`
	NewPassword string `json:"newPassword" validate:"required,min=5"`
}

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type orchidRequest struct {
	Name      string `json:"name"      validate:"required,min=3,max=200"`
	Image     string `json:"image"     validate:"required,url"`
	IsNatural *bool  `json:"isNatural" validate:"required"`
	Origin    string `json:"origin"    validate:"required,min=3,max=20"`
	Category  string `json:"category"  validate:"required"`
}

type commentRequest struct {
	Text string `json:"comment" validate:"required,max=200"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type categoryRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"comment"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type orchidResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Image     string              `json:"image"`
	IsNatural bool                `json:"isNatural"`
	Origin    string              `json:"origin"`
	Slug      string              `json:"slug"`
	Category  categoryRefResponse `json:"category"`
	Comments  []commentResponse   `json:"comments"`
}

// orchidSummaryResponse is the public listing item: no comments, no
// provenance fields.
type orchidSummaryResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Image    string              `json:"image"`
	Slug     string              `json:"slug"`
	Category categoryRefResponse `json:"category"`
}

func (r orchidRequest) toInput() ports.OrchidInput {
	return ports.OrchidInput{
		Name:       r.Name,
		Image:      r.Image,
		IsNatural:  r.IsNatural != nil && *r.IsNatural,
		Origin:     r.Origin,
		CategoryID: r.Category,
	}
}
