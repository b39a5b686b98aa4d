package domain

import "time"

// CategoryStatus is the lifecycle state of a category.
type CategoryStatus string

const (
	CategoryActive  CategoryStatus = "ACTIVE"
	CategoryDeleted CategoryStatus = "DELETED"
)

// Category groups orchids by kind. Categories are never hard-deleted:
// deletion flips the status to DELETED and listings filter it out, so
// existing orchids keep a resolvable reference.
type Category struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Status    CategoryStatus `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
