package ports

import (
	"context"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// CategoryService defines category management operations (admin only).
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id, name string) (*domain.Category, error)
	// Delete soft-deletes: the record stays in the store with status
	// DELETED and disappears from List.
	Delete(ctx context.Context, id string) (*domain.Category, error)
}
