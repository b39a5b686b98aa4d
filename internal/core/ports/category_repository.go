package ports

import (
	"context"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	// FindByID returns the category regardless of lifecycle status.
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Category, error)
	// FindAllActive excludes soft-deleted categories.
	FindAllActive(ctx context.Context) ([]*domain.Category, error)
	UpdateName(ctx context.Context, id, name string) (*domain.Category, error)
	// SoftDelete marks the category DELETED and returns the updated record.
	SoftDelete(ctx context.Context, id string) (*domain.Category, error)
}
