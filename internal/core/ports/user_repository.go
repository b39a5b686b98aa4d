package ports

import (
	"context"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username uniqueness is guaranteed by a unique index; Create surfaces a
// duplicate as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users found, keyed by id. Missing ids are
	// silently absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	UpdateUsername(ctx context.Context, id, username string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (*domain.User, error)
}
