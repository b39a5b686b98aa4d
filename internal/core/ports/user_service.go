package ports

import (
	"context"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// UserService defines account operations beyond registration/login.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	// CreateMember is the admin path for provisioning accounts; the created
	// account is always a member, never an admin.
	CreateMember(ctx context.Context, username, password string) (*domain.User, error)
	// UpdateUsername changes the username and re-issues a token, since the
	// old token still carries the stale name.
	UpdateUsername(ctx context.Context, id, username string) (*AuthResult, error)
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) (*domain.User, error)
}
