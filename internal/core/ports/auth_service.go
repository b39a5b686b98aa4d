package ports

import (
	"context"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// AuthResult carries a freshly issued token together with the account it
// identifies. Handlers deliver the token both in the response body and as
// the jwt cookie.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}

// TokenVerifier checks a raw bearer token's signature and expiry in one step
// and returns its claims. No claim is exposed before verification passes.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
