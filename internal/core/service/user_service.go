package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orchidarium/catalog-api/internal/core/domain"
	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// UserService implements account operations beyond registration/login.
type UserService struct {
	users  ports.UserRepository
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewUserService(users ports.UserRepository, tokens *TokenIssuer, log zerolog.Logger) *UserService {
	return &UserService{users: users, tokens: tokens, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// CreateMember provisions an account on behalf of an admin. The created
// account is always a member.
func (s *UserService) CreateMember(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      false,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("member account created")
	return created, nil
}

// UpdateUsername renames the account and re-issues a token: the old token
// keeps working until expiry but carries the stale name.
func (s *UserService) UpdateUsername(ctx context.Context, id, username string) (*ports.AuthResult, error) {
	updated, err := s.users.UpdateUsername(ctx, id, username)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(updated)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("username", username).Msg("username updated")
	return &ports.AuthResult{Token: token, User: updated}, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.UpdatePassword(ctx, id, string(hash))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("password changed")
	return updated, nil
}
