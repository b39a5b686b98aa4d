package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("u%d", r.nextID)
	copy.CreatedAt = time.Now()
	copy.UpdatedAt = copy.CreatedAt
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	out := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = cloneUser(u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateUsername(_ context.Context, id, username string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for otherID, other := range r.users {
		if otherID != id && other.Username == username {
			return nil, domain.ErrUserExists
		}
	}
	u.Username = username
	u.UpdatedAt = time.Now()
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return cloneUser(u), nil
}

type stubLimiter struct {
	throttled bool
	failures  int
	resets    int
}

func (l *stubLimiter) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return l.throttled, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func newAuthService(repo *stubUserRepo, limiter *stubLimiter) (*AuthService, *TokenIssuer) {
	issuer := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, limiter, zerolog.Nop()), issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, issuer := newAuthService(repo, &stubLimiter{})

	result, err := svc.Register(context.Background(), "alice", "pass123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if result.User.IsAdmin {
		t.Fatalf("public registration must never create an admin")
	}

	claims, err := issuer.Verify(result.Token)
	if err != nil {
		t.Fatalf("token not verifiable: %v", err)
	}
	if claims.Username != "alice" || claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), &stubLimiter{})

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), &stubLimiter{})

	if _, err := svc.Register(context.Background(), "bob", "pass123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other1"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc, issuer := newAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" || result.User.Username != "carol" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset on success, got %d", limiter.resets)
	}

	if _, err := issuer.Verify(result.Token); err != nil {
		t.Fatalf("token not verifiable: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	limiter := &stubLimiter{}
	svc, _ := newAuthService(newStubUserRepo(), limiter)

	if _, err := svc.Register(context.Background(), "dave", "goodpass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected failure recorded, got %d", limiter.failures)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	limiter := &stubLimiter{}
	svc, _ := newAuthService(newStubUserRepo(), limiter)

	// Unknown usernames and wrong passwords must be indistinguishable.
	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected failure recorded, got %d", limiter.failures)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	limiter := &stubLimiter{throttled: true}
	svc, _ := newAuthService(newStubUserRepo(), limiter)

	if _, err := svc.Login(context.Background(), "eve", "whatever"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}
