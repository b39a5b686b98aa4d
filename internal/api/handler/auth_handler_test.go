package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/domain"
	"github.com/orchidarium/catalog-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, username, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, username, password)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func jwtCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == "jwt" {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.AuthResult{Token: "token123", User: &domain.User{ID: "u1", Username: username}}, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, rec := newTestContext(t, http.MethodPost, "/public/register", `{"username":"alice","password":"secret1"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["status"] != float64(http.StatusCreated) {
		t.Fatalf("body status must mirror transport status, got %v", resp["status"])
	}
	if resp["data"] != "token123" {
		t.Fatalf("expected token in data, got %v", resp["data"])
	}

	cookie := jwtCookie(rec)
	if cookie == nil || cookie.Value != "token123" {
		t.Fatalf("expected jwt cookie, got %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("jwt cookie must be HttpOnly")
	}
	if cookie.Secure {
		t.Fatalf("jwt cookie must not be Secure outside production")
	}
}

func TestAuthHandler_Register_SecureCookieInProduction(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return &ports.AuthResult{Token: "token123", User: &domain.User{ID: "u1", Username: username}}, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, true)

	c, rec := newTestContext(t, http.MethodPost, "/public/register", `{"username":"alice","password":"secret1"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	cookie := jwtCookie(rec)
	if cookie == nil || !cookie.Secure {
		t.Fatalf("expected Secure jwt cookie in production, got %+v", cookie)
	}
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	// Username too short, password too short, and a forbidden character.
	c, _ := newTestContext(t, http.MethodPost, "/public/register", `{"username":"a!","password":"123"}`)

	err := handler.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) == 0 {
		t.Fatalf("expected field messages")
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/public/register", "not-json")

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.AuthResult{Token: "token456", User: &domain.User{ID: "u1", Username: username}}, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, rec := newTestContext(t, http.MethodPost, "/public/login", `{"username":"alice","password":"secret1"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login successful" || resp["data"] != "token456" {
		t.Fatalf("unexpected body: %v", resp)
	}

	if cookie := jwtCookie(rec); cookie == nil || cookie.Value != "token456" {
		t.Fatalf("expected jwt cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/public/login", `{"username":"alice"}`)

	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassThrough(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, time.Hour, false)

	c, _ := newTestContext(t, http.MethodPost, "/public/login", `{"username":"alice","password":"bad"}`)

	// Domain errors flow untouched to the central error handler.
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
