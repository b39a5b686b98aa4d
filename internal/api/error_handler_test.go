package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orchidarium/catalog-api/internal/api/handler"
	"github.com/orchidarium/catalog-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{"orchid not found", domain.ErrOrchidNotFound, http.StatusNotFound, "orchid not found"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"category exists", domain.ErrCategoryExists, http.StatusBadRequest, "category already exists"},
		{"orchid exists", domain.ErrOrchidExists, http.StatusBadRequest, "orchid already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid credentials"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "not allowed"},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest, "password does not match"},
		{"comment limit", domain.ErrCommentLimit, http.StatusBadRequest, "comment limit reached"},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, code)
			}
			if body["message"] != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, body["message"])
			}
			if body["status"] != float64(tc.status) {
				t.Fatalf("body status must mirror transport status, got %v", body["status"])
			}
		})
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	err := &handler.ValidationError{Fields: []string{"username is required"}}

	code, body := render(t, err)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if body["message"] != "Validation error" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 || data[0] != "username is required" {
		t.Fatalf("expected field messages in data, got %v", body["data"])
	}
}

func TestErrorHandler_RouterNotFound(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body["message"] != "Not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, body := render(t, errors.New("mongo exploded"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// Internal details must not leak to the client.
	if body["message"] != "internal server error" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
