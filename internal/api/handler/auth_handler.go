package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// AuthHandler handles public registration and login. On success the token
// travels twice: in the envelope body and as the jwt cookie.
type AuthHandler struct {
	auth         ports.AuthService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(auth ports.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// Register creates a member account and returns its first token.
//
// @Summary      Register a new member account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /public/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	setTokenCookie(c, result.Token, h.cookieTTL, h.secureCookie)
	return respond(c, http.StatusCreated, "User registered successfully", result.Token)
}

// Login authenticates an account and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      429   {object}  envelope
// @Router       /public/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	setTokenCookie(c, result.Token, h.cookieTTL, h.secureCookie)
	return respond(c, http.StatusOK, "Login successful", result.Token)
}

// setTokenCookie mirrors the body token as a same-origin cookie. HttpOnly
// always; Secure only in production so local development over plain HTTP
// keeps working.
func setTokenCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
	})
}
