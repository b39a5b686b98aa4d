package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// UserHandler handles account management and member self-service.
type UserHandler struct {
	users        ports.UserService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewUserHandler(users ports.UserService, cookieTTL time.Duration, secureCookie bool) *UserHandler {
	return &UserHandler{users: users, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// Me returns the caller's own profile. Any authenticated identity may call
// it, regardless of role.
//
// @Summary      Get own profile
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /accounts/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toUserResponse(user))
}

// List returns all accounts without credentials or role flags.
//
// @Summary      List all accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /accounts/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toUserResponses(users))
}

// Create provisions a member account on behalf of an admin.
//
// @Summary      Create a member account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /accounts/ [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.CreateMember(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Created", toUserResponse(user))
}

// Update changes the caller's username. A fresh token is returned (and set
// as cookie) because the old one carries the stale name.
//
// @Summary      Update own username
// @Tags         member
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "New username"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /member/update [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.users.UpdateUsername(c.Request().Context(), claims.UserID, req.Username)
	if err != nil {
		return err
	}

	setTokenCookie(c, result.Token, h.cookieTTL, h.secureCookie)
	return respond(c, http.StatusOK, "User updated", result.Token)
}

// ChangePassword verifies the old password before storing the new one.
//
// @Summary      Change own password
// @Tags         member
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Old and new passwords"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /member/password-change [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.ChangePassword(c.Request().Context(), claims.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Success", toUserResponse(user))
}
