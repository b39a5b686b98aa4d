package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

// ctxClaims extracts the verified claims injected by the Authenticate
// middleware. A missing user id means the middleware did not run; fail
// closed with 401 rather than reaching a service with no identity.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	isAdmin, _ := c.Get("is_admin").(bool)

	return &domain.Claims{UserID: userID, Username: username, IsAdmin: isAdmin}, nil
}
