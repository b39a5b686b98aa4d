package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orchidarium/catalog-api/internal/core/ports"
)

// Authenticate extracts the bearer token, verifies signature and expiry as a
// single step, and injects the verified claims into the request context.
// No claim is trusted before verification passes.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
			c.Set("is_admin", claims.IsAdmin)

			return next(c)
		}
	}
}

// RequireAdmin allows only admin identities. Must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return requireRole(true)
}

// RequireMember allows only member identities. Admins are rejected here:
// the admin/member split is mutually exclusive, an admin cannot act as a
// member through this gate.
func RequireMember() echo.MiddlewareFunc {
	return requireRole(false)
}

func requireRole(admin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get("is_admin").(bool)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if isAdmin != admin {
				return echo.NewHTTPError(http.StatusForbidden, "not allowed")
			}
			return next(c)
		}
	}
}
