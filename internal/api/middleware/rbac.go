package middleware

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
)

// RoleAdmin is the token role allowed to list every account.
const RoleAdmin = "admin"

var errForbidden = echo.NewHTTPError(http.StatusForbidden, "Forbidden.")

// RequireRole guards routes that expose other accounts, such as the user
// listing (password digests included). It must run after Auth, which stores
// the token's role claim. A request whose role is missing or not among roles
// is answered with 403 before the handler runs.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(string)
			if !ok || role == "" || !slices.Contains(roles, role) {
				return errForbidden
			}
			return next(c)
		}
	}
}

// AdminOnly restricts a route to tokens carrying RoleAdmin.
func AdminOnly() echo.MiddlewareFunc {
	return RequireRole(RoleAdmin)
}
