package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/domain"
)

// RequireRole gates a route on the resolved caller's role. It must run
// after Auth. The services re-check roles themselves; this keeps the
// routing table honest about who may reach each endpoint.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(userContextKey).(*domain.User)
			if user == nil {
				return domain.ErrTokenInvalid
			}
			if _, ok := allowed[user.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
