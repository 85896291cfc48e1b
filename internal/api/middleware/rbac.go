package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/gemstack/inventory-system/internal/api/metrics"
	"github.com/gemstack/inventory-system/internal/core/domain"
)

// RequireRole enforces role-based access control: the resolved user's role
// must be a member of the allow-list. Roles are not ranked, so a route that
// admits managers does not implicitly admit admins unless listed. The 403
// response names the required roles; at that point the caller is already
// authenticated, so the allow-list is not a secret.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				// Authenticate did not run; treat as unauthenticated.
				metrics.GuardRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return domain.ErrMissingCredential
			}

			if _, ok := allowed[user.Role]; !ok {
				metrics.GuardRejectionsTotal.WithLabelValues("forbidden").Inc()
				return fmt.Errorf("%w, required roles: %v", domain.ErrForbidden, allowedRoles)
			}
			return next(c)
		}
	}
}
