package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gemstack/inventory-system/internal/api/metrics"
	"github.com/gemstack/inventory-system/internal/core/domain"
	"github.com/gemstack/inventory-system/internal/core/ports"
)

// UserContextKey is where Authenticate stores the resolved user record.
const UserContextKey = "auth_user"

// Authenticate extracts the bearer credential from the Authorization header
// and resolves it to a persisted user record, which is stored in the request
// context for downstream handlers. Failures are returned as domain sentinels;
// the central error handler collapses all of them to a generic 401 so callers
// cannot probe why a token was rejected.
func Authenticate(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.GuardRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return domain.ErrMissingCredential
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GuardRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return domain.ErrMissingCredential
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired_token"
	case errors.Is(err, domain.ErrUnknownUser):
		return "unknown_user"
	default:
		return "invalid_token"
	}
}
