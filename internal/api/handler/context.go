package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gemstack/inventory-system/internal/api/middleware"
	"github.com/gemstack/inventory-system/internal/core/domain"
)

// currentUser extracts the user record injected by the Authenticate
// middleware. Its presence proves the guard ran; handlers on protected
// routes must fail closed when it is absent.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
