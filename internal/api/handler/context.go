package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/auth"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// absence means the route was wired without the middleware; reject rather
// than fall through with a zero identity.
func ctxIdentity(c echo.Context) (auth.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(auth.Identity)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
