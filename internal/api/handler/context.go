package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frasesia/frases-api/internal/api/middleware"
	"github.com/frasesia/frases-api/internal/core/domain"
)

// callerIdentity extracts the identity injected by the Auth middleware and
// fails fast if a protected route was wired without it.
func callerIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.AccountID <= 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Token requerido.")
	}
	return id, nil
}
