package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/frasesia/frases-api/internal/core/domain"
	"github.com/frasesia/frases-api/internal/core/ports"
)

// IdentityKey is the echo context key holding the verified domain.Identity.
const IdentityKey = "identity"

// Auth verifies the bearer token and injects the caller identity into context.
// A missing token is 401; a token that fails verification is 403.
func Auth(tokens ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token requerido.")
			}

			id, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Token inválido o expirado.").SetInternal(err)
			}

			c.Set(IdentityKey, *id)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(IdentityKey).(domain.Identity)
	return id, ok
}

// bearerToken returns the credential of a "Bearer <token>" header. Any other
// scheme, such as "Basic" or "Token", counts as no credential and yields 401.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
