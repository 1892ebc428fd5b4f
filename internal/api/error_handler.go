package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frasesia/frases-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (auth gate, bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Email y contraseña son obligatorios."
	case errors.Is(err, domain.ErrMissingTopic):
		return http.StatusBadRequest, "Debe ingresar un tema."
	case errors.Is(err, domain.ErrMissingText):
		return http.StatusBadRequest, "El texto de la frase es obligatorio."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Credenciales inválidas."
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "Token inválido o expirado."
	case errors.Is(err, domain.ErrPhraseNotFound):
		return http.StatusNotFound, "Frase no encontrada o sin permiso."
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email ya registrado."
	case errors.Is(err, domain.ErrDuplicateRequest):
		return http.StatusConflict, "Solicitud duplicada."
	case errors.Is(err, domain.ErrGenerationEmpty):
		return http.StatusInternalServerError, "La IA no devolvió texto válido."
	case errors.Is(err, domain.ErrGenerationFailed):
		log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("generation failed")
		return http.StatusInternalServerError, "Error interno al generar la frase."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor."
}
