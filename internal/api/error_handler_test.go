package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frasesia/frases-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
		body string
	}{
		{domain.ErrMissingCredentials, http.StatusBadRequest, `{"error":"Email y contraseña son obligatorios."}`},
		{fmt.Errorf("%w: tema is required", domain.ErrMissingTopic), http.StatusBadRequest, `{"error":"Debe ingresar un tema."}`},
		{domain.ErrMissingText, http.StatusBadRequest, `{"error":"El texto de la frase es obligatorio."}`},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"Credenciales inválidas."}`},
		{domain.ErrPhraseNotFound, http.StatusNotFound, `{"error":"Frase no encontrada o sin permiso."}`},
		{domain.ErrEmailTaken, http.StatusConflict, `{"error":"Email ya registrado."}`},
		{domain.ErrDuplicateRequest, http.StatusConflict, `{"error":"Solicitud duplicada."}`},
		{domain.ErrGenerationEmpty, http.StatusInternalServerError, `{"error":"La IA no devolvió texto válido."}`},
		{fmt.Errorf("%w: deadline exceeded", domain.ErrGenerationFailed), http.StatusInternalServerError, `{"error":"Error interno al generar la frase."}`},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, `{"error":"Error interno del servidor."}`},
		{echo.NewHTTPError(http.StatusUnauthorized, "Token requerido."), http.StatusUnauthorized, `{"error":"Token requerido."}`},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/frases", nil)
		rec := httptest.NewRecorder()
		handle(tt.err, e.NewContext(req, rec))

		if rec.Code != tt.code {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.code, rec.Code)
		}
		if got := rec.Body.String(); got != tt.body+"\n" {
			t.Fatalf("%v: expected body %s, got %s", tt.err, tt.body, got)
		}
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("committed response must not be rewritten, got %d %q", rec.Code, rec.Body.String())
	}
}
