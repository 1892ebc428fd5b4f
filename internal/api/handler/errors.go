package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido.")
