package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/frasesia/frases-api/internal/api/metrics"
	"github.com/frasesia/frases-api/internal/core/domain"
	"github.com/frasesia/frases-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients make phrase generation safe to retry.
const HeaderIdempotencyKey = "Idempotency-Key"

// PhraseHandler handles HTTP requests for the owner-scoped phrase resource.
type PhraseHandler struct {
	service ports.PhraseService
}

func NewPhraseHandler(service ports.PhraseService) *PhraseHandler {
	return &PhraseHandler{service: service}
}

// --- Request / Response types ---

type phraseResponse struct {
	ID     int64  `json:"id"`
	Text   string `json:"texto"`
	Author string `json:"autor"`
}

type generatePhraseRequest struct {
	Topic string `json:"tema" validate:"required"`
	Lang  string `json:"lang"`
}

type generatePhraseResponse struct {
	Message string `json:"mensaje"`
	Text    string `json:"texto"`
	Author  string `json:"autor"`
}

type updatePhraseRequest struct {
	Text   string `json:"texto" validate:"required"`
	Author string `json:"autor"`
}

type messageResponse struct {
	Message string `json:"mensaje"`
}

// List handles GET /api/frases.
//
// @Summary      List the caller's phrases, newest first
// @Tags         frases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   phraseResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/frases [get]
func (h *PhraseHandler) List(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return err
	}

	phrases, err := h.service.List(c.Request().Context(), id.AccountID)
	if err != nil {
		return err
	}

	resp := make([]phraseResponse, 0, len(phrases))
	for _, p := range phrases {
		resp = append(resp, phraseResponse{ID: p.ID, Text: p.Text, Author: p.Author})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/frase. The phrase text always comes from the
// generator; clients only choose the topic and language.
//
// @Summary      Generate and store a phrase on a topic
// @Tags         frases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Retry-safe request key"
// @Param        body             body      generatePhraseRequest  true   "Topic and language (es, it)"
// @Success      201              {object}  generatePhraseResponse
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /api/frase [post]
func (h *PhraseHandler) Create(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req generatePhraseRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMissingTopic, err)
	}

	lang := domain.ResolveLanguage(req.Lang)
	phrase, err := h.service.Generate(c.Request().Context(), ports.GeneratePhraseInput{
		OwnerID:        id.AccountID,
		Topic:          req.Topic,
		Lang:           req.Lang,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		metrics.PhrasesGeneratedTotal.WithLabelValues(lang.Code, generateResult(err)).Inc()
		return err
	}
	metrics.PhrasesGeneratedTotal.WithLabelValues(lang.Code, "success").Inc()

	return c.JSON(http.StatusCreated, generatePhraseResponse{
		Message: "Frase generada y guardada",
		Text:    phrase.Text,
		Author:  phrase.Author,
	})
}

// Update handles PUT /api/frase/:id.
//
// @Summary      Replace text and author of an owned phrase
// @Tags         frases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Phrase id"
// @Param        body  body      updatePhraseRequest  true  "Replacement text and author"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/frase/{id} [put]
func (h *PhraseHandler) Update(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return err
	}
	phraseID, err := phraseIDParam(c)
	if err != nil {
		return err
	}

	var req updatePhraseRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMissingText, err)
	}

	if err := h.service.Update(c.Request().Context(), ports.UpdatePhraseInput{
		OwnerID:  id.AccountID,
		PhraseID: phraseID,
		Text:     req.Text,
		Author:   req.Author,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Frase actualizada"})
}

// Delete handles DELETE /api/frase/:id.
//
// @Summary      Delete an owned phrase
// @Tags         frases
// @Security     BearerAuth
// @Param        id   path  int  true  "Phrase id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/frase/{id} [delete]
func (h *PhraseHandler) Delete(c echo.Context) error {
	id, err := callerIdentity(c)
	if err != nil {
		return err
	}
	phraseID, err := phraseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id.AccountID, phraseID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// phraseIDParam parses the :id path segment. Ids that cannot exist are
// reported exactly like a phrase that is missing or not owned.
func phraseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrPhraseNotFound
	}
	return id, nil
}

func generateResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingTopic):
		return "invalid"
	case errors.Is(err, domain.ErrDuplicateRequest):
		return "duplicate"
	case errors.Is(err, domain.ErrGenerationEmpty):
		return "empty"
	case errors.Is(err, domain.ErrGenerationFailed):
		return "generator_error"
	default:
		return "error"
	}
}
