package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/frasesia/frases-api/internal/core/domain"
	"github.com/frasesia/frases-api/internal/core/ports"
)

const defaultGenerationTimeout = 30 * time.Second

type PhraseService struct {
	repo      ports.PhraseRepository
	generator ports.PhraseGenerator
	guard     ports.RequestGuard // nil disables Idempotency-Key handling
	timeout   time.Duration
	log       zerolog.Logger
}

func NewPhraseService(
	repo ports.PhraseRepository,
	generator ports.PhraseGenerator,
	guard ports.RequestGuard,
	timeout time.Duration,
	log zerolog.Logger,
) *PhraseService {
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}
	return &PhraseService{repo: repo, generator: generator, guard: guard, timeout: timeout, log: log}
}

// List returns the owner's phrases, newest first. An owner without phrases
// gets an empty, non-nil slice.
func (s *PhraseService) List(ctx context.Context, ownerID int64) ([]domain.Phrase, error) {
	phrases, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list phrases: %w", err)
	}
	if phrases == nil {
		phrases = []domain.Phrase{}
	}
	return phrases, nil
}

// Generate asks the generator for a phrase on the topic and stores it for the
// owner. Nothing is stored when the generator fails or returns blank text.
func (s *PhraseService) Generate(ctx context.Context, in ports.GeneratePhraseInput) (*domain.Phrase, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, domain.ErrMissingTopic
	}
	lang := domain.ResolveLanguage(in.Lang)

	claimed := false
	if in.IdempotencyKey != "" && s.guard != nil {
		ok, err := s.guard.Claim(ctx, in.OwnerID, in.IdempotencyKey)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Int64("account_id", in.OwnerID).Msg("idempotency claim failed, processing anyway")
		case !ok:
			return nil, domain.ErrDuplicateRequest
		default:
			claimed = true
		}
	}

	phrase, err := s.generateAndStore(ctx, in.OwnerID, topic, lang)
	if err != nil && claimed {
		// Let the client retry with the same key.
		if relErr := s.guard.Release(context.WithoutCancel(ctx), in.OwnerID, in.IdempotencyKey); relErr != nil {
			s.log.Warn().Err(relErr).Int64("account_id", in.OwnerID).Msg("failed to release idempotency key")
		}
	}
	return phrase, err
}

func (s *PhraseService) generateAndStore(ctx context.Context, ownerID int64, topic string, lang domain.Language) (*domain.Phrase, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.Generate(genCtx, ports.GenerationRequest{
		Topic:    topic,
		Language: lang,
		Prompt:   domain.InspirationPrompt(topic, lang),
	})
	if err != nil {
		s.log.Error().Err(err).Int64("account_id", ownerID).Str("language", lang.Code).Msg("phrase generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		s.log.Error().Int64("account_id", ownerID).Str("language", lang.Code).Msg("generator returned empty text")
		return nil, domain.ErrGenerationEmpty
	}

	phrase := &domain.Phrase{
		Text:      text,
		Author:    domain.GeneratedAuthor,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, phrase); err != nil {
		return nil, fmt.Errorf("store phrase: %w", err)
	}

	s.log.Info().Int64("account_id", ownerID).Int64("phrase_id", phrase.ID).Str("language", lang.Code).Msg("phrase generated")
	return phrase, nil
}

func (s *PhraseService) Update(ctx context.Context, in ports.UpdatePhraseInput) error {
	if strings.TrimSpace(in.Text) == "" {
		return domain.ErrMissingText
	}
	if err := s.repo.Update(ctx, in.OwnerID, in.PhraseID, in.Text, in.Author); err != nil {
		if errors.Is(err, domain.ErrPhraseNotFound) {
			return err
		}
		return fmt.Errorf("update phrase: %w", err)
	}
	return nil
}

func (s *PhraseService) Delete(ctx context.Context, ownerID, phraseID int64) error {
	if err := s.repo.Delete(ctx, ownerID, phraseID); err != nil {
		if errors.Is(err, domain.ErrPhraseNotFound) {
			return err
		}
		return fmt.Errorf("delete phrase: %w", err)
	}
	return nil
}
