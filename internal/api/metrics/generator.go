package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/frasesia/frases-api/internal/core/ports"
)

type instrumentedGenerator struct {
	next ports.PhraseGenerator
}

// InstrumentGenerator records GenerationDuration around every call to next.
func InstrumentGenerator(next ports.PhraseGenerator) ports.PhraseGenerator {
	return &instrumentedGenerator{next: next}
}

func (g *instrumentedGenerator) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	start := time.Now()
	text, err := g.next.Generate(ctx, req)

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case strings.TrimSpace(text) == "":
		outcome = "empty"
	}
	GenerationDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return text, err
}
