// Package metrics defines the custom Prometheus metrics of the frases API.
// It is the single source of truth for metric names, labels and help strings.
// HTTP request metrics come from the echoprometheus middleware.
//
// Collectors are created unregistered; Register attaches them to the registry
// that serves /metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "frases"

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsRegisteredTotal counts successful registrations.
var AccountsRegisteredTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Phrase metrics ────────────────────────────────────────────────────────────

// PhrasesGeneratedTotal counts create-via-generation requests.
// Labels:
//   - language: resolved target language code ("es", "it")
//   - result: "success", "invalid", "duplicate", "empty", "generator_error" or "error"
var PhrasesGeneratedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "phrases_generated_total",
		Help:      "Total number of phrase generation requests, by language and result.",
	},
	[]string{"language", "result"},
)

// GenerationDuration measures calls to the external text generator.
// Label:
//   - outcome: "ok", "empty" or "error"
var GenerationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of calls to the text generation provider.",
		Buckets:   []float64{.1, .25, .5, 1, 2, 4, 8, 16, 32},
	},
	[]string{"outcome"},
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AccountsRegisteredTotal,
		LoginsTotal,
		PhrasesGeneratedTotal,
		GenerationDuration,
	}
}

// Register adds every custom collector to reg. Collectors already present in
// reg are skipped, so building several routers on one registry is allowed.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
