// Package metrics instruments the session pipeline with Prometheus
// counters. The core never serves HTTP; the registry is handed to whatever
// host wants to expose it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the session counters with their registry.
type Metrics struct {
	Registry *prometheus.Registry

	CartAdds             prometheus.Counter
	ValidationRejections prometheus.Counter
	PersistFailures      prometheus.Counter
	HydrationFallbacks   prometheus.Counter
	FavoriteToggles      prometheus.Counter
}

// New creates the session counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		CartAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "session",
			Name:      "cart_adds_total",
			Help:      "Products added to the cart, including quantity increments.",
		}),
		ValidationRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "session",
			Name:      "validation_rejections_total",
			Help:      "Mutations rejected because the descriptor failed validation.",
		}),
		PersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "session",
			Name:      "persist_failures_total",
			Help:      "Best-effort writes to the profile store that failed.",
		}),
		HydrationFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "session",
			Name:      "hydration_fallbacks_total",
			Help:      "Hydrations that fell back to an empty collection.",
		}),
		FavoriteToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "techmart",
			Subsystem: "session",
			Name:      "favorite_toggles_total",
			Help:      "Favorite set toggles applied.",
		}),
	}

	m.Registry.MustRegister(
		m.CartAdds,
		m.ValidationRejections,
		m.PersistFailures,
		m.HydrationFallbacks,
		m.FavoriteToggles,
	)
	return m
}
