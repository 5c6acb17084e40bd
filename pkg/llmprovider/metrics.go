package llmprovider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealtracker",
		Subsystem: "llm",
		Name:      "requests_total",
		Help:      "Chat completion attempts by provider and outcome.",
	}, []string{"provider", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dealtracker",
		Subsystem: "llm",
		Name:      "request_duration_seconds",
		Help:      "Latency of chat completion attempts.",
		Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"provider"})

	tokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealtracker",
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "Tokens reported by providers, split by direction.",
	}, []string{"provider", "direction"})
)
