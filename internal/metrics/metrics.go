package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FillRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_agent_fill_requests_total",
		Help: "Form-filling requests by outcome.",
	}, []string{"status"})

	LLMRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_agent_llm_requests_total",
		Help: "Model calls by provider and result.",
	}, []string{"provider", "result"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portfolio_agent_llm_request_duration_seconds",
		Help:    "Time spent waiting on the hosted model.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"provider"})
)
