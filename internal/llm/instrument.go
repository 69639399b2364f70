package llm

import (
	"context"
	"time"

	"github.com/joestump/portfolio-agent/internal/metrics"
)

// Instrument records call counts and latency for m.
func Instrument(m ChatModel) ChatModel {
	return &instrumentedModel{ChatModel: m}
}

type instrumentedModel struct {
	ChatModel
}

func (i *instrumentedModel) Generate(ctx context.Context, p Prompt) (string, error) {
	provider := i.Name()
	start := time.Now()
	out, err := i.ChatModel.Generate(ctx, p)
	metrics.LLMRequestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.LLMRequestsTotal.WithLabelValues(provider, result).Inc()
	return out, err
}
