package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/joestump/portfolio-agent/internal/config"
)

const (
	defaultAnthropicModel = anthropic.ModelClaude3_7SonnetLatest
	anthropicMaxTokens    = 2048
)

type anthropicModel struct {
	client anthropic.Client
	model  anthropic.Model
}

func newAnthropicModel(cfg *config.Config) *anthropicModel {
	model := anthropic.Model(cfg.LLM.Model)
	if model == "" {
		model = defaultAnthropicModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}
	return &anthropicModel{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (a *anthropicModel) Name() string { return "Claude" }

func (a *anthropicModel) Close() error { return nil }

func (a *anthropicModel) Generate(ctx context.Context, p Prompt) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropicParams(a.model, p))
	if err != nil {
		return "", fmt.Errorf("anthropic request: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("anthropic: %w", ErrEmptyResponse)
	}
	return sb.String(), nil
}

func anthropicParams(model anthropic.Model, p Prompt) anthropic.MessageNewParams {
	msgs := make([]anthropic.MessageParam, 0, len(p.History)+1)
	for _, t := range p.History {
		block := anthropic.NewTextBlock(t.Content)
		if t.Role == RoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}
	msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(p.Human)))

	params := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: anthropicMaxTokens,
		Messages:  msgs,
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}
	return params
}
