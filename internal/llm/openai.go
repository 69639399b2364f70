package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/joestump/portfolio-agent/internal/config"
)

const defaultOpenAIModel = "gpt-4o-mini"

type openaiModel struct {
	client *openai.Client
	model  string
}

// newOpenAIModel also serves OpenAI-compatible gateways; their base URL must
// include the version path, e.g. https://openrouter.ai/api/v1.
func newOpenAIModel(cfg *config.Config) *openaiModel {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	oc := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.LLM.BaseURL, "/")
	}
	return &openaiModel{
		client: openai.NewClientWithConfig(oc),
		model:  model,
	}
}

func (o *openaiModel) Name() string { return "OpenAI" }

func (o *openaiModel) Close() error { return nil }

func (o *openaiModel) Generate(ctx context.Context, p Prompt) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: openaiMessages(p),
	})
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

func openaiMessages(p Prompt) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(p.History)+2)
	if p.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.System})
	}
	for _, t := range p.History {
		role := openai.ChatMessageRoleUser
		if t.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}
	return append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: p.Human})
}
