package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joestump/portfolio-agent/internal/config"
)

var (
	// ErrMissingAPIKey is returned by New when no credential is configured.
	ErrMissingAPIKey = errors.New("LLM API key is not set")

	// ErrEmptyResponse is returned when the provider answers without any text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a conversation.
type Turn struct {
	Role    Role
	Content string
}

// Prompt is the provider-neutral input of a single model call: an optional
// system instruction, prior turns, and the new human message.
type Prompt struct {
	System  string
	History []Turn
	Human   string
}

// ChatModel sends a prompt to a hosted language model and returns its text.
type ChatModel interface {
	Generate(ctx context.Context, p Prompt) (string, error)
	// Name is the human-facing provider name, e.g. "Gemini".
	Name() string
	Close() error
}

// New creates a ChatModel for the configured provider. The credential is
// checked here so nothing reaches the network without one.
func New(ctx context.Context, cfg *config.Config) (ChatModel, error) {
	if cfg.LLM.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var (
		model ChatModel
		err   error
	)
	switch cfg.LLM.Provider {
	case "", "gemini", "google":
		model, err = newGeminiModel(ctx, cfg)
	case "openai", "openai-compatible":
		model = newOpenAIModel(cfg)
	case "anthropic":
		model = newAnthropicModel(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}

	return Instrument(WithTimeout(model, cfg.LLM.Timeout)), nil
}

// WithTimeout bounds every Generate call by d. A zero d returns m unchanged.
func WithTimeout(m ChatModel, d time.Duration) ChatModel {
	if d <= 0 {
		return m
	}
	return &timeoutModel{ChatModel: m, timeout: d}
}

type timeoutModel struct {
	ChatModel
	timeout time.Duration
}

func (t *timeoutModel) Generate(ctx context.Context, p Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.ChatModel.Generate(ctx, p)
}
