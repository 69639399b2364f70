package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/joestump/portfolio-agent/internal/config"
)

const defaultGeminiModel = "gemini-1.5-flash"

type geminiModel struct {
	client *genai.Client
	model  string
}

func newGeminiModel(ctx context.Context, cfg *config.Config) (*geminiModel, error) {
	model := cfg.LLM.Model
	if model == "" {
		model = defaultGeminiModel
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.LLM.APIKey)}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.LLM.BaseURL))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiModel{client: client, model: model}, nil
}

func (g *geminiModel) Name() string { return "Gemini" }

func (g *geminiModel) Close() error { return g.client.Close() }

func (g *geminiModel) Generate(ctx context.Context, p Prompt) (string, error) {
	m := g.client.GenerativeModel(g.model)
	if p.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(p.System)}}
	}

	cs := m.StartChat()
	cs.History = geminiHistory(p.History)

	resp, err := cs.SendMessage(ctx, genai.Text(p.Human))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	return geminiText(resp)
}

// geminiHistory maps turns onto Gemini's "user" and "model" roles.
func geminiHistory(turns []Turn) []*genai.Content {
	out := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if t.Role == RoleAssistant {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(t.Content)},
		})
	}
	return out
}

// geminiText concatenates the text parts of the first candidate that has content.
func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range c.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			return sb.String(), nil
		}
	}
	return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
}
