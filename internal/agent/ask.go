package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/joestump/portfolio-agent/internal/llm"
)

// AskPrompt builds the single-shot prompt for query: a fixed instruction and
// one human turn carrying the portfolio and the question. There is no history.
func AskPrompt(portfolioText, query string) (llm.Prompt, error) {
	data := llm.PromptData{Portfolio: portfolioText, Query: query}
	system, err := llm.Render(llm.TemplateAskSystem, data)
	if err != nil {
		return llm.Prompt{}, fmt.Errorf("render system prompt: %w", err)
	}
	human, err := llm.Render(llm.TemplateAskHuman, data)
	if err != nil {
		return llm.Prompt{}, fmt.Errorf("render query prompt: %w", err)
	}
	return llm.Prompt{System: strings.TrimSpace(system), Human: human}, nil
}

// Ask answers query from portfolioText with exactly one model call.
func Ask(ctx context.Context, model llm.ChatModel, portfolioText, query string) (string, error) {
	p, err := AskPrompt(portfolioText, query)
	if err != nil {
		return "", err
	}
	return model.Generate(ctx, p)
}
