// Package agent builds the prompts for the two portfolio entry points and
// hands them to a chat model: the one-shot question tool (Ask) and the
// form-filling agent used by the HTTP service (PortfolioAgent).
//
// The form-filling agent replays the same two-turn seed on every call. It is
// not multi-turn memory: nothing a caller sends is kept.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joestump/portfolio-agent/internal/llm"
	"github.com/joestump/portfolio-agent/internal/portfolio"
)

// ErrNoModel is returned by New when no chat model is supplied.
var ErrNoModel = errors.New("chat model is not configured")

// PortfolioAgent generates form-filling scripts from a portfolio loaded once
// at construction. It is read-only afterwards and safe for concurrent use.
type PortfolioAgent struct {
	model        llm.ChatModel
	systemPrompt string
	seed         []llm.Turn
}

// New loads the portfolio and system prompt files and prepares the seed
// history. A missing or unreadable portfolio, or a missing, unreadable or
// empty system prompt, is an error. An empty portfolio is only logged.
func New(model llm.ChatModel, portfolioPath, systemPromptPath string) (*PortfolioAgent, error) {
	text, err := portfolio.Load(portfolioPath)
	if err != nil {
		return nil, err
	}
	if portfolio.IsBlank(text) {
		log.Printf("agent: warning: the portfolio file %q is empty", portfolioPath)
	}

	systemPrompt, err := portfolio.LoadSystemPrompt(systemPromptPath)
	if err != nil {
		return nil, err
	}

	if model == nil {
		return nil, ErrNoModel
	}

	seed, err := seedHistory(text)
	if err != nil {
		return nil, err
	}

	return &PortfolioAgent{
		model:        model,
		systemPrompt: systemPrompt,
		seed:         seed,
	}, nil
}

func seedHistory(portfolioText string) ([]llm.Turn, error) {
	data := llm.PromptData{Portfolio: portfolioText}
	human, err := llm.Render(llm.TemplateSeedHuman, data)
	if err != nil {
		return nil, fmt.Errorf("render seed prompt: %w", err)
	}
	ack, err := llm.Render(llm.TemplateSeedAssistant, data)
	if err != nil {
		return nil, fmt.Errorf("render seed reply: %w", err)
	}
	return []llm.Turn{
		{Role: llm.RoleHuman, Content: human},
		{Role: llm.RoleAssistant, Content: ack},
	}, nil
}

// Prompt returns the prompt sent for formHTML. The seed history is copied so
// a model implementation cannot alter what later calls see.
func (a *PortfolioAgent) Prompt(formHTML string) (llm.Prompt, error) {
	human, err := llm.Render(llm.TemplateFormHuman, llm.PromptData{FormHTML: formHTML})
	if err != nil {
		return llm.Prompt{}, fmt.Errorf("render form prompt: %w", err)
	}
	history := make([]llm.Turn, len(a.seed))
	copy(history, a.seed)
	return llm.Prompt{
		System:  a.systemPrompt,
		History: history,
		Human:   human,
	}, nil
}

// GenerateFormFillingScript asks the model for a script that fills formHTML
// from the portfolio. The HTML is passed through unvalidated and the raw
// model text is returned.
func (a *PortfolioAgent) GenerateFormFillingScript(ctx context.Context, formHTML string) (string, error) {
	p, err := a.Prompt(formHTML)
	if err != nil {
		return "", err
	}
	return a.model.Generate(ctx, p)
}

// ModelName is the provider name of the underlying model.
func (a *PortfolioAgent) ModelName() string {
	return a.model.Name()
}
