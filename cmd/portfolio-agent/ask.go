package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joestump/portfolio-agent/internal/agent"
	"github.com/joestump/portfolio-agent/internal/config"
	"github.com/joestump/portfolio-agent/internal/llm"
	"github.com/joestump/portfolio-agent/internal/portfolio"
)

// modelFactory builds the chat model; tests swap it for a fake.
type modelFactory func(ctx context.Context, cfg *config.Config) (llm.ChatModel, error)

func defaultModelFactory(ctx context.Context, cfg *config.Config) (llm.ChatModel, error) {
	return llm.New(ctx, cfg)
}

// newAskCmd answers one question about a portfolio file. Problems with the
// credential, the file or the model call are reported on stdout and end the
// command early with a zero exit status.
func newAskCmd(newModel modelFactory) *cobra.Command {
	return &cobra.Command{
		Use:     "ask <portfolio-file> <query>",
		Short:   "Ask a question about your portfolio",
		Example: `  portfolio-agent ask my-portfolio-info.txt "what's my email and how many years of experience do I have"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			runAsk(cmd.Context(), cmd.OutOrStdout(), cfg, newModel, args[0], args[1])
			return nil
		},
	}
}

func runAsk(ctx context.Context, out io.Writer, cfg *config.Config, newModel modelFactory, path, query string) {
	if cfg.LLM.APIKey == "" {
		fmt.Fprintln(out, "Error: GOOGLE_API_KEY environment variable not set.")
		fmt.Fprintln(out, "Please set it (e.g., export GOOGLE_API_KEY='your_api_key_here')")
		return
	}

	text, err := portfolio.Load(path)
	switch {
	case errors.Is(err, portfolio.ErrNotFound):
		fmt.Fprintf(out, "Error: Portfolio information file not found at '%s'\n", path)
		return
	case err != nil:
		fmt.Fprintf(out, "Error reading portfolio file: %v\n", err)
		return
	case portfolio.IsBlank(text):
		fmt.Fprintf(out, "Warning: The portfolio file '%s' is empty.\n", path)
		return
	}

	model, err := newModel(ctx, cfg)
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			fmt.Fprintln(out, "Error: GOOGLE_API_KEY environment variable not set.")
			return
		}
		fmt.Fprintf(out, "Error initializing the model: %v\n", err)
		return
	}
	defer model.Close()

	fmt.Fprintf(out, "Querying %s with your question...\n", model.Name())
	answer, err := agent.Ask(ctx, model, text, query)
	if err != nil {
		fmt.Fprintf(out, "An error occurred during the API call: %v\n", err)
		return
	}

	fmt.Fprintf(out, "\n--- %s's Response ---\n", model.Name())
	fmt.Fprintln(out, strings.TrimSpace(answer))
	fmt.Fprintln(out, "-------------------------")
}
