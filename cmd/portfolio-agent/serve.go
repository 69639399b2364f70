package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joestump/portfolio-agent/internal/agent"
	"github.com/joestump/portfolio-agent/internal/api"
	"github.com/joestump/portfolio-agent/internal/config"
	"github.com/joestump/portfolio-agent/internal/llm"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the form-filling HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Any failure here refuses to serve traffic.
			model, err := llm.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = model.Close() }()

			portfolioAgent, err := agent.New(model, cfg.Portfolio.Path, cfg.Portfolio.SystemPromptPath)
			if err != nil {
				return err
			}
			log.Printf("portfolio agent initialized (model: %s, portfolio: %s)", portfolioAgent.ModelName(), cfg.Portfolio.Path)

			router := api.NewRouter(api.Deps{
				Generator:      portfolioAgent,
				ModelName:      portfolioAgent.ModelName(),
				MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
				AllowedOrigins: cfg.HTTP.CORSOrigins,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}
			return runServer(ctx, srv)
		},
	}
}

// runServer serves until ctx is cancelled, then drains in-flight requests.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
