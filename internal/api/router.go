package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMaxBodyBytes = 2 << 20

// Generator produces a form-filling script for an HTML form.
// *agent.PortfolioAgent satisfies it.
type Generator interface {
	GenerateFormFillingScript(ctx context.Context, formHTML string) (string, error)
}

// Deps holds all dependencies required to build the HTTP router. Generator is
// built once at startup and shared by every request.
type Deps struct {
	Generator      Generator
	ModelName      string
	MaxBodyBytes   int64
	AllowedOrigins []string
}

// NewRouter assembles the chi router with middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	// The browser extension posts from its own origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{generationIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", healthHandler(deps.ModelName))
	r.Handle("/metrics", promhttp.Handler())

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	fill := &fillHandler{generator: deps.Generator, maxBodyBytes: maxBody}
	r.Post("/fillit", fill.Fill)

	return r
}

func healthHandler(model string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Model: model})
	}
}
