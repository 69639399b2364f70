package api_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/joestump/portfolio-agent/internal/api"
)

// fakeGenerator records calls and returns a canned script.
type fakeGenerator struct {
	mu    sync.Mutex
	forms []string
	out   string
	err   error
}

func (f *fakeGenerator) GenerateFormFillingScript(ctx context.Context, formHTML string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forms = append(f.forms, formHTML)
	return f.out, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.forms)
}

// testEnv holds the router and the fake generator behind it.
type testEnv struct {
	Router    http.Handler
	Generator *fakeGenerator
}

func newTestEnv(t *testing.T, out string, err error) *testEnv {
	t.Helper()
	gen := &fakeGenerator{out: out, err: err}
	router := api.NewRouter(api.Deps{
		Generator:    gen,
		ModelName:    "Fake",
		MaxBodyBytes: 1 << 10,
	})
	return &testEnv{Router: router, Generator: gen}
}
