package main

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestRunServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NotFoundHandler(),
	}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServer: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runServer did not return after cancel")
	}
}

func TestServeCmd_RefusesWithoutAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "PORTFOLIO_LLM_API_KEY"} {
		t.Setenv(k, "")
	}

	cmd := newServeCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected serve to refuse to start without an API key")
	}
}
