package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"

	"github.com/joestump/portfolio-agent/internal/config"
)

var seeded = Prompt{
	System: "Only output JavaScript.",
	History: []Turn{
		{Role: RoleHuman, Content: "Here is my portfolio"},
		{Role: RoleAssistant, Content: "Thank you"},
	},
	Human: "Here is the HTML form structure to fill:\n<form></form>",
}

func TestOpenAIModel_Generate(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"fill();"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = srv.URL + "/v1/"
	m := newOpenAIModel(cfg)

	out, err := m.Generate(context.Background(), seeded)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "fill();" {
		t.Errorf("out = %q, want fill();", out)
	}
	if got.Model != defaultOpenAIModel {
		t.Errorf("model = %q, want %q", got.Model, defaultOpenAIModel)
	}

	wantRoles := []string{
		openai.ChatMessageRoleSystem,
		openai.ChatMessageRoleUser,
		openai.ChatMessageRoleAssistant,
		openai.ChatMessageRoleUser,
	}
	if len(got.Messages) != len(wantRoles) {
		t.Fatalf("messages = %d, want %d", len(got.Messages), len(wantRoles))
	}
	for i, role := range wantRoles {
		if got.Messages[i].Role != role {
			t.Errorf("messages[%d].Role = %q, want %q", i, got.Messages[i].Role, role)
		}
	}
	if got.Messages[3].Content != seeded.Human {
		t.Errorf("last message = %q, want %q", got.Messages[3].Content, seeded.Human)
	}
}

func TestOpenAIModel_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.BaseURL = srv.URL + "/v1"

	if _, err := newOpenAIModel(cfg).Generate(context.Background(), seeded); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestOpenAIMessages_NoSystem(t *testing.T) {
	msgs := openaiMessages(Prompt{Human: "hi"})
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleUser || msgs[0].Content != "hi" {
		t.Errorf("unexpected message: %+v", msgs[0])
	}
}

func TestAnthropicParams(t *testing.T) {
	params := anthropicParams(defaultAnthropicModel, seeded)

	if params.Model != defaultAnthropicModel {
		t.Errorf("Model = %q", params.Model)
	}
	if len(params.System) != 1 || params.System[0].Text != seeded.System {
		t.Errorf("System = %+v", params.System)
	}
	wantRoles := []anthropic.MessageParamRole{
		anthropic.MessageParamRoleUser,
		anthropic.MessageParamRoleAssistant,
		anthropic.MessageParamRoleUser,
	}
	if len(params.Messages) != len(wantRoles) {
		t.Fatalf("messages = %d, want %d", len(params.Messages), len(wantRoles))
	}
	for i, role := range wantRoles {
		if params.Messages[i].Role != role {
			t.Errorf("messages[%d].Role = %q, want %q", i, params.Messages[i].Role, role)
		}
	}
}

func TestGeminiHistory(t *testing.T) {
	got := geminiHistory(seeded.History)
	if len(got) != 2 {
		t.Fatalf("history = %d, want 2", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "model" {
		t.Errorf("roles = %q, %q; want user, model", got[0].Role, got[1].Role)
	}
	if text, ok := got[0].Parts[0].(genai.Text); !ok || string(text) != "Here is my portfolio" {
		t.Errorf("parts[0] = %#v", got[0].Parts[0])
	}
}

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("```javascript\n"), genai.Text("f();\n```")}}},
		},
	}
	got, err := geminiText(resp)
	if err != nil {
		t.Fatalf("geminiText: %v", err)
	}
	if got != "```javascript\nf();\n```" {
		t.Errorf("geminiText = %q", got)
	}
}

func TestGeminiText_Empty(t *testing.T) {
	for name, resp := range map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"no text":       {Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := geminiText(resp); !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("err = %v, want ErrEmptyResponse", err)
			}
		})
	}
}
