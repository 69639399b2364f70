package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr         string
		MaxBodyBytes int64
		CORSOrigins  []string
	}
	LLM struct {
		Provider string
		APIKey   string
		Model    string
		BaseURL  string
		Timeout  time.Duration
	}
	Portfolio struct {
		Path             string
		SystemPromptPath string
	}
}

// Load reads config from an optional .env file, the environment (PORTFOLIO_
// prefix plus the legacy GOOGLE_API_KEY / GEMINI_API_KEY, PORTFOLIO_FILE_PATH
// and SYSTEM_PROMPT_FILE_PATH names) and an optional portfolio-agent.yaml.
//
// A missing API key is not an error here; the LLM factory reports it so the
// ask command can print its own message.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env

	v := viper.New()
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("portfolio-agent")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	_ = v.BindEnv("llm.api_key", "PORTFOLIO_LLM_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("portfolio.path", "PORTFOLIO_FILE_PATH")
	_ = v.BindEnv("portfolio.system_prompt_path", "SYSTEM_PROMPT_FILE_PATH")

	v.SetDefault("http.addr", ":8000")
	v.SetDefault("http.max_body_bytes", 2<<20)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.timeout", "0s")
	v.SetDefault("portfolio.path", "portfolio.txt")
	v.SetDefault("portfolio.system_prompt_path", "system_prompt.txt")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.HTTP.MaxBodyBytes = v.GetInt64("http.max_body_bytes")
	cfg.HTTP.CORSOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("llm.provider")))
	cfg.LLM.APIKey = strings.TrimSpace(v.GetString("llm.api_key"))
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = v.GetString("llm.base_url")
	cfg.Portfolio.Path = v.GetString("portfolio.path")
	cfg.Portfolio.SystemPromptPath = v.GetString("portfolio.system_prompt_path")

	timeout, err := time.ParseDuration(v.GetString("llm.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTFOLIO_LLM_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("PORTFOLIO_LLM_TIMEOUT must not be negative")
	}
	cfg.LLM.Timeout = timeout

	if cfg.HTTP.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("PORTFOLIO_HTTP_MAX_BODY_BYTES must be positive")
	}
	if cfg.Portfolio.SystemPromptPath == "" {
		return nil, fmt.Errorf("SYSTEM_PROMPT_FILE_PATH is required")
	}

	return cfg, nil
}

// splitList accepts both repeated yaml entries and a comma separated env value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
