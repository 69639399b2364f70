// Package portfolio loads the flat text files the agent works from: the
// personal portfolio used as model context and the system prompt that
// constrains the model.
package portfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrNotFound is returned when the portfolio file does not exist.
	ErrNotFound = errors.New("portfolio file not found")

	// ErrSystemPromptNotFound is returned when the system prompt file does not exist.
	ErrSystemPromptNotFound = errors.New("system prompt file not found")

	// ErrSystemPromptEmpty is returned when the system prompt file holds only whitespace.
	ErrSystemPromptEmpty = errors.New("system prompt file is empty")
)

// Load returns the portfolio file contents verbatim. An empty file is not an
// error; callers decide whether to warn or refuse (see IsBlank).
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return "", fmt.Errorf("read portfolio file: %w", err)
	}
	return string(b), nil
}

// LoadSystemPrompt returns the trimmed system prompt. Unlike the portfolio,
// an empty prompt is rejected.
func LoadSystemPrompt(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrSystemPromptNotFound, path)
		}
		return "", fmt.Errorf("read system prompt file: %w", err)
	}
	prompt := strings.TrimSpace(string(b))
	if prompt == "" {
		return "", fmt.Errorf("%w: %q", ErrSystemPromptEmpty, path)
	}
	return prompt, nil
}

// IsBlank reports whether text has no content besides whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
