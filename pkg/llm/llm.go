// Package llm adapts hosted text generation APIs to a single prompt-in,
// text-out capability.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/quotation-service/pkg/config"
	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
)

// Result is the outcome of one generation call: either Text or Err is set.
type Result struct {
	Text string
	Err  error
}

func Success(text string) Result {
	return Result{Text: text}
}

func Failure(err error) Result {
	if err == nil {
		err = errors.New("generation failed")
	}
	return Result{Err: pkgerrors.Wrap(pkgerrors.CodeDependency, err, "text generation failed")}
}

// OK reports whether the call produced usable text.
func (r Result) OK() bool {
	return r.Err == nil && strings.TrimSpace(r.Text) != ""
}

// Generator turns a prompt into text. Implementations are safe for
// concurrent use.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) Result
}

// New builds the generator selected by cfg. It returns nil when the selected
// provider has no credential, which callers treat as template-only mode.
func New(cfg config.LLMConfig, client *http.Client) (Generator, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(cfg.Timeout)}
	}
	switch cfg.NormalizedProvider() {
	case config.ProviderGemini:
		return NewGemini(GeminiOptions{
			BaseURL: cfg.GeminiBaseURL,
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.Timeout,
		}, client), nil
	case config.ProviderOpenAI:
		return NewOpenAI(OpenAIOptions{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.Timeout,
		}, client), nil
	}
	return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
