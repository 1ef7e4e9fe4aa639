package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type OpenAIOptions struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// OpenAI calls an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	opts OpenAIOptions
	http *http.Client
}

func NewOpenAI(opts OpenAIOptions, client *http.Client) *OpenAI {
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(opts.Timeout)}
	}
	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 600
	}
	return &OpenAI{opts: opts, http: client}
}

func (o *OpenAI) Name() string { return "openai" }

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model     string              `json:"model"`
	Messages  []openAIChatMessage `json:"messages"`
	MaxTokens int                 `json:"max_completion_tokens,omitempty"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIChatMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) Result {
	ctx, cancel := withTimeout(ctx, o.opts.Timeout)
	defer cancel()

	payload := openAIChatRequest{
		Model: o.opts.Model,
		Messages: []openAIChatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: o.opts.MaxTokens,
	}

	urlStr := strings.TrimRight(o.opts.BaseURL, "/") + "/v1/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + o.opts.APIKey}

	var out openAIChatResponse
	if err := postJSON(ctx, o.http, urlStr, headers, payload, &out); err != nil {
		return Failure(fmt.Errorf("openai: %w", err))
	}
	if len(out.Choices) == 0 {
		return Failure(errors.New("openai: empty response"))
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return Failure(errors.New("openai: response has no text"))
	}
	return Success(text)
}
