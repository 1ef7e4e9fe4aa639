package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type GeminiOptions struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Gemini calls the generateContent endpoint of the Gemini API.
type Gemini struct {
	opts GeminiOptions
	http *http.Client
}

func NewGemini(opts GeminiOptions, client *http.Client) *Gemini {
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(opts.Timeout)}
	}
	if opts.Model == "" {
		opts.Model = "gemini-pro"
	}
	return &Gemini{opts: opts, http: client}
}

func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

func (g *Gemini) Generate(ctx context.Context, prompt string) Result {
	ctx, cancel := withTimeout(ctx, g.opts.Timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(g.opts.BaseURL, "/"), url.PathEscape(g.opts.Model))

	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}

	var out geminiResponse
	headers := map[string]string{"x-goog-api-key": g.opts.APIKey}
	if err := postJSON(ctx, g.http, endpoint, headers, payload, &out); err != nil {
		return Failure(fmt.Errorf("gemini: %w", err))
	}

	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return Failure(fmt.Errorf("gemini: prompt blocked: %s", out.PromptFeedback.BlockReason))
	}
	if len(out.Candidates) == 0 {
		return Failure(errors.New("gemini: empty response"))
	}

	var b strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return Failure(errors.New("gemini: response has no text"))
	}
	return Success(text)
}
