package drafts

import (
	"context"
	"strings"

	"github.com/angelmondragon/quotation-service/pkg/llm"
	"github.com/angelmondragon/quotation-service/pkg/logger"
)

// GenerativeComposer asks a text generation provider for the draft and
// falls back to the template text when the call fails.
type GenerativeComposer struct {
	gen      llm.Generator
	fallback *TemplateComposer
	logg     *logger.Logger
}

func NewGenerativeComposer(gen llm.Generator, logg *logger.Logger) *GenerativeComposer {
	if logg == nil {
		logg = logger.Nop()
	}
	return &GenerativeComposer{gen: gen, fallback: NewTemplateComposer(), logg: logg}
}

func (c *GenerativeComposer) Compose(ctx context.Context, s Summary) Draft {
	res := c.gen.Generate(ctx, BuildPrompt(s))
	if res.OK() {
		return Draft{Text: strings.TrimSpace(res.Text), Mode: ModeGenerative}
	}

	logCtx := c.logg.WithFields(ctx, map[string]any{
		"provider": c.gen.Name(),
		"lang":     normalizeLang(s.Lang),
	})
	c.logg.Error(logCtx, "email_draft.generation_failed", res.Err)

	draft := c.fallback.Compose(ctx, s)
	draft.Mode = ModeFallback
	return draft
}

// NewComposer picks the draft strategy once at startup: template-only when
// gen is nil, generative with template fallback otherwise.
func NewComposer(gen llm.Generator, logg *logger.Logger) Composer {
	if gen == nil {
		if logg != nil {
			logg.Info(context.Background(), "email drafts use templates, no generation provider configured")
		}
		return NewTemplateComposer()
	}
	if logg != nil {
		ctx := logg.WithField(context.Background(), "provider", gen.Name())
		logg.Info(ctx, "email drafts use generation provider with template fallback")
	}
	return NewGenerativeComposer(gen, logg)
}
