package quotes

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/angelmondragon/quotation-service/internal/drafts"
	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
	"github.com/angelmondragon/quotation-service/pkg/logger"
	"github.com/angelmondragon/quotation-service/pkg/metrics"
	"github.com/angelmondragon/quotation-service/pkg/validation"
)

// GeneratedAtLayout is the ISO-8601 layout used for generated_at.
const GeneratedAtLayout = time.RFC3339Nano

// Service builds quotations.
type Service interface {
	CreateQuote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
}

// ServiceParams wires the collaborators of the quotation service.
type ServiceParams struct {
	IDs      IDGenerator
	Composer drafts.Composer
	Clock    func() time.Time
	Logger   *logger.Logger
	Metrics  *metrics.QuoteMetrics
}

type service struct {
	ids      IDGenerator
	composer drafts.Composer
	clock    func() time.Time
	logg     *logger.Logger
	metrics  *metrics.QuoteMetrics
}

// NewService builds a quotation service backed by the provided collaborators.
func NewService(p ServiceParams) (Service, error) {
	if p.Composer == nil {
		return nil, fmt.Errorf("draft composer required")
	}
	if p.IDs == nil {
		p.IDs = NewClockIDGenerator()
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}
	return &service{
		ids:      p.IDs,
		composer: p.Composer,
		clock:    p.Clock,
		logg:     p.Logger,
		metrics:  p.Metrics,
	}, nil
}

// Validate checks every field rule of a quote request. It runs before any
// pricing or draft work.
func Validate(req QuoteRequest) error {
	return validation.Struct(req)
}

// CreateQuote validates req, prices its items, composes the email draft and
// assembles the response. Failures other than validation are returned as
// CodeInternal errors.
func (s *service) CreateQuote(ctx context.Context, req QuoteRequest) (resp *QuoteResponse, err error) {
	if err := Validate(req); err != nil {
		s.metrics.IncQuote(metrics.OutcomeRejected)
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			resp = nil
			err = pkgerrors.Wrap(pkgerrors.CodeInternal, fmt.Errorf("panic: %v", rec), "quote generation failed")
		}
		if err != nil {
			s.metrics.IncQuote(metrics.OutcomeFailed)
		}
	}()

	quoteID := s.ids.NewID()
	ctx = s.logg.WithQuoteID(ctx, quoteID)

	lines, grandTotal := Price(req.Items)
	if !isFinite(grandTotal) {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "grand total is not a finite number").
			WithDetails(map[string]any{"step": "pricing"})
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	draft := s.composer.Compose(ctx, drafts.Summary{
		ClientName:    req.Client.Name,
		ClientContact: req.Client.Contact,
		Lang:          req.Client.Lang,
		GrandTotal:    grandTotal,
		Currency:      req.Currency,
		DeliveryTerms: req.DeliveryTerms,
		Notes:         notes,
	})
	s.metrics.IncDraft(string(draft.Mode))

	resp = &QuoteResponse{
		QuoteID:       quoteID,
		Client:        req.Client,
		Currency:      req.Currency,
		LineItems:     lines,
		GrandTotal:    grandTotal,
		DeliveryTerms: req.DeliveryTerms,
		Notes:         req.Notes,
		EmailDraft:    draft.Text,
		GeneratedAt:   s.clock().Format(GeneratedAtLayout),
	}

	s.metrics.IncQuote(metrics.OutcomeCreated)
	s.metrics.ObserveQuote(len(lines), req.Currency, grandTotal)

	ctx = s.logg.WithFields(ctx, map[string]any{
		"line_items":  len(lines),
		"currency":    req.Currency,
		"draft_mode":  draft.Mode,
		"grand_total": grandTotal,
	})
	s.logg.Info(ctx, "quote.created")

	return resp, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
