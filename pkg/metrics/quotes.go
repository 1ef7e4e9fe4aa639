package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"

	otherCurrency = "other"
)

// QuoteMetrics records quotation outcomes and email draft modes.
type QuoteMetrics struct {
	quotes     *prometheus.CounterVec
	drafts     *prometheus.CounterVec
	lineItems  prometheus.Histogram
	grandTotal *prometheus.HistogramVec
}

// NewQuoteMetrics registers the quotation metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_total",
		Help: "Quote requests by outcome.",
	}, []string{"outcome"})
	drafts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "email_drafts_total",
		Help: "Email drafts by the path that produced them.",
	}, []string{"mode"})
	lineItems := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_line_items",
		Help:    "Number of line items per created quote.",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
	})
	grandTotal := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_grand_total",
		Help:    "Grand total of created quotes, in quote currency.",
		Buckets: prometheus.ExponentialBuckets(10, 10, 7),
	}, []string{"currency"})
	reg.MustRegister(quotes, drafts, lineItems, grandTotal)
	return &QuoteMetrics{
		quotes:     quotes,
		drafts:     drafts,
		lineItems:  lineItems,
		grandTotal: grandTotal,
	}
}

// IncQuote increments the counter for the given outcome.
func (q *QuoteMetrics) IncQuote(outcome string) {
	if q == nil || q.quotes == nil {
		return
	}
	q.quotes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncDraft increments the counter for the draft mode.
func (q *QuoteMetrics) IncDraft(mode string) {
	if q == nil || q.drafts == nil {
		return
	}
	q.drafts.WithLabelValues(normalizeLabel(mode)).Inc()
}

// ObserveQuote records the size and total of a created quote.
func (q *QuoteMetrics) ObserveQuote(lines int, currency string, total float64) {
	if q == nil || q.lineItems == nil {
		return
	}
	q.lineItems.Observe(float64(lines))
	q.grandTotal.WithLabelValues(currencyLabel(currency)).Observe(total)
}

// currencyLabel keeps the label set bounded: only ISO 4217 shaped codes are
// used as-is, everything else collapses into "other".
func currencyLabel(currency string) string {
	if len(currency) != 3 {
		return otherCurrency
	}
	for i := 0; i < len(currency); i++ {
		if currency[i] < 'A' || currency[i] > 'Z' {
			return otherCurrency
		}
	}
	return currency
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func statusLabel(status int) string {
	if status == 0 {
		return "200"
	}
	return strconv.Itoa(status)
}
