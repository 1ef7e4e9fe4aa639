package quotes

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/angelmondragon/quotation-service/internal/drafts"
	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
	"github.com/angelmondragon/quotation-service/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct {
	id    string
	calls int
}

func (f *fixedIDs) NewID() string {
	f.calls++
	return f.id
}

type recordingComposer struct {
	calls int
	last  drafts.Summary
	draft drafts.Draft
	panic bool
}

func (c *recordingComposer) Compose(_ context.Context, s drafts.Summary) drafts.Draft {
	c.calls++
	c.last = s
	if c.panic {
		panic("composer blew up")
	}
	return c.draft
}

func strPtr(s string) *string { return &s }

func validRequest() QuoteRequest {
	return QuoteRequest{
		Client:        Client{Name: "Acme Corp", Contact: "john@acme.com", Lang: "en"},
		Currency:      "USD",
		Items:         []Item{{SKU: "A1", Qty: 2, UnitCost: 100, MarginPct: 10}},
		DeliveryTerms: "Net 30",
	}
}

func newTestService(t *testing.T, composer drafts.Composer, ids IDGenerator) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		IDs:      ids,
		Composer: composer,
		Clock: func() time.Time {
			return time.Date(2024, time.January, 2, 3, 4, 5, 600, time.UTC)
		},
	})
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresComposer(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}

func TestCreateQuote_SingleItemScenario(t *testing.T) {
	composer := &recordingComposer{draft: drafts.Draft{Text: "draft", Mode: drafts.ModeTemplate}}
	svc := newTestService(t, composer, &fixedIDs{id: "QT-20240102030405"})

	resp, err := svc.CreateQuote(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.LineItems, 1)
	assert.InDelta(t, 220.0, resp.LineItems[0].LineTotal, 1e-9)
	assert.InDelta(t, 220.0, resp.GrandTotal, 1e-9)
	assert.Equal(t, "QT-20240102030405", resp.QuoteID)
	assert.Equal(t, "draft", resp.EmailDraft)
	assert.Equal(t, "2024-01-02T03:04:05.0000006Z", resp.GeneratedAt)
	assert.Equal(t, "Acme Corp", resp.Client.Name)
	assert.Equal(t, "Net 30", resp.DeliveryTerms)
	assert.Nil(t, resp.Notes)

	assert.Equal(t, 1, composer.calls)
	assert.Equal(t, "en", composer.last.Lang)
	assert.Equal(t, "", composer.last.Notes)
	assert.InDelta(t, 220.0, composer.last.GrandTotal, 1e-9)
}

func TestCreateQuote_PassesNotesAndLangToComposer(t *testing.T) {
	composer := &recordingComposer{draft: drafts.Draft{Text: "x", Mode: drafts.ModeTemplate}}
	svc := newTestService(t, composer, &fixedIDs{id: "QT-1"})

	req := validRequest()
	req.Client.Lang = "ar"
	req.Notes = strPtr("Rush order")
	req.Items = append(req.Items, Item{SKU: "B2", Qty: 1, UnitCost: 50.25, MarginPct: 0})

	resp, err := svc.CreateQuote(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "ar", composer.last.Lang)
	assert.Equal(t, "Rush order", composer.last.Notes)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "Rush order", *resp.Notes)
	require.Len(t, resp.LineItems, 2)
	assert.Equal(t, "A1", resp.LineItems[0].SKU)
	assert.Equal(t, "B2", resp.LineItems[1].SKU)
	assert.Equal(t, resp.LineItems[0].LineTotal+resp.LineItems[1].LineTotal, resp.GrandTotal)
}

func TestCreateQuote_WithTemplateComposer(t *testing.T) {
	svc := newTestService(t, drafts.NewComposer(nil, nil), nil)

	resp, err := svc.CreateQuote(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, `^QT-\d{14}$`, resp.QuoteID)
	assert.Contains(t, resp.EmailDraft, "Total Amount: 220.00 USD")
}

func TestCreateQuote_RejectsInvalidRequestsBeforeWork(t *testing.T) {
	cases := map[string]func(r *QuoteRequest){
		"no items":          func(r *QuoteRequest) { r.Items = nil },
		"empty items":       func(r *QuoteRequest) { r.Items = []Item{} },
		"zero qty":          func(r *QuoteRequest) { r.Items[0].Qty = 0 },
		"negative qty":      func(r *QuoteRequest) { r.Items[0].Qty = -1 },
		"zero unit cost":    func(r *QuoteRequest) { r.Items[0].UnitCost = 0 },
		"negative cost":     func(r *QuoteRequest) { r.Items[0].UnitCost = -5 },
		"negative margin":   func(r *QuoteRequest) { r.Items[0].MarginPct = -0.1 },
		"margin above 100":  func(r *QuoteRequest) { r.Items[0].MarginPct = 100.01 },
		"missing name":      func(r *QuoteRequest) { r.Client.Name = "" },
		"missing contact":   func(r *QuoteRequest) { r.Client.Contact = "" },
		"missing currency":  func(r *QuoteRequest) { r.Currency = "" },
		"missing sku":       func(r *QuoteRequest) { r.Items[0].SKU = "" },
		"second item wrong": func(r *QuoteRequest) { r.Items = append(r.Items, Item{SKU: "Z", Qty: 1, UnitCost: 1, MarginPct: 101}) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			composer := &recordingComposer{}
			ids := &fixedIDs{id: "QT-1"}
			svc := newTestService(t, composer, ids)

			req := validRequest()
			mutate(&req)

			resp, err := svc.CreateQuote(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "got %v", err)
			assert.Equal(t, 0, composer.calls, "no draft work on invalid input")
			assert.Equal(t, 0, ids.calls, "no id generated on invalid input")
		})
	}
}

func TestCreateQuote_ValidationDetailsNameTheField(t *testing.T) {
	svc := newTestService(t, &recordingComposer{}, nil)

	req := validRequest()
	req.Items = append(req.Items, Item{SKU: "Z", Qty: 0, UnitCost: 1, MarginPct: 1})

	_, err := svc.CreateQuote(context.Background(), req)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().([]validation.FieldError)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, []any{"body", "items", 1, "qty"}, details[0].Loc)
}

func TestCreateQuote_BoundaryMarginsAccepted(t *testing.T) {
	svc := newTestService(t, &recordingComposer{}, nil)

	req := validRequest()
	req.Items = []Item{
		{SKU: "lo", Qty: 1, UnitCost: 1, MarginPct: 0},
		{SKU: "hi", Qty: 1, UnitCost: 1, MarginPct: 100},
	}
	resp, err := svc.CreateQuote(context.Background(), req)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, resp.GrandTotal, 1e-9)
}

func TestCreateQuote_EmptyDeliveryTermsAllowed(t *testing.T) {
	svc := newTestService(t, &recordingComposer{}, nil)

	req := validRequest()
	req.DeliveryTerms = ""
	_, err := svc.CreateQuote(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateQuote_ComposerPanicBecomesInternalError(t *testing.T) {
	svc := newTestService(t, &recordingComposer{panic: true}, nil)

	resp, err := svc.CreateQuote(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}

func TestCreateQuote_NonFiniteTotalIsInternalError(t *testing.T) {
	composer := &recordingComposer{}
	svc := newTestService(t, composer, nil)

	req := validRequest()
	req.Items = []Item{{SKU: "huge", Qty: math.MaxInt32, UnitCost: math.MaxFloat64, MarginPct: 100}}

	_, err := svc.CreateQuote(context.Background(), req)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
	assert.Equal(t, 0, composer.calls)
}
