package quotes

import (
	quotesdto "github.com/angelmondragon/quotation-service/api/controllers/quotes/dto"
	quotesvc "github.com/angelmondragon/quotation-service/internal/quotes"
)

func toQuoteRequest(payload quotesdto.QuoteRequest) quotesvc.QuoteRequest {
	items := make([]quotesvc.Item, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, quotesvc.Item{
			SKU:       deref(item.SKU),
			Qty:       deref(item.Qty),
			UnitCost:  deref(item.UnitCost),
			MarginPct: deref(item.MarginPct),
		})
	}

	var client quotesvc.Client
	if payload.Client != nil {
		client = quotesvc.Client{
			Name:    deref(payload.Client.Name),
			Contact: deref(payload.Client.Contact),
			Lang:    deref(payload.Client.Lang),
		}
	}

	return quotesvc.QuoteRequest{
		Client:        client,
		Currency:      deref(payload.Currency),
		Items:         items,
		DeliveryTerms: deref(payload.DeliveryTerms),
		Notes:         payload.Notes,
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
