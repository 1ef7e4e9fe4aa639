package quotes

// Client identifies who the quote is addressed to. Lang "ar" selects Arabic
// text; anything else is treated as English.
type Client struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Lang    string `json:"lang"`
}

// Item is one requested stock line.
type Item struct {
	SKU       string  `json:"sku" validate:"required"`
	Qty       int     `json:"qty" validate:"gt=0"`
	UnitCost  float64 `json:"unit_cost" validate:"gt=0"`
	MarginPct float64 `json:"margin_pct" validate:"gte=0,lte=100"`
}

// LineItem is an Item with its computed total.
type LineItem struct {
	SKU       string  `json:"sku"`
	Qty       int     `json:"qty"`
	UnitCost  float64 `json:"unit_cost"`
	MarginPct float64 `json:"margin_pct"`
	LineTotal float64 `json:"line_total"`
}

// QuoteRequest is the input to CreateQuote.
type QuoteRequest struct {
	Client        Client  `json:"client"`
	Currency      string  `json:"currency" validate:"required"`
	Items         []Item  `json:"items" validate:"required,min=1,dive"`
	DeliveryTerms string  `json:"delivery_terms"`
	Notes         *string `json:"notes"`
}

// QuoteResponse is the assembled quotation. It is built once and never mutated.
type QuoteResponse struct {
	QuoteID       string     `json:"quote_id"`
	Client        Client     `json:"client"`
	Currency      string     `json:"currency"`
	LineItems     []LineItem `json:"line_items"`
	GrandTotal    float64    `json:"grand_total"`
	DeliveryTerms string     `json:"delivery_terms"`
	Notes         *string    `json:"notes"`
	EmailDraft    string     `json:"email_draft"`
	GeneratedAt   string     `json:"generated_at"`
}
