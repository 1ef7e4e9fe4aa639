package quotesdto

// QuoteRequest is the POST /quote payload. Pointer fields distinguish an
// absent field from a zero value so presence can be enforced.
type QuoteRequest struct {
	Client        *Client `json:"client" validate:"required"`
	Currency      *string `json:"currency" validate:"required"`
	Items         []Item  `json:"items" validate:"required,min=1,dive"`
	DeliveryTerms *string `json:"delivery_terms" validate:"required"`
	Notes         *string `json:"notes"`
}

// Client describes the recipient of the quotation.
type Client struct {
	Name    *string `json:"name" validate:"required"`
	Contact *string `json:"contact" validate:"required"`
	Lang    *string `json:"lang"`
}

// Item is one requested stock line.
type Item struct {
	SKU       *string  `json:"sku" validate:"required"`
	Qty       *int     `json:"qty" validate:"required,gt=0"`
	UnitCost  *float64 `json:"unit_cost" validate:"required,gt=0"`
	MarginPct *float64 `json:"margin_pct" validate:"required,gte=0,lte=100"`
}
