package quotes

// LineTotal applies the margin to the unit cost and multiplies by quantity.
// The raw float64 product is kept; rounding only happens when rendering text.
func LineTotal(item Item) float64 {
	return item.UnitCost * (1 + item.MarginPct/100) * float64(item.Qty)
}

// Price computes one line per item, in input order, and their running sum.
func Price(items []Item) ([]LineItem, float64) {
	lines := make([]LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineItem{
			SKU:       item.SKU,
			Qty:       item.Qty,
			UnitCost:  item.UnitCost,
			MarginPct: item.MarginPct,
			LineTotal: LineTotal(item),
		})
	}
	return lines, GrandTotal(lines)
}

// GrandTotal sums line totals in order without intermediate rounding.
func GrandTotal(lines []LineItem) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.LineTotal
	}
	return sum
}
