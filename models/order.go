package models

// OrderItem is one product line on an optional sales order. LineTotal is
// always derived from the other three numeric fields and must be recomputed
// after any of them change; it is never an independent source of truth.
type OrderItem struct {
	Id              string  `json:"id"`
	ProductName     string  `json:"product_name"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	LineTotal       float64 `json:"line_total"`
}

// Order is the 0..1 sales order attached to a commercial-visit report. It
// exists only when at least one item was added. TotalValue is persisted for
// convenience but recomputed from the items before every save.
type Order struct {
	Items              []OrderItem `json:"items"`
	DeliveryConditions string      `json:"delivery_conditions"`
	Observations       string      `json:"observations"`
	TotalValue         float64     `json:"total_value"`
}

// IsEmpty reports whether the order carries no lines.
func (o *Order) IsEmpty() bool {
	return o == nil || len(o.Items) == 0
}
