package order

// LineRequest is one untrusted requested line as it arrives from the agent
// or the HTTP API. Everything except the name is optional.
type LineRequest struct {
	Name     string   `json:"name"`
	Size     string   `json:"size,omitempty"`
	Qty      int      `json:"qty,omitempty"`
	Sugar    string   `json:"sugar,omitempty"`
	Ice      string   `json:"ice,omitempty"`
	Toppings []string `json:"toppings,omitempty"`
}

// Line is one normalized, priced order line. Name, size, and toppings are
// canonical; unit price and line total are rounded to cents.
type Line struct {
	Name      string   `json:"name"`
	Size      string   `json:"size"`
	Qty       int      `json:"qty"`
	Sugar     string   `json:"sugar"`
	Ice       string   `json:"ice"`
	Toppings  []string `json:"toppings"`
	UnitPrice float64  `json:"unit_price"`
	LineTotal float64  `json:"line_total"`
}

// Order is the normalized result of a successful placement. Nothing is
// persisted; the id only lets the caller refer back to this response.
type Order struct {
	Items    []Line  `json:"items"`
	Total    float64 `json:"total"`
	OrderID  string  `json:"order_id"`
	Currency string  `json:"currency"`
}
