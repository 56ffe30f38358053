package agent

import (
	"encoding/json"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kdotcui/AngelTea/internal/catalog"
	"github.com/kdotcui/AngelTea/internal/order"
	"github.com/kdotcui/AngelTea/internal/pricing"
)

// Toolbox executes the three ordering tools the model may call. The tool
// set is closed, so dispatch is a plain switch rather than a registry.
type Toolbox struct {
	catalog *catalog.Catalog
	engine  *pricing.Engine
	orders  *order.Service
}

func NewToolbox(c *catalog.Catalog, engine *pricing.Engine, orders *order.Service) *Toolbox {
	return &Toolbox{catalog: c, engine: engine, orders: orders}
}

// --------------------------------------------------
// Tool results (wire shapes, preserved exactly)
// --------------------------------------------------

type MenuResult struct {
	Items []catalog.Entry `json:"items"`
}

type PriceResult struct {
	Found      bool     `json:"found"`
	Price      *float64 `json:"price,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

type OrderResult struct {
	OK       bool         `json:"ok"`
	Items    []order.Line `json:"items,omitempty"`
	Total    *float64     `json:"total,omitempty"`
	OrderID  string       `json:"order_id,omitempty"`
	Currency string       `json:"currency,omitempty"`
	Error    string       `json:"error,omitempty"`
}

type toolError struct {
	Error string `json:"error"`
}

// --------------------------------------------------
// Tool implementations
// --------------------------------------------------

func (t *Toolbox) GetMenu(query string) MenuResult {
	return MenuResult{Items: t.catalog.Filter(query)}
}

// GetPrice quotes one unit. When the item or size cannot be priced, the
// nearest resolved name (if any) comes back as a suggestion with no price.
func (t *Toolbox) GetPrice(name, size string, toppings []string) PriceResult {
	quote, err := t.engine.Quote(name, size, toppings)
	if err != nil {
		res := PriceResult{Found: false}
		if suggestion, ok := t.catalog.Resolve(name); ok {
			res.Suggestion = suggestion
		}
		return res
	}
	price := quote.UnitPrice
	return PriceResult{Found: true, Price: &price}
}

// PlaceOrder is all-or-nothing: on failure only ok and error are set.
func (t *Toolbox) PlaceOrder(lines []order.LineRequest) OrderResult {
	placed, err := t.orders.Place(lines)
	if err != nil {
		return OrderResult{OK: false, Error: err.Error()}
	}
	total := placed.Total
	return OrderResult{
		OK:       true,
		Items:    placed.Items,
		Total:    &total,
		OrderID:  placed.OrderID,
		Currency: placed.Currency,
	}
}

// --------------------------------------------------
// Dispatch by tool name
// --------------------------------------------------

type getMenuArgs struct {
	Query string `json:"query"`
}

type getPriceArgs struct {
	Name     string   `json:"name"`
	Size     string   `json:"size"`
	Toppings []string `json:"toppings"`
}

type placeOrderArgs struct {
	Items []order.LineRequest `json:"items"`
}

// Dispatch executes one model-requested tool call and returns a value
// ready for JSON encoding into the tool message. Unknown tools and
// malformed arguments come back as structured errors, never panics.
func (t *Toolbox) Dispatch(name string, args json.RawMessage) any {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case "get_menu":
		var a getMenuArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return toolError{Error: "invalid arguments"}
		}
		return t.GetMenu(a.Query)

	case "get_price":
		var a getPriceArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return toolError{Error: "invalid arguments"}
		}
		return t.GetPrice(a.Name, a.Size, a.Toppings)

	case "place_order":
		var a placeOrderArgs
		if err := json.Unmarshal(args, &a); err != nil {
			return toolError{Error: "invalid arguments"}
		}
		return t.PlaceOrder(a.Items)

	default:
		return toolError{Error: "unknown tool: " + strings.TrimSpace(name)}
	}
}

// --------------------------------------------------
// Tool schemas advertised to the model
// --------------------------------------------------

func ToolDefinitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "get_menu",
				Description: "Return menu items; optionally filter by a query (name/category). Topsellers first.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"query": {"type": "string", "description": "Filter by keyword (optional)."}
					}
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "get_price",
				Description: "Return price for a specific drink and size. Includes topping charges if provided.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"name": {"type": "string", "description": "Drink name, e.g., Brown Sugar Bubble Tea."},
						"size": {"type": "string", "description": "Size token (required for accurate price)."},
						"toppings": {
							"type": "array",
							"items": {"type": "string"},
							"description": "Toppings to add (+$0.80 each unless included)."
						}
					},
					"required": ["name"]
				}`),
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "place_order",
				Description: "Place a simple order. Returns normalized items, unit prices, line totals, and grand total.",
				Parameters: json.RawMessage(`{
					"type": "object",
					"properties": {
						"items": {
							"type": "array",
							"items": {
								"type": "object",
								"properties": {
									"name": {"type": "string"},
									"size": {"type": "string"},
									"qty": {"type": "integer"},
									"sugar": {"type": "string", "description": "0%|25%|50%|75%|100%"},
									"ice": {"type": "string", "description": "no/less/regular/extra ice"},
									"toppings": {"type": "array", "items": {"type": "string"}}
								},
								"required": ["name"]
							}
						}
					},
					"required": ["items"]
				}`),
			},
		},
	}
}
