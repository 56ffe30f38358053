package order

import (
	"strings"

	"github.com/google/uuid"

	"github.com/kdotcui/AngelTea/internal/catalog"
	"github.com/kdotcui/AngelTea/internal/pricing"
)

const (
	defaultSugar = "100%"
	defaultIce   = "regular ice"
	currency     = "USD"
)

var validSugar = map[string]bool{
	"0%": true, "25%": true, "50%": true, "75%": true, "100%": true,
}

var validIce = map[string]bool{
	"no ice": true, "less ice": true, "regular ice": true, "extra ice": true,
}

type Service struct {
	catalog *catalog.Catalog
	engine  *pricing.Engine
}

func NewService(c *catalog.Catalog, engine *pricing.Engine) *Service {
	return &Service{catalog: c, engine: engine}
}

// --------------------------------------------------
// Place Order (ATOMIC, NO PARTIAL RESULTS)
// --------------------------------------------------

// Place validates and prices every line in input order. Sugar and ice fall
// back to defaults silently; a quantity below 1 becomes 1; a missing size
// takes the catalog default. The first line that fails to price aborts the
// whole order.
func (s *Service) Place(lines []LineRequest) (*Order, error) {
	items := make([]Line, 0, len(lines))
	var total float64

	for _, req := range lines {
		qty := req.Qty
		if qty < 1 {
			qty = 1
		}

		sugar := strings.ToLower(strings.TrimSpace(req.Sugar))
		if !validSugar[sugar] {
			sugar = defaultSugar
		}

		ice := strings.ToLower(strings.TrimSpace(req.Ice))
		if !validIce[ice] {
			ice = defaultIce
		}

		size := strings.TrimSpace(req.Size)
		if size == "" {
			size = string(s.catalog.DefaultSize())
		}

		quote, err := s.engine.Quote(req.Name, size, req.Toppings)
		if err != nil {
			return nil, err
		}

		lineTotal := pricing.Round2(quote.UnitPrice * float64(qty))
		total += lineTotal

		items = append(items, Line{
			Name:      quote.Name,
			Size:      displaySize(quote.Size),
			Qty:       qty,
			Sugar:     sugar,
			Ice:       ice,
			Toppings:  quote.Toppings,
			UnitPrice: quote.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	return &Order{
		Items:    items,
		Total:    pricing.Round2(total),
		OrderID:  newOrderID(),
		Currency: currency,
	}, nil
}

// displaySize uppercases the single-letter tokens (m -> M) and leaves
// named sizes as-is.
func displaySize(size catalog.Size) string {
	if len(size) == 1 {
		return strings.ToUpper(string(size))
	}
	return string(size)
}

func newOrderID() string {
	return uuid.New().String()[:8]
}
