package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kdotcui/AngelTea/internal/catalog"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrSizeNotFound = errors.New("size not found")
)

// Engine computes unit prices against one catalog and its topping menu.
// It is pure: same inputs, same quote.
type Engine struct {
	catalog  *catalog.Catalog
	toppings ToppingMenu
}

func NewEngine(c *catalog.Catalog, toppings ToppingMenu) *Engine {
	return &Engine{catalog: c, toppings: toppings}
}

// Quote is a priced, canonicalized (item, size, toppings) combination.
type Quote struct {
	Name      string
	Size      catalog.Size
	Toppings  []string
	Extras    int
	UnitPrice float64
}

// Quote resolves the item and size, canonicalizes toppings, and prices one
// unit. Size is always required here; order-level defaulting happens in the
// normalizer. Duplicate toppings collapse to one charge; toppings bundled
// with the drink and unrecognized toppings add nothing.
func (e *Engine) Quote(name, size string, toppings []string) (Quote, error) {
	canonical, ok := e.catalog.Resolve(name)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrItemNotFound, strings.TrimSpace(name))
	}
	item, _ := e.catalog.LookupExact(canonical)

	sizeKey, ok := e.catalog.ResolveSize(size)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s (%s)", ErrSizeNotFound, canonical, strings.TrimSpace(size))
	}
	base, ok := item.Prices[sizeKey]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s (%s)", ErrSizeNotFound, canonical, sizeKey)
	}

	included := make(map[string]bool, len(item.IncludedToppings))
	for _, t := range item.IncludedToppings {
		included[strings.ToLower(t)] = true
	}

	canonToppings := make([]string, 0, len(toppings))
	seen := make(map[string]bool, len(toppings))
	extras := 0
	for _, raw := range toppings {
		ct, ok := e.toppings.Canon(raw)
		if !ok || seen[ct] {
			continue
		}
		seen[ct] = true
		canonToppings = append(canonToppings, ct)
		if !included[strings.ToLower(ct)] {
			extras++
		}
	}

	return Quote{
		Name:      canonical,
		Size:      sizeKey,
		Toppings:  canonToppings,
		Extras:    extras,
		UnitPrice: Round2(base + float64(extras)*e.toppings.Unit),
	}, nil
}

// Round2 rounds half up to two decimals, matching how catalog prices and
// line totals are quoted everywhere else.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
