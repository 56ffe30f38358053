package catalog

import (
	"math"
	"sort"
	"strings"
)

// Catalog is the read-only menu table. Items keep declaration order because
// substring resolution breaks ties by position; concurrent readers need no
// locking since nothing mutates after New.
type Catalog struct {
	items        []Item
	index        map[string]int
	sizeSynonyms map[string]Size
	defaultSize  Size
}

func New(items []Item, sizeSynonyms map[string]Size, defaultSize Size) *Catalog {
	c := &Catalog{
		items:        make([]Item, len(items)),
		index:        make(map[string]int, len(items)),
		sizeSynonyms: sizeSynonyms,
		defaultSize:  defaultSize,
	}

	for i, item := range items {
		if item.Prices == nil && item.Multipliers != nil {
			item.Prices = make(map[Size]float64, len(item.Multipliers))
			for size, mult := range item.Multipliers {
				item.Prices[size] = round2(item.BasePrice * mult)
			}
		}
		c.items[i] = item
		c.index[normalize(item.Name)] = i
	}

	return c
}

// LookupExact returns the item whose name matches case-insensitively.
func (c *Catalog) LookupExact(name string) (Item, bool) {
	i, ok := c.index[normalize(name)]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// All returns every item in declaration order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// --------------------------------------------------
// Item resolution (exact first, then substring)
// --------------------------------------------------

// Resolve maps a free-text item name to its canonical catalog name.
// Exact match wins; otherwise the first item whose normalized name
// contains the query, in declaration order.
func (c *Catalog) Resolve(raw string) (string, bool) {
	key := normalize(raw)
	if key == "" {
		return "", false
	}

	if i, ok := c.index[key]; ok {
		return c.items[i].Name, true
	}

	for _, item := range c.items {
		if strings.Contains(normalize(item.Name), key) {
			return item.Name, true
		}
	}

	return "", false
}

// --------------------------------------------------
// Size resolution
// --------------------------------------------------

// ResolveSize folds a size synonym into this catalog's canonical token.
// The synonym table includes the canonical tokens themselves.
func (c *Catalog) ResolveSize(raw string) (Size, bool) {
	size, ok := c.sizeSynonyms[normalize(raw)]
	return size, ok
}

// DefaultSize is the size the order normalizer substitutes when a line
// omits one. Empty means sizes are always required.
func (c *Catalog) DefaultSize() Size {
	return c.defaultSize
}

// --------------------------------------------------
// Filtered listing
// --------------------------------------------------

// Filter returns listing entries matching the query against name or
// category (case-insensitive substring). An empty query returns everything.
// Topsellers first, then category, then name, so identical queries always
// produce identical output.
func (c *Catalog) Filter(query string) []Entry {
	q := normalize(query)

	out := make([]Entry, 0, len(c.items))
	for _, item := range c.items {
		if q != "" &&
			!strings.Contains(normalize(item.Name), q) &&
			!strings.Contains(normalize(item.Category), q) {
			continue
		}
		out = append(out, entryFor(item))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Topseller != out[j].Topseller {
			return out[i].Topseller
		}
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})

	return out
}

func entryFor(item Item) Entry {
	e := Entry{
		Name:             item.Name,
		Category:         item.Category,
		Topseller:        item.Topseller,
		IncludedToppings: item.IncludedToppings,
	}
	if e.IncludedToppings == nil {
		e.IncludedToppings = []string{}
	}

	if item.BasePrice > 0 {
		e.BasePrice = item.BasePrice
		e.Sizes = item.Sizes
	} else {
		e.Prices = item.Prices
	}

	return e
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
