package catalog

// Size is a canonical size token. Free-text synonyms ("s", "regular", ...)
// are folded into one of these at the normalization boundary only.
type Size string

const (
	SizeM      Size = "m"
	SizeL      Size = "l"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Item is one immutable menu entry. Prices holds the final per-size amount;
// for multiplier-style menus BasePrice and Multipliers carry the raw catalog
// data and Prices is folded from them at construction.
type Item struct {
	Name             string
	Category         string
	BasePrice        float64
	Multipliers      map[Size]float64
	Prices           map[Size]float64
	Sizes            []Size
	Topseller        bool
	IncludedToppings []string
}

// Entry is the listing payload returned by Filter. Fixed-price menus expose
// the prices table; multiplier menus expose base_price plus size names.
type Entry struct {
	Name             string           `json:"name"`
	Category         string           `json:"category"`
	Prices           map[Size]float64 `json:"prices,omitempty"`
	BasePrice        float64          `json:"base_price,omitempty"`
	Sizes            []Size           `json:"sizes,omitempty"`
	Topseller        bool             `json:"topseller"`
	IncludedToppings []string         `json:"included_toppings"`
}
