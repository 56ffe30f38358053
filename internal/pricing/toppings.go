package pricing

import "strings"

// ToppingMenu is the closed add-on enumeration plus its synonym table.
// A zero ToppingMenu recognizes nothing, which is how catalogs without
// add-ons behave: every requested topping is silently dropped.
type ToppingMenu struct {
	Unit     float64
	Names    []string
	Synonyms map[string]string
}

// Canon folds a free-text topping into its canonical name. Synonyms apply
// first, then a containment match in either direction against the closed
// list. Unrecognized toppings return false and are dropped by callers.
func (m ToppingMenu) Canon(raw string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(raw))
	if n == "" {
		return "", false
	}

	if s, ok := m.Synonyms[n]; ok {
		n = s
	}

	for _, t := range m.Names {
		lower := strings.ToLower(t)
		if n == lower || strings.Contains(lower, n) || strings.Contains(n, lower) {
			return t, true
		}
	}

	return "", false
}

// DefaultToppings is the Angel Tea add-on list, each at a flat $0.80
// unless the drink bundles it.
func DefaultToppings() ToppingMenu {
	return ToppingMenu{
		Unit: 0.80,
		Names: []string{
			"brown sugar boba",
			"coconut jelly",
			"herbal jelly",
			"sago",
			"oreo crumbs",
			"milk foam",
			"red bean",
			"chocolate",
			"mango popping bubbles",
			"green apple popping bubbles",
			"lychee popping bubbles",
			"blueberry popping bubbles",
			"strawberry popping bubbles",
		},
		Synonyms: map[string]string{
			"boba":                "brown sugar boba",
			"tapioca":             "brown sugar boba",
			"pearls":              "brown sugar boba",
			"milk cap":            "milk foam",
			"cheese foam":         "milk foam",
			"oreo":                "oreo crumbs",
			"mango popping":       "mango popping bubbles",
			"green apple popping": "green apple popping bubbles",
			"lychee popping":      "lychee popping bubbles",
			"blueberry popping":   "blueberry popping bubbles",
			"strawberry popping":  "strawberry popping bubbles",
		},
	}
}
