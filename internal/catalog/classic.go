package catalog

// ClassicTeaHouse is the small starter menu priced by base amount and
// per-size multiplier. Orders that omit a size default to medium.
func ClassicTeaHouse() *Catalog {
	return New(classicItems, map[string]Size{
		"s":      SizeSmall,
		"small":  SizeSmall,
		"m":      SizeMedium,
		"medium": SizeMedium,
		"l":      SizeLarge,
		"large":  SizeLarge,
	}, SizeMedium)
}

var classicSizes = []Size{SizeSmall, SizeMedium, SizeLarge}

func sml(s, m, l float64) map[Size]float64 {
	return map[Size]float64{SizeSmall: s, SizeMedium: m, SizeLarge: l}
}

var classicItems = []Item{
	{
		Name:        "Brown Sugar Milk Tea",
		Category:    "milk_tea",
		BasePrice:   5.50,
		Multipliers: sml(1.0, 1.2, 1.4),
		Sizes:       classicSizes,
		Topseller:   true,
	},
	{
		Name:        "Jasmine Green Tea",
		Category:    "tea",
		BasePrice:   4.25,
		Multipliers: sml(1.0, 1.15, 1.3),
		Sizes:       classicSizes,
		Topseller:   true,
	},
	{
		Name:        "Oolong Milk Tea",
		Category:    "milk_tea",
		BasePrice:   5.25,
		Multipliers: sml(1.0, 1.2, 1.35),
		Sizes:       classicSizes,
	},
	{
		Name:        "Taro Milk Tea",
		Category:    "milk_tea",
		BasePrice:   5.75,
		Multipliers: sml(1.0, 1.18, 1.35),
		Sizes:       classicSizes,
		Topseller:   true,
	},
	{
		Name:        "Passionfruit Green Tea",
		Category:    "fruit_tea",
		BasePrice:   5.00,
		Multipliers: sml(1.0, 1.2, 1.4),
		Sizes:       classicSizes,
	},
}
