package catalog

// AngelTea is the full Angel Tea menu with explicit M/L pricing.
// Orders that omit a size default to medium.
func AngelTea() *Catalog {
	return NewAngelTeaFrom(angelTeaItems)
}

func ml(m, l float64) map[Size]float64 {
	return map[Size]float64{SizeM: m, SizeL: l}
}

var angelTeaItems = []Item{
	// ---------------- ANGEL MILK TEA ----------------
	{Name: "Angel Milk Tea", Category: "milk_tea", Prices: ml(5.99, 6.89), Topseller: true},
	{Name: "Jasmine Milk Tea", Category: "milk_tea", Prices: ml(5.99, 6.89)},
	{Name: "Coffee Milk Tea", Category: "milk_tea", Prices: ml(6.59, 7.49)},
	{Name: "Taro Milk Tea", Category: "milk_tea", Prices: ml(6.29, 7.19), Topseller: true},
	{Name: "Matcha Milk Tea", Category: "milk_tea", Prices: ml(6.79, 7.69)},
	{Name: "THAI Milk Tea", Category: "milk_tea", Prices: ml(6.29, 7.19)},
	{Name: "Oreo Milk Tea", Category: "milk_tea", Prices: ml(6.59, 7.49), Topseller: true},
	{Name: "Mango Milk Tea", Category: "milk_tea", Prices: ml(6.29, 7.19)},
	{Name: "Strawberry Milk Tea", Category: "milk_tea", Prices: ml(6.29, 7.19)},
	{Name: "Lychee Jasmine Milk Tea", Category: "milk_tea", Prices: ml(6.29, 7.19)},
	{Name: "Brown Sugar Bubble Tea", Category: "milk_tea", Prices: ml(6.59, 7.49), Topseller: true,
		IncludedToppings: []string{"brown sugar boba"}},
	{Name: "Milk Foam Caramel Milk Tea", Category: "milk_tea", Prices: ml(7.39, 8.29), Topseller: true,
		IncludedToppings: []string{"milk foam"}},

	// ---------------- ANGEL FRUIT TEA ----------------
	{Name: "3 Brother 4 Season Spring Tea", Category: "fruit_tea", Prices: ml(7.39, 8.29), Topseller: true,
		IncludedToppings: []string{"brown sugar boba", "sago", "coconut jelly"}},
	{Name: "Mango Passion Green Tea", Category: "fruit_tea", Prices: ml(6.75, 7.69), Topseller: true},
	{Name: "Passion Fruit Green Tea", Category: "fruit_tea", Prices: ml(6.25, 7.19)},
	{Name: "Bayberry Jasmine Green Tea", Category: "fruit_tea", Prices: ml(6.25, 7.19)},
	{Name: "Pineapple Mango Green Tea", Category: "fruit_tea", Prices: ml(6.75, 7.69)},
	{Name: "Peach Coconut Green Tea", Category: "fruit_tea", Prices: ml(6.75, 7.69), Topseller: true},
	{Name: "Strawberry Pineapple Green Tea", Category: "fruit_tea", Prices: ml(6.75, 7.69), Topseller: true},
	{Name: "Milk Foam Honey Peach Black Tea", Category: "fruit_tea", Prices: ml(7.39, 8.29),
		IncludedToppings: []string{"milk foam"}},
	{Name: "Honey Lemon Black Tea", Category: "fruit_tea", Prices: ml(6.49, 7.39)},
	{Name: "Chinese Sour Plum Drink", Category: "fruit_tea", Prices: ml(5.99, 6.89)},

	// ---------------- LATTE SERIES ----------------
	{Name: "Strawberry Matcha Latte", Category: "latte", Prices: ml(6.79, 7.69),
		IncludedToppings: []string{"brown sugar boba", "sago", "coconut jelly"}},
	{Name: "Kiwi Matcha Latte", Category: "latte", Prices: ml(6.79, 7.69)},
	{Name: "Peach Matcha Latte", Category: "latte", Prices: ml(6.79, 7.69)},
	{Name: "Strawberry Ube Latte", Category: "latte", Prices: ml(6.79, 7.69),
		IncludedToppings: []string{"brown sugar boba", "sago", "coconut jelly"}},
	{Name: "Brown Sugar Bubble Latte", Category: "latte", Prices: ml(6.59, 7.49),
		IncludedToppings: []string{"brown sugar boba"}},

	// ---------------- SAGO NECTAR ----------------
	{Name: "Mango Pomelo Sago Nectar", Category: "sago_nectar", Prices: ml(7.59, 8.49), Topseller: true},
	{Name: "Strawberry Sago Nectar", Category: "sago_nectar", Prices: ml(7.59, 8.49), Topseller: true},
	{Name: "Pina Colada Sago Nectar", Category: "sago_nectar", Prices: ml(7.59, 8.49)},
	{Name: "Peach Sago Nectar", Category: "sago_nectar", Prices: ml(7.59, 8.49)},
	{Name: "Lychee Bayberry Sago Nectar", Category: "sago_nectar", Prices: ml(7.59, 8.49)},

	// ---------------- SPARKLING ----------------
	{Name: "Sparkling Strawberry", Category: "sparkling", Prices: ml(7.39, 8.29), Topseller: true},
	{Name: "Sparkling Pineapple", Category: "sparkling", Prices: ml(7.39, 8.29), Topseller: true},
	{Name: "Sparkling Mango", Category: "sparkling", Prices: ml(7.39, 8.29)},
	{Name: "Sparkling Kiwi", Category: "sparkling", Prices: ml(7.39, 8.29)},
	{Name: "Sparkling Passion Fruit", Category: "sparkling", Prices: ml(7.39, 8.29)},
	{Name: "Sparkling Peach", Category: "sparkling", Prices: ml(7.39, 8.29)},
	{Name: "Sparkling Bayberry", Category: "sparkling", Prices: ml(7.39, 8.29)},
	{Name: "Sparkling Orange", Category: "sparkling", Prices: ml(7.39, 8.29)},

	// ---------------- YOGURT SMOOTHIE ----------------
	{Name: "Mango Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Strawberry Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Passion Fruit Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Lychee Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Pineapple Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Peach Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Bayberry Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Orange Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Kiwi Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},
	{Name: "Oreo Yogurt Smoothie", Category: "yogurt_smoothie", Prices: ml(7.69, 8.59)},

	// ---------------- HERBAL HEALTH TEA ----------------
	{Name: "Chrysanthemum Goji Berry Cassia Tea", Category: "herbal", Prices: ml(5.99, 7.79)},
	{Name: "Longan Rose Ginger Tea", Category: "herbal", Prices: ml(5.99, 7.79)},
	{Name: "Jasmine Date Goji Berry Rose Tea", Category: "herbal", Prices: ml(5.99, 7.79)},
	{Name: "Brown Sugar Date Ginger Tea", Category: "herbal", Prices: ml(5.99, 7.79)},
	{Name: "Ginseng Mulberry Chrysanthemum Goji Berry Tea", Category: "herbal", Prices: ml(5.99, 7.79)},

	// ---------------- MILK SLUSH ----------------
	{Name: "Mango Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Passion Fruit Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Strawberry Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Lychee Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Pineapple Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Peach Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Bayberry Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Orange Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Kiwi Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Oreo Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Matcha Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
	{Name: "Taro Milk Slush", Category: "milk_slush", Prices: ml(6.69, 7.89)},
}
