package order

import (
	"strings"
	"testing"

	"github.com/kdotcui/AngelTea/internal/catalog"
	"github.com/kdotcui/AngelTea/internal/pricing"
)

func angelService() *Service {
	menu := catalog.AngelTea()
	return NewService(menu, pricing.NewEngine(menu, pricing.DefaultToppings()))
}

func classicService() *Service {
	menu := catalog.ClassicTeaHouse()
	return NewService(menu, pricing.NewEngine(menu, pricing.ToppingMenu{}))
}

func TestPlace_NormalizesLines(t *testing.T) {
	service := angelService()

	placed, err := service.Place([]LineRequest{
		{Name: "Angel Milk Tea", Size: "M", Qty: 2, Sugar: "50%", Ice: "less ice"},
		{Name: "Brown Sugar Bubble Tea", Size: "L", Sugar: "0%", Toppings: []string{"boba", "milk foam"}},
		{Name: "Mango Passion Green Tea", Size: "m", Sugar: "weird", Ice: "frozen"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, second, third := placed.Items[0], placed.Items[1], placed.Items[2]

	if first.UnitPrice != 5.99 || first.LineTotal != 11.98 {
		t.Fatalf("unexpected first line pricing: %+v", first)
	}
	if first.Size != "M" || first.Sugar != "50%" || first.Ice != "less ice" {
		t.Fatalf("unexpected first line normalization: %+v", first)
	}

	// Boba is bundled with the drink, milk foam is not: one surcharge.
	if second.UnitPrice != 8.29 {
		t.Fatalf("expected 7.49 + 0.80, got %v", second.UnitPrice)
	}
	if len(second.Toppings) != 2 {
		t.Fatalf("expected both canonical toppings listed, got %v", second.Toppings)
	}

	// Invalid sugar and ice fall back silently.
	if third.Sugar != "100%" || third.Ice != "regular ice" {
		t.Fatalf("expected defaults, got sugar=%q ice=%q", third.Sugar, third.Ice)
	}

	wantTotal := pricing.Round2(first.LineTotal + second.LineTotal + third.LineTotal)
	if placed.Total != wantTotal {
		t.Fatalf("expected total %v, got %v", wantTotal, placed.Total)
	}
	if placed.Currency != "USD" {
		t.Fatalf("expected USD, got %q", placed.Currency)
	}
	if len(placed.OrderID) != 8 {
		t.Fatalf("expected 8-char order id, got %q", placed.OrderID)
	}
}

func TestPlace_DefaultsSizeAndQuantity(t *testing.T) {
	placed, err := angelService().Place([]LineRequest{
		{Name: "Angel Milk Tea", Qty: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := placed.Items[0]
	if line.Size != "M" {
		t.Fatalf("expected default size M, got %q", line.Size)
	}
	if line.Qty != 1 {
		t.Fatalf("expected quantity coerced to 1, got %d", line.Qty)
	}
	if line.UnitPrice != 5.99 || line.LineTotal != 5.99 {
		t.Fatalf("unexpected pricing: %+v", line)
	}
}

func TestPlace_NegativeQuantityCoerced(t *testing.T) {
	placed, err := angelService().Place([]LineRequest{
		{Name: "Angel Milk Tea", Size: "m", Qty: -3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed.Items[0].Qty != 1 {
		t.Fatalf("expected quantity coerced to 1, got %d", placed.Items[0].Qty)
	}
}

func TestPlace_AllOrNothing(t *testing.T) {
	placed, err := angelService().Place([]LineRequest{
		{Name: "Angel Milk Tea", Size: "m"},
		{Name: "Dragon Fruit Yakult", Size: "m"},
	})
	if err == nil {
		t.Fatal("expected whole-order failure")
	}
	if placed != nil {
		t.Fatal("expected no partial order")
	}
	if !strings.Contains(err.Error(), "Dragon Fruit Yakult") {
		t.Fatalf("expected error to name the offending item, got %q", err.Error())
	}
}

func TestPlace_PricingIsIdempotent(t *testing.T) {
	service := angelService()
	lines := []LineRequest{
		{Name: "Taro Milk Tea", Size: "l", Qty: 3, Toppings: []string{"sago"}},
		{Name: "Oreo Milk Tea", Size: "m"},
	}

	a, err := service.Place(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := service.Place(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Total != b.Total {
		t.Fatalf("totals differ: %v vs %v", a.Total, b.Total)
	}
	for i := range a.Items {
		if a.Items[i].UnitPrice != b.Items[i].UnitPrice ||
			a.Items[i].LineTotal != b.Items[i].LineTotal {
			t.Fatalf("line %d pricing differs", i)
		}
	}
	if a.OrderID == b.OrderID {
		t.Fatal("expected fresh order ids per placement")
	}
}

func TestPlace_ClassicCatalog(t *testing.T) {
	service := classicService()

	placed, err := service.Place([]LineRequest{
		{Name: "Brown Sugar Milk Tea", Size: "large", Qty: 2, Sugar: "50%", Ice: "less ice"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := placed.Items[0]
	if line.UnitPrice != 7.70 {
		t.Fatalf("expected unit 7.70, got %v", line.UnitPrice)
	}
	if placed.Total != 15.40 {
		t.Fatalf("expected total 15.40, got %v", placed.Total)
	}
	if line.Size != "large" {
		t.Fatalf("expected named size kept as-is, got %q", line.Size)
	}
}

func TestPlace_ClassicDefaultsToMedium(t *testing.T) {
	placed, err := classicService().Place([]LineRequest{
		{Name: "Jasmine Green Tea"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placed.Items[0].UnitPrice != 4.89 {
		t.Fatalf("expected medium fallback price 4.89, got %v", placed.Items[0].UnitPrice)
	}
}

func TestPlace_ClassicUnknownItem(t *testing.T) {
	if _, err := classicService().Place([]LineRequest{
		{Name: "Dragon Fruit Yakult", Size: "medium"},
	}); err == nil {
		t.Fatal("expected failure for unknown item")
	}
}
