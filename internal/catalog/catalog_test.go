package catalog

import (
	"reflect"
	"testing"
)

func TestLookupExact_CaseInsensitive(t *testing.T) {
	menu := AngelTea()

	item, ok := menu.LookupExact("brown sugar bubble tea")
	if !ok {
		t.Fatal("expected item to be found")
	}
	if item.Name != "Brown Sugar Bubble Tea" {
		t.Fatalf("expected canonical name, got %q", item.Name)
	}
	if item.Prices[SizeM] != 6.59 {
		t.Fatalf("expected M price 6.59, got %v", item.Prices[SizeM])
	}
}

func TestResolve_ExactBeatsSubstring(t *testing.T) {
	menu := AngelTea()

	// "jasmine milk tea" is also a substring of "Lychee Jasmine Milk Tea";
	// the exact match must win.
	name, ok := menu.Resolve("Jasmine Milk Tea")
	if !ok {
		t.Fatal("expected resolution")
	}
	if name != "Jasmine Milk Tea" {
		t.Fatalf("expected exact match, got %q", name)
	}
}

func TestResolve_SubstringUsesDeclarationOrder(t *testing.T) {
	menu := AngelTea()

	// "taro" appears in both "Taro Milk Tea" and "Taro Milk Slush";
	// the earlier declaration wins.
	name, ok := menu.Resolve("taro")
	if !ok {
		t.Fatal("expected resolution")
	}
	if name != "Taro Milk Tea" {
		t.Fatalf("expected first declared match, got %q", name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	menu := AngelTea()

	if _, ok := menu.Resolve("Dragon Fruit Yakult"); ok {
		t.Fatal("expected no match for unknown item")
	}
	if _, ok := menu.Resolve("   "); ok {
		t.Fatal("expected no match for blank name")
	}
}

func TestResolveSize_Synonyms(t *testing.T) {
	menu := AngelTea()

	cases := map[string]Size{
		"m":       SizeM,
		"Medium":  SizeM,
		"regular": SizeM,
		"s":       SizeM,
		"L":       SizeL,
		"large":   SizeL,
	}
	for raw, want := range cases {
		got, ok := menu.ResolveSize(raw)
		if !ok || got != want {
			t.Fatalf("ResolveSize(%q) = %q, %v; want %q", raw, got, ok, want)
		}
	}

	if _, ok := menu.ResolveSize("xl"); ok {
		t.Fatal("expected xl to be rejected")
	}
}

func TestFilter_QueryMatchesNameAndCategory(t *testing.T) {
	menu := AngelTea()

	all := menu.Filter("")
	lattes := menu.Filter("latte")

	if len(lattes) == 0 || len(lattes) >= len(all) {
		t.Fatalf("expected a proper subset, got %d of %d", len(lattes), len(all))
	}
	for _, e := range lattes {
		if e.Category != "latte" {
			t.Fatalf("unexpected category %q in latte results", e.Category)
		}
	}
}

func TestFilter_TopsellersFirstThenStable(t *testing.T) {
	menu := AngelTea()

	entries := menu.Filter("")

	seenRegular := false
	for _, e := range entries {
		if !e.Topseller {
			seenRegular = true
		} else if seenRegular {
			t.Fatalf("topseller %q listed after non-topsellers", e.Name)
		}
	}

	// Identical queries must produce identical ordering.
	if !reflect.DeepEqual(entries, menu.Filter("")) {
		t.Fatal("expected deterministic filter output")
	}
}

func TestClassic_MultiplierFolding(t *testing.T) {
	menu := ClassicTeaHouse()

	item, ok := menu.LookupExact("Jasmine Green Tea")
	if !ok {
		t.Fatal("expected item")
	}

	if got := item.Prices[SizeMedium]; got != 4.89 {
		t.Fatalf("expected medium 4.89, got %v", got)
	}
	if got := item.Prices[SizeLarge]; got != 5.53 {
		t.Fatalf("expected large 5.53, got %v", got)
	}
	if got := item.Prices[SizeSmall]; got != 4.25 {
		t.Fatalf("expected small to equal base price, got %v", got)
	}
}

func TestClassic_ListingExposesBasePrice(t *testing.T) {
	menu := ClassicTeaHouse()

	entries := menu.Filter("jasmine")
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}

	e := entries[0]
	if e.BasePrice != 4.25 {
		t.Fatalf("expected base_price 4.25, got %v", e.BasePrice)
	}
	if len(e.Sizes) != 3 {
		t.Fatalf("expected three size names, got %v", e.Sizes)
	}
	if e.Prices != nil {
		t.Fatal("multiplier menus should not expose a prices table in listings")
	}
}
