package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadAngelTeaItems reads M/L-priced menu rows from Postgres, ordered by
// their stable position so substring resolution stays deterministic.
// An empty table means the deployment has not seeded a custom menu;
// callers fall back to the built-in catalog.
func LoadAngelTeaItems(ctx context.Context, db *pgxpool.Pool) ([]Item, error) {
	rows, err := db.Query(ctx, `
		SELECT name, category, price_m, price_l, topseller, included_toppings
		FROM menu_items
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			name, category string
			priceM, priceL float64
			topseller      bool
			included       []string
		)
		if err := rows.Scan(&name, &category, &priceM, &priceL, &topseller, &included); err != nil {
			return nil, err
		}

		items = append(items, Item{
			Name:             name,
			Category:         category,
			Prices:           ml(priceM, priceL),
			Topseller:        topseller,
			IncludedToppings: included,
		})
	}

	return items, rows.Err()
}

// NewAngelTeaFrom builds an M/L catalog around externally loaded rows,
// keeping the built-in size synonyms and default size.
func NewAngelTeaFrom(items []Item) *Catalog {
	return New(items, map[string]Size{
		"m":       SizeM,
		"medium":  SizeM,
		"regular": SizeM,
		"s":       SizeM,
		"small":   SizeM,
		"l":       SizeL,
		"large":   SizeL,
	}, SizeM)
}
