// Package static serves the fixed product catalog from memory.
package static

import (
	"context"
	"strings"

	"github.com/dwikikusuma/refill-store/internal/catalog/app"
	"github.com/dwikikusuma/refill-store/internal/catalog/domain"
)

type ProductRepo struct {
	products []domain.Product
	byID     map[string]int
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	r := &ProductRepo{
		products: make([]domain.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// DefaultProducts is the storefront's catalog.
func DefaultProducts(currency string) []domain.Product {
	price := func(amount int64) domain.Money {
		return domain.Money{Currency: currency, Amount: amount}
	}
	return []domain.Product{
		{ID: "p1", Name: "Round Gallon Refill (5 gal)", Price: price(3000), ImageRef: "assets/images/round_gallon.png"},
		{ID: "p2", Name: "Slim Gallon Refill (5 gal)", Price: price(3000), ImageRef: "assets/images/slim_gallon.png"},
		{ID: "p3", Name: "Alkaline Water Refill (5 gal)", Price: price(5000), ImageRef: "assets/images/alkaline_gallon.png"},
		{ID: "p4", Name: "New Round Gallon with Faucet", Price: price(25000), ImageRef: "assets/images/round_gallon_faucet.png"},
		{ID: "p5", Name: "New Slim Gallon with Faucet", Price: price(25000), ImageRef: "assets/images/slim_gallon_faucet.png"},
		{ID: "p6", Name: "Purified Water 500ml (case of 24)", Price: price(22000), ImageRef: "assets/images/bottle_500ml.png"},
	}
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[i], nil
}

// List pages through the catalog in catalog order. The cursor is the id of the
// last product of the previous page.
func (r *ProductRepo) List(_ context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	start := 0
	if c := strings.TrimSpace(cursor); c != "" {
		i, ok := r.byID[c]
		if !ok {
			return nil, "", app.ErrInvalidInput
		}
		start = i + 1
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, limit)
	var nextCursor string

	for _, p := range r.products[start:] {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
		nextCursor = p.ID
		if len(out) == limit {
			break
		}
	}

	if len(out) < limit {
		nextCursor = ""
	}

	return out, nextCursor, nil
}
