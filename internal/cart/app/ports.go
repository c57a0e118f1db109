package app

import (
	"context"

	"github.com/dwikikusuma/refill-store/internal/cart/domain"
)

type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

// CartRepo hands out the live cart for a customer. Callers serialize access.
type CartRepo interface {
	Get(ctx context.Context, customerID string) (*domain.Cart, bool)
	GetOrCreate(ctx context.Context, customerID string) *domain.Cart
}
