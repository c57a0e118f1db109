package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/refill-store/internal/cart/app"
	"github.com/dwikikusuma/refill-store/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/refill-store/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return domain.Product{}, cartapp.ErrNotFound
	}
	if errors.Is(err, catalogapp.ErrInvalidInput) {
		return domain.Product{}, cartapp.ErrInvalidInput
	}
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:         p.ID,
		Name:       p.Name,
		Currency:   p.Price.Currency,
		UnitAmount: p.Price.Amount,
		ImageRef:   p.ImageRef,
	}, nil
}
