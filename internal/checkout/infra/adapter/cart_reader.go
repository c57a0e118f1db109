package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/refill-store/internal/cart/app"
	cartdomain "github.com/dwikikusuma/refill-store/internal/cart/domain"
	"github.com/dwikikusuma/refill-store/internal/checkout/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) ActiveLines(ctx context.Context, customer string) ([]domain.CartLine, error) {
	lines, err := r.svc.ActiveLines(ctx, customer)
	if err != nil {
		return nil, err
	}
	return toCheckoutLines(lines), nil
}

func (r *CartServiceReader) TakeActiveLines(ctx context.Context, customer string, fn func([]domain.CartLine) error) error {
	return r.svc.TakeActiveLines(ctx, customer, func(lines []cartdomain.Line) error {
		return fn(toCheckoutLines(lines))
	})
}

func toCheckoutLines(lines []cartdomain.Line) []domain.CartLine {
	items := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.CartLine{
			ProductID:  l.Product.ID,
			Name:       l.Product.Name,
			ImageRef:   l.Product.ImageRef,
			Currency:   l.Product.Currency,
			UnitAmount: l.Product.UnitAmount,
			Quantity:   l.Quantity,
		})
	}
	return items
}
