package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/refill-store/internal/cart/domain"
)

type CartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepo) Get(_ context.Context, customerID string) (*domain.Cart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[customerID]
	return c, ok
}

func (r *CartRepo) GetOrCreate(_ context.Context, customerID string) *domain.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.carts[customerID]; ok {
		return c
	}
	c := domain.NewCart(customerID)
	r.carts[customerID] = c
	return c
}
