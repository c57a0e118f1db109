package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/refill-store/internal/cart/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("product not found")
)

type Service struct {
	repo    CartRepo
	catalog CatalogReader
	log     *slog.Logger

	mu sync.Mutex
}

func NewService(repo CartRepo, catalog CatalogReader, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:    repo,
		catalog: catalog,
		log:     log,
	}
}

func (s *Service) GetCart(ctx context.Context, customerID string) (domain.Snapshot, error) {
	customerID, err := cleanID(customerID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.repo.Get(ctx, customerID)
	if !ok {
		return domain.Snapshot{CustomerID: customerID, Lines: []domain.Line{}}, nil
	}
	return cart.Snapshot(), nil
}

func (s *Service) AddProduct(ctx context.Context, customerID, productID string) (domain.Snapshot, error) {
	customerID, err := cleanID(customerID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	productID, err = cleanID(productID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("add %s to cart: %w", productID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.repo.GetOrCreate(ctx, customerID)
	cart.AddProduct(product)
	s.log.DebugContext(ctx, "cart product added", slog.String("customer", customerID), slog.String("product_id", productID))
	return cart.Snapshot(), nil
}

func (s *Service) Increment(ctx context.Context, customerID, productID string) (domain.Snapshot, error) {
	return s.edit(ctx, customerID, productID, "increment", (*domain.Cart).Increment)
}

func (s *Service) Decrement(ctx context.Context, customerID, productID string) (domain.Snapshot, error) {
	return s.edit(ctx, customerID, productID, "decrement", (*domain.Cart).Decrement)
}

func (s *Service) RemoveLine(ctx context.Context, customerID, productID string) (domain.Snapshot, error) {
	return s.edit(ctx, customerID, productID, "remove", (*domain.Cart).RemoveLine)
}

// edit applies op to an existing line. A missing cart or line is a no-op.
func (s *Service) edit(ctx context.Context, customerID, productID, name string, op func(*domain.Cart, string) bool) (domain.Snapshot, error) {
	customerID, err := cleanID(customerID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.repo.Get(ctx, customerID)
	if !ok {
		return domain.Snapshot{CustomerID: customerID, Lines: []domain.Line{}}, nil
	}
	if !op(cart, strings.TrimSpace(productID)) {
		s.log.DebugContext(ctx, "cart edit ignored",
			slog.String("op", name), slog.String("customer", customerID), slog.String("product_id", productID))
	}
	return cart.Snapshot(), nil
}

// ActiveLines returns the customer's orderable lines.
func (s *Service) ActiveLines(ctx context.Context, customerID string) ([]domain.Line, error) {
	snap, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Line, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		if l.Active() {
			out = append(out, l)
		}
	}
	return out, nil
}

// TakeActiveLines hands the orderable lines to fn while holding the cart. When
// fn succeeds those lines are removed; zeroed lines are left in place.
func (s *Service) TakeActiveLines(ctx context.Context, customerID string, fn func([]domain.Line) error) error {
	customerID, err := cleanID(customerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []domain.Line
	cart, ok := s.repo.Get(ctx, customerID)
	if ok {
		lines = cart.ActiveLines()
	}

	if err := fn(lines); err != nil {
		return err
	}
	if ok {
		cart.RemoveActiveLines()
	}
	return nil
}

func cleanID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidInput
	}
	return id, nil
}
