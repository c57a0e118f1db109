package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/refill-store/internal/checkout/domain"
	orderdomain "github.com/dwikikusuma/refill-store/internal/order/domain"
)

type CartReader interface {
	ActiveLines(ctx context.Context, customer string) ([]domain.CartLine, error)
	// TakeActiveLines passes the orderable lines to fn and clears them from
	// the cart only if fn succeeds.
	TakeActiveLines(ctx context.Context, customer string, fn func([]domain.CartLine) error) error
}

type OrderWriter interface {
	Append(ctx context.Context, order orderdomain.Order) error
}

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoAddress    = errors.New("delivery address is required")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	Cart   CartReader
	Orders OrderWriter

	currency string
	now      func() time.Time
	newID    func() (string, error)
	log      *slog.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Service) { s.newID = gen }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(cart CartReader, orders OrderWriter, currency string, opts ...Option) *Service {
	s := &Service{
		Cart:     cart,
		Orders:   orders,
		currency: currency,
		now:      time.Now,
		newID:    newOrderID,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newOrderID returns a time-ordered UUID so ids sort by placement.
func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) Quote(ctx context.Context, customer string) (domain.Quote, error) {
	if strings.TrimSpace(customer) == "" {
		return domain.Quote{}, ErrInvalidInput
	}

	lines, err := s.Cart.ActiveLines(ctx, customer)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(lines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	quote := domain.Quote{
		Lines: make([]domain.QuoteLine, 0, len(lines)),
		Total: domain.Money{Currency: s.currency},
	}
	for _, l := range lines {
		lineTotal := l.UnitAmount * l.Quantity
		quote.Lines = append(quote.Lines, domain.QuoteLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: domain.Money{Currency: l.Currency, Amount: l.UnitAmount},
			LineTotal: domain.Money{Currency: l.Currency, Amount: lineTotal},
		})
		quote.Total.Amount += lineTotal
	}

	return quote, nil
}

// PlaceOrder turns the customer's orderable cart lines into a pending order,
// appends it to the ledger and clears those lines from the cart. Zeroed lines
// stay in the cart.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (orderdomain.Order, error) {
	customer := strings.TrimSpace(req.Customer)
	if customer == "" {
		return orderdomain.Order{}, ErrInvalidInput
	}
	address := strings.TrimSpace(req.DeliveryAddress)
	if address == "" {
		return orderdomain.Order{}, ErrNoAddress
	}

	var placed orderdomain.Order
	err := s.Cart.TakeActiveLines(ctx, customer, func(lines []domain.CartLine) error {
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		id, err := s.newID()
		if err != nil {
			return fmt.Errorf("generate order id: %w", err)
		}

		items := make([]orderdomain.Item, 0, len(lines))
		for _, l := range lines {
			items = append(items, orderdomain.Item{
				ProductID:  l.ProductID,
				Name:       l.Name,
				ImageRef:   l.ImageRef,
				UnitAmount: l.UnitAmount,
				Quantity:   l.Quantity,
			})
		}

		order := orderdomain.NewOrder(id, customer, address, s.currency, items, s.now())
		if err := s.Orders.Append(ctx, order); err != nil {
			return fmt.Errorf("append order: %w", err)
		}
		placed = order
		return nil
	})
	if err != nil {
		return orderdomain.Order{}, err
	}

	s.log.InfoContext(ctx, "order placed",
		slog.String("order_id", placed.ID),
		slog.String("customer", customer),
		slog.Int("items", len(placed.Items)),
		slog.Int64("total_amount", placed.TotalAmount))
	return placed, nil
}
