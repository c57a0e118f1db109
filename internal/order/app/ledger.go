package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dwikikusuma/refill-store/internal/order/domain"
	"github.com/dwikikusuma/refill-store/pkg/observable"
)

var (
	ErrInvalidOrder   = errors.New("invalid order")
	ErrDuplicateOrder = errors.New("order id already in ledger")
)

// Ledger owns every order placed during the process lifetime, in placement
// order. Readers get immutable snapshots; each successful mutation publishes a
// new one and notifies subscribers.
//
// Mutations naming an unknown order id are no-ops.
type Ledger struct {
	orders *observable.List[domain.Order]
	log    *slog.Logger
}

func NewLedger(log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{
		orders: observable.NewListWithClone(domain.Order.Clone),
		log:    log,
	}
}

func (l *Ledger) Append(ctx context.Context, order domain.Order) error {
	if err := validate(order); err != nil {
		return err
	}
	order = order.Clone()

	var dup bool
	l.orders.Update(func(cur []domain.Order) ([]domain.Order, bool) {
		if slices.ContainsFunc(cur, func(o domain.Order) bool { return o.ID == order.ID }) {
			dup = true
			return cur, false
		}
		next := make([]domain.Order, len(cur), len(cur)+1)
		copy(next, cur)
		return append(next, order), true
	})
	if dup {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.ID)
	}

	l.log.InfoContext(ctx, "order appended",
		slog.String("order_id", order.ID),
		slog.String("customer", order.CustomerName),
		slog.Int64("total_amount", order.TotalAmount))
	return nil
}

func validate(o domain.Order) error {
	if strings.TrimSpace(o.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidOrder)
	}
	if o.Status != domain.StatusPending {
		return fmt.Errorf("%w: new orders start pending, got %s", ErrInvalidOrder, o.Status)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidOrder)
	}
	for i, item := range o.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidOrder, i, item.Quantity)
		}
		if item.UnitAmount < 0 {
			return fmt.Errorf("%w: item %d: unit amount cannot be negative, got %d", ErrInvalidOrder, i, item.UnitAmount)
		}
	}
	return nil
}

// Orders returns every order, including archived and customer-deleted ones.
func (l *Ledger) Orders() []domain.Order {
	return l.orders.Snapshot()
}

func (l *Ledger) Get(id string) (domain.Order, bool) {
	return l.orders.Find(func(o domain.Order) bool { return o.ID == id })
}

func (l *Ledger) CustomerOrders(customer string) []domain.Order {
	return CustomerView(customer)(l.orders.Snapshot())
}

func (l *Ledger) AdminLiveOrders() []domain.Order {
	return AdminLiveView(l.orders.Snapshot())
}

func (l *Ledger) AdminArchivedOrders() []domain.Order {
	return AdminArchiveView(l.orders.Snapshot())
}

// Subscribe calls fn with the full ledger after every mutation, in
// subscription order. fn must not mutate the ledger.
func (l *Ledger) Subscribe(fn func([]domain.Order)) (cancel func()) {
	return l.orders.Subscribe(fn)
}

// UpdateStatus moves an order to target. Only the adjacent forward step, or
// pending -> cancelled, is accepted.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, target domain.Status) error {
	return l.replace(ctx, id, "update_status", func(o domain.Order) (domain.Order, error) {
		return o.WithStatus(target)
	})
}

// Advance moves an order one step along pending -> preparing -> on_delivery ->
// delivered.
func (l *Ledger) Advance(ctx context.Context, id string) error {
	return l.replace(ctx, id, "advance", func(o domain.Order) (domain.Order, error) {
		next, ok := o.Status.Next()
		if !ok {
			return o, fmt.Errorf("%w: %s is final", domain.ErrInvalidTransition, o.Status)
		}
		return o.WithStatus(next)
	})
}

func (l *Ledger) Cancel(ctx context.Context, id string) error {
	return l.UpdateStatus(ctx, id, domain.StatusCancelled)
}

func (l *Ledger) ArchiveForAdmin(ctx context.Context, id string) error {
	return l.replace(ctx, id, "archive_for_admin", domain.Order.WithAdminArchived)
}

func (l *Ledger) MarkDeletedByCustomer(ctx context.Context, id string) error {
	return l.replace(ctx, id, "mark_deleted_by_customer", func(o domain.Order) (domain.Order, error) {
		return o.WithCustomerDeleted(), nil
	})
}

// RemoveOrder physically deletes the order.
func (l *Ledger) RemoveOrder(ctx context.Context, id string) error {
	removed := l.orders.Update(func(cur []domain.Order) ([]domain.Order, bool) {
		i := slices.IndexFunc(cur, func(o domain.Order) bool { return o.ID == id })
		if i < 0 {
			return cur, false
		}
		next := make([]domain.Order, 0, len(cur)-1)
		next = append(next, cur[:i]...)
		return append(next, cur[i+1:]...), true
	})
	if !removed {
		l.log.DebugContext(ctx, "order not found", slog.String("op", "remove"), slog.String("order_id", id))
		return nil
	}
	l.log.InfoContext(ctx, "order removed", slog.String("order_id", id))
	return nil
}

// replace swaps the order with fn's result in a fresh snapshot. fn errors are
// returned without publishing anything; an unchanged result publishes nothing.
func (l *Ledger) replace(ctx context.Context, id, op string, fn func(domain.Order) (domain.Order, error)) error {
	var (
		found  bool
		opErr  error
		before domain.Order
		after  domain.Order
	)

	l.orders.Update(func(cur []domain.Order) ([]domain.Order, bool) {
		i := slices.IndexFunc(cur, func(o domain.Order) bool { return o.ID == id })
		if i < 0 {
			return cur, false
		}
		found = true
		before = cur[i]

		after, opErr = fn(before)
		if opErr != nil || sameState(before, after) {
			return cur, false
		}

		next := slices.Clone(cur)
		next[i] = after
		return next, true
	})

	attrs := []any{slog.String("op", op), slog.String("order_id", id)}
	switch {
	case !found:
		l.log.DebugContext(ctx, "order not found", attrs...)
		return nil
	case opErr != nil:
		l.log.WarnContext(ctx, "order change rejected", append(attrs, slog.Any("err", opErr))...)
		return opErr
	}

	l.log.InfoContext(ctx, "order changed", append(attrs,
		slog.String("status", after.Status.String()),
		slog.Bool("admin_archived", after.AdminArchived),
		slog.Bool("customer_deleted", after.CustomerDeleted))...)
	return nil
}

func sameState(a, b domain.Order) bool {
	return a.Status == b.Status && a.AdminArchived == b.AdminArchived && a.CustomerDeleted == b.CustomerDeleted
}
