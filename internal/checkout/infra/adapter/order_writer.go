package adapter

import (
	"context"

	orderapp "github.com/dwikikusuma/refill-store/internal/order/app"
	orderdomain "github.com/dwikikusuma/refill-store/internal/order/domain"
)

type OrderLedgerWriter struct {
	ledger *orderapp.Ledger
}

func NewOrderLedgerWriter(ledger *orderapp.Ledger) *OrderLedgerWriter {
	return &OrderLedgerWriter{ledger: ledger}
}

func (w *OrderLedgerWriter) Append(ctx context.Context, order orderdomain.Order) error {
	return w.ledger.Append(ctx, order)
}
