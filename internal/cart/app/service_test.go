package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/refill-store/internal/cart/domain"
	"github.com/dwikikusuma/refill-store/internal/cart/infra/memory"
	"github.com/dwikikusuma/refill-store/pkg/logger"
)

type fakeCatalog map[string]domain.Product

func (f fakeCatalog) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := f[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func newTestService() *Service {
	catalog := fakeCatalog{
		"p1": {ID: "p1", Name: "Round Gallon", Currency: "PHP", UnitAmount: 200},
		"p2": {ID: "p2", Name: "Slim Gallon", Currency: "PHP", UnitAmount: 150},
	}
	return NewService(memory.NewCartRepo(), catalog, logger.Discard())
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddProduct(ctx, "customer", "p1")
	require.NoError(t, err)
	snap, err := svc.AddProduct(ctx, "customer", "p1")
	require.NoError(t, err)

	require.Len(t, snap.Lines, 1)
	assert.EqualValues(t, 2, snap.Lines[0].Quantity)
	assert.EqualValues(t, 400, snap.TotalAmount)
	assert.Equal(t, 1, snap.ActiveItemCount)
}

func TestAddProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.AddProduct(ctx, "customer", "p404")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank customer", func(t *testing.T) {
		_, err := svc.AddProduct(ctx, "  ", "p1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("blank product", func(t *testing.T) {
		_, err := svc.AddProduct(ctx, "customer", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCartsArePerCustomer(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddProduct(ctx, "ana", "p1")
	require.NoError(t, err)

	snap, err := svc.GetCart(ctx, "ben")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
	assert.Equal(t, "ben", snap.CustomerID)
}

func TestEditsOnMissingCartAreNoOps(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for name, op := range map[string]func(context.Context, string, string) (domain.Snapshot, error){
		"increment": svc.Increment,
		"decrement": svc.Decrement,
		"remove":    svc.RemoveLine,
	} {
		t.Run(name, func(t *testing.T) {
			snap, err := op(ctx, "customer", "p1")
			require.NoError(t, err)
			assert.Empty(t, snap.Lines)
		})
	}
}

func TestDecrementKeepsZeroedLine(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddProduct(ctx, "customer", "p1")
	require.NoError(t, err)

	snap, err := svc.Decrement(ctx, "customer", "p1")
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Zero(t, snap.Lines[0].Quantity)
	assert.Zero(t, snap.ActiveItemCount)

	lines, err := svc.ActiveLines(ctx, "customer")
	require.NoError(t, err)
	assert.Empty(t, lines)

	snap, err = svc.Increment(ctx, "customer", "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 200, snap.TotalAmount)
}

func TestTakeActiveLines(t *testing.T) {
	ctx := context.Background()

	t.Run("success removes active lines only", func(t *testing.T) {
		svc := newTestService()
		_, _ = svc.AddProduct(ctx, "customer", "p1")
		_, _ = svc.AddProduct(ctx, "customer", "p2")
		_, _ = svc.Decrement(ctx, "customer", "p2")

		var got []domain.Line
		err := svc.TakeActiveLines(ctx, "customer", func(lines []domain.Line) error {
			got = lines
			return nil
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0].Product.ID)

		snap, _ := svc.GetCart(ctx, "customer")
		require.Len(t, snap.Lines, 1)
		assert.Equal(t, "p2", snap.Lines[0].Product.ID)
	})

	t.Run("failure leaves cart alone", func(t *testing.T) {
		svc := newTestService()
		_, _ = svc.AddProduct(ctx, "customer", "p1")
		boom := errors.New("boom")

		err := svc.TakeActiveLines(ctx, "customer", func([]domain.Line) error { return boom })
		assert.ErrorIs(t, err, boom)

		snap, _ := svc.GetCart(ctx, "customer")
		assert.Len(t, snap.Lines, 1)
	})

	t.Run("no cart yields no lines", func(t *testing.T) {
		svc := newTestService()
		called := false
		err := svc.TakeActiveLines(ctx, "customer", func(lines []domain.Line) error {
			called = true
			assert.Empty(t, lines)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})
}
