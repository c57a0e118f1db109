package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending() Order {
	return NewOrder("o1", "customer", "Addr1", "PHP",
		[]Item{{ProductID: "p1", Name: "Round Gallon", UnitAmount: 200, Quantity: 2}},
		time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
}

func TestNewOrder(t *testing.T) {
	items := []Item{
		{ProductID: "p1", UnitAmount: 200, Quantity: 2},
		{ProductID: "p2", UnitAmount: 150, Quantity: 1},
	}
	o := NewOrder("o1", "customer", "Addr1", "PHP", items, time.Now())

	assert.Equal(t, StatusPending, o.Status)
	assert.EqualValues(t, 550, o.TotalAmount)
	assert.False(t, o.AdminArchived)
	assert.False(t, o.CustomerDeleted)

	items[0].Quantity = 50
	assert.EqualValues(t, 2, o.Items[0].Quantity, "order must own its items")
}

func TestCloneDetachesItems(t *testing.T) {
	o := NewOrder("o1", "ana", "Addr1", "PHP", []Item{{ProductID: "p1", UnitAmount: 200, Quantity: 2}}, time.Now())

	c := o.Clone()
	c.Items[0].Quantity = 9

	assert.Equal(t, int64(2), o.Items[0].Quantity)
}

func TestStatusTransitions(t *testing.T) {
	legal := map[Status][]Status{
		StatusPending:    {StatusPreparing, StatusCancelled},
		StatusPreparing:  {StatusOnDelivery},
		StatusOnDelivery: {StatusDelivered},
		StatusDelivered:  nil,
		StatusCancelled:  nil,
	}

	for from, allowed := range legal {
		for _, to := range allStatuses {
			want := false
			for _, a := range allowed {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusNextAndTerminal(t *testing.T) {
	next, ok := StatusPending.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, next)

	_, ok = StatusDelivered.Next()
	assert.False(t, ok)
	_, ok = StatusCancelled.Next()
	assert.False(t, ok)

	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusOnDelivery.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("on_delivery")
	require.NoError(t, err)
	assert.Equal(t, StatusOnDelivery, s)

	_, err = ParseStatus("shipped")
	assert.Error(t, err)
}

func TestWithStatusRejectsSkips(t *testing.T) {
	o := newPending()

	_, err := o.WithStatus(StatusDelivered)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	prep, err := o.WithStatus(StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status, "receiver is not modified")
	assert.Equal(t, StatusPreparing, prep.Status)

	_, err = prep.WithStatus(StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWithAdminArchived(t *testing.T) {
	o := newPending()
	_, err := o.WithAdminArchived()
	assert.ErrorIs(t, err, ErrNotArchivable)

	cancelled, err := o.WithStatus(StatusCancelled)
	require.NoError(t, err)
	archived, err := cancelled.WithAdminArchived()
	require.NoError(t, err)
	assert.True(t, archived.AdminArchived)
	assert.False(t, archived.CustomerDeleted)
}

func TestVisibilityFlagsAreIndependent(t *testing.T) {
	o := newPending().WithCustomerDeleted()

	assert.True(t, o.CustomerDeleted)
	assert.False(t, o.AdminArchived)
	assert.False(t, o.VisibleToCustomer("customer"))
	assert.True(t, o.InAdminLive())
	assert.False(t, o.InAdminArchive())
	assert.Equal(t, StatusPending, o.Status)
}

func TestVisibleToCustomerFiltersByName(t *testing.T) {
	o := newPending()
	assert.True(t, o.VisibleToCustomer("customer"))
	assert.True(t, o.VisibleToCustomer(""))
	assert.False(t, o.VisibleToCustomer("someone-else"))
}
