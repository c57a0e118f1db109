package domain

import (
	"fmt"
	"slices"
	"time"
)

type Item struct {
	ProductID  string
	Name       string
	ImageRef   string
	UnitAmount int64
	Quantity   int64
}

func (i Item) LineTotal() int64 {
	return i.UnitAmount * i.Quantity
}

// Order is immutable apart from Status and the two visibility flags, which
// change only through the With* methods returning a replacement copy.
type Order struct {
	ID              string
	CustomerName    string
	DeliveryAddress string
	Items           []Item
	Currency        string
	// TotalAmount is fixed at creation and never recomputed.
	TotalAmount int64
	Status      Status
	OrderDate   time.Time

	AdminArchived   bool
	CustomerDeleted bool
}

// NewOrder materializes a pending order from a private copy of items.
func NewOrder(id, customer, address, currency string, items []Item, at time.Time) Order {
	own := slices.Clone(items)
	var total int64
	for _, it := range own {
		total += it.LineTotal()
	}
	return Order{
		ID:              id,
		CustomerName:    customer,
		DeliveryAddress: address,
		Items:           own,
		Currency:        currency,
		TotalAmount:     total,
		Status:          StatusPending,
		OrderDate:       at,
	}
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func (o Order) WithStatus(target Status) (Order, error) {
	if !o.Status.CanTransitionTo(target) {
		return o, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}
	o.Status = target
	return o, nil
}

func (o Order) WithAdminArchived() (Order, error) {
	if !o.Status.IsTerminal() {
		return o, fmt.Errorf("%w: order %s is %s", ErrNotArchivable, o.ID, o.Status)
	}
	o.AdminArchived = true
	return o, nil
}

func (o Order) WithCustomerDeleted() Order {
	o.CustomerDeleted = true
	return o
}

// VisibleToCustomer is the customer's order list filter. An empty customer
// matches every customer.
func (o Order) VisibleToCustomer(customer string) bool {
	if o.CustomerDeleted {
		return false
	}
	return customer == "" || o.CustomerName == customer
}

func (o Order) InAdminLive() bool {
	return !o.AdminArchived
}

func (o Order) InAdminArchive() bool {
	return o.AdminArchived
}
