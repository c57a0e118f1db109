package app

import "github.com/dwikikusuma/refill-store/internal/order/domain"

// A View projects a ledger snapshot onto one screen's list.
type View func([]domain.Order) []domain.Order

func filter(orders []domain.Order, keep func(domain.Order) bool) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func CustomerView(customer string) View {
	return func(orders []domain.Order) []domain.Order {
		return filter(orders, func(o domain.Order) bool { return o.VisibleToCustomer(customer) })
	}
}

func AdminLiveView(orders []domain.Order) []domain.Order {
	return filter(orders, domain.Order.InAdminLive)
}

func AdminArchiveView(orders []domain.Order) []domain.Order {
	return filter(orders, domain.Order.InAdminArchive)
}
