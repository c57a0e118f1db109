package auth

type Operation string

const (
	OpBrowseCatalog     Operation = "catalog.browse"
	OpEditCart          Operation = "cart.edit"
	OpCheckout          Operation = "checkout.place"
	OpListOwnOrders     Operation = "order.list_own"
	OpCancelOrder       Operation = "order.cancel"
	OpDeleteForCustomer Operation = "order.delete_for_customer"
	OpViewOrder         Operation = "order.view"
	OpWatchOrders       Operation = "order.watch"
	OpListAllOrders     Operation = "order.list_all"
	OpAdvanceStatus     Operation = "order.advance_status"
	OpArchiveOrder      Operation = "order.archive"
	OpRemoveOrder       Operation = "order.remove"
	OpSubmitRating      Operation = "rating.submit"
	OpViewRatings       Operation = "rating.view"
)

var permissions = map[Operation][]Role{
	OpBrowseCatalog:     {RoleCustomer, RoleAdmin},
	OpEditCart:          {RoleCustomer},
	OpCheckout:          {RoleCustomer},
	OpListOwnOrders:     {RoleCustomer},
	OpCancelOrder:       {RoleCustomer},
	OpDeleteForCustomer: {RoleCustomer},
	OpViewOrder:         {RoleCustomer, RoleAdmin},
	OpWatchOrders:       {RoleCustomer, RoleAdmin},
	OpListAllOrders:     {RoleAdmin},
	OpAdvanceStatus:     {RoleAdmin},
	OpArchiveOrder:      {RoleAdmin},
	OpRemoveOrder:       {RoleAdmin},
	OpSubmitRating:      {RoleCustomer},
	OpViewRatings:       {RoleAdmin},
}

func (r Role) Allows(op Operation) bool {
	for _, allowed := range permissions[op] {
		if allowed == r {
			return true
		}
	}
	return false
}
