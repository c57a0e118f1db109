package domain

type Money struct {
	Currency string
	Amount   int64
}

// CartLine is an orderable line as checkout sees it.
type CartLine struct {
	ProductID  string
	Name       string
	ImageRef   string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

type QuoteLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

type PlaceOrderRequest struct {
	Customer        string
	DeliveryAddress string
}
