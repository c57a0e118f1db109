package storefrontv1

import (
	"time"

	"github.com/shopspring/decimal"
)

type Empty struct{}

type Money struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	Display  string `json:"display"`
}

type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	ImageRef string `json:"image_ref"`
}

type ListProductsRequest struct {
	Query  string `json:"query,omitempty"`
	Limit  int32  `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type ListProductsResponse struct {
	Products   []Product `json:"products"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type GetProductResponse struct {
	Product Product `json:"product"`
}

type CartLine struct {
	Product    Product `json:"product"`
	Quantity   int64   `json:"quantity"`
	TotalPrice Money   `json:"total_price"`
	// Active is false for zeroed lines kept for quick re-add.
	Active bool `json:"active"`
}

type Cart struct {
	Customer        string     `json:"customer"`
	Lines           []CartLine `json:"lines"`
	ActiveItemCount int        `json:"active_item_count"`
	Total           Money      `json:"total"`
}

type GetCartRequest struct{}

type CartProductRequest struct {
	ProductID string `json:"product_id"`
}

type QuoteRequest struct{}

type QuoteLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
	LineTotal Money  `json:"line_total"`
}

type QuoteResponse struct {
	Lines []QuoteLine `json:"lines"`
	Total Money       `json:"total"`
}

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

type PlaceOrderResponse struct {
	Order Order `json:"order"`
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	ImageRef  string `json:"image_ref"`
	Quantity  int64  `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
	LineTotal Money  `json:"line_total"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	DeliveryAddress string      `json:"delivery_address"`
	Items           []OrderItem `json:"items"`
	Total           Money       `json:"total"`
	Status          string      `json:"status"`
	StatusTone      string      `json:"status_tone"`
	OrderDate       time.Time   `json:"order_date"`
	AdminArchived   bool        `json:"admin_archived"`
	CustomerDeleted bool        `json:"customer_deleted"`
}

type ListOrdersRequest struct {
	// Archived selects the admin archive instead of the live list.
	Archived bool `json:"archived,omitempty"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type GetOrderRequest struct {
	ID string `json:"id"`
}

type GetOrderResponse struct {
	Order Order `json:"order"`
}

type OrderIDRequest struct {
	ID string `json:"id"`
}

type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type WatchOrdersRequest struct {
	Archived bool `json:"archived,omitempty"`
}

type SubmitRatingRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type Rating struct {
	ID          string    `json:"id"`
	Rating      int32     `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	Author      string    `json:"author"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SubmitRatingResponse struct {
	Rating Rating `json:"rating"`
}

type ListRatingsRequest struct{}

type ListRatingsResponse struct {
	Ratings []Rating `json:"ratings"`
}

type RatingSummaryRequest struct{}

type RatingSummaryResponse struct {
	Count     int    `json:"count"`
	Average   string `json:"average"`
	Histogram []int  `json:"histogram"`
}

// NewMoney fills Display with the amount in major units.
func NewMoney(currency string, amount int64) Money {
	return Money{
		Currency: currency,
		Amount:   amount,
		Display:  decimal.New(amount, -2).StringFixed(2) + " " + currency,
	}
}
