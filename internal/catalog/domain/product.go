package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (centavos for PHP).
type Money struct {
	Currency string
	Amount   int64
}

// String renders the amount in major units, e.g. "25.00 PHP".
func (m Money) String() string {
	return decimal.New(m.Amount, -2).StringFixed(2) + " " + m.Currency
}

// Product is immutable once the catalog is built.
type Product struct {
	ID       string
	Name     string
	Price    Money
	ImageRef string
}
