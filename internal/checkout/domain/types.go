package domain

import "github.com/shopspring/decimal"

type Money struct {
	CurrencyCode string
	Amount       decimal.Decimal
}

type SummaryLine struct {
	LineID       string
	Title        string
	ProductTitle string
	Quantity     int
	UnitPrice    Money
	LineTotal    Money
}

// Summary is what the customer sees before leaving for the hosted checkout.
// Subtotal is for display only; the remote checkout prices the order.
type Summary struct {
	CartID        string
	CheckoutURL   string
	TotalQuantity int
	Lines         []SummaryLine
	Subtotal      Money
}
