package model

import "github.com/shopspring/decimal"

// Product is one row of the product table. Money fields are NUMERIC(10,2).
type Product struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Taxes    decimal.Decimal `json:"taxes"`
	Ads      decimal.Decimal `json:"ads"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Category string          `json:"category"`
}

// ComputedTotal returns price + taxes + ads - discount. The store never
// checks Total against it.
func (p Product) ComputedTotal() decimal.Decimal {
	return p.Price.Add(p.Taxes).Add(p.Ads).Sub(p.Discount)
}

// WriteResult describes the outcome of a write statement.
type WriteResult struct {
	AffectedRows int64 `json:"affectedRows"`
	InsertID     int64 `json:"insertId"`
}
