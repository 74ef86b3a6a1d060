package domain

import "github.com/shopspring/decimal"

// MenuItem is a single orderable dish in the catalog. Items are mutable in
// place through admin operations; the catalog store assigns IDs on creation.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	Available   bool
}
