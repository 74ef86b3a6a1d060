package domain

import "time"

// CartItem is one uncommitted selection in a user's cart. No price is
// captured here: carts are priced against the live catalog until checkout,
// so a price change is reflected in the cart total immediately.
type CartItem struct {
	ItemID   int64
	Quantity int
	AddedAt  time.Time
}
