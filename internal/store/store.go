package store

import (
	"errors"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

// Common errors returned by the stores
var (
	ErrItemNotFound = errors.New("menu item not found")
)

// CatalogStore defines the interface for menu catalog operations.
// All mutations come from admin flows; reads come from every customer flow.
type CatalogStore interface {
	// Categories returns categories that have at least one available item,
	// in first-seen order
	Categories() []string

	// ItemsByCategory returns available items of a category in insertion order
	ItemsByCategory(category string) []domain.MenuItem

	// Item returns the item with the given id or ErrItemNotFound
	Item(id int64) (domain.MenuItem, error)

	// AddItem assigns the next id and stores the item, returning the stored copy
	AddItem(item domain.MenuItem) domain.MenuItem

	// UpdateItem replaces the item with the same id, or returns ErrItemNotFound
	UpdateItem(item domain.MenuItem) error

	// DeleteItem removes the item by id; idempotent, ids are never reused
	DeleteItem(id int64)

	// AllItems returns every item in insertion order, available or not
	// (admin views)
	AllItems() []domain.MenuItem

	// Seed replaces the whole catalog (used at startup)
	Seed(items []domain.MenuItem)
}

// CartStore defines the interface for per-user cart operations.
type CartStore interface {
	// Add inserts an entry or merges the quantity into an existing entry
	// for the same item id
	Add(userID, itemID int64, quantity int)

	// Items returns the user's cart in insertion order; empty slice for an
	// unknown user, never an error
	Items(userID int64) []domain.CartItem

	// Remove deletes the entry for itemID; no-op when absent
	Remove(userID, itemID int64)

	// Clear empties the user's cart; no-op for an unknown user
	Clear(userID int64)
}

// OrderLedger defines the interface for the append-only order record.
type OrderLedger interface {
	// Append assigns the next 1-based order number, stores the order and
	// returns the number. Numbers are never reused.
	Append(order domain.Order) int

	// Recent returns up to n orders, most recent first
	Recent(n int) []domain.Order

	// All returns every stored order in append order
	All() []domain.Order

	// Len returns the number of stored orders
	Len() int
}
