package store

import (
	"sync"
	"time"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

// MemoryCarts implements CartStore with in-memory storage keyed by user id.
type MemoryCarts struct {
	mu    sync.Mutex
	carts map[int64][]domain.CartItem
}

// NewMemoryCarts creates an empty in-memory cart store
func NewMemoryCarts() *MemoryCarts {
	return &MemoryCarts{
		carts: make(map[int64][]domain.CartItem),
	}
}

// Add merges the quantity into an existing entry for the same item id, or
// appends a new entry preserving insertion order.
func (s *MemoryCarts) Add(userID, itemID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ItemID == itemID {
			cart[i].Quantity += quantity
			return
		}
	}
	s.carts[userID] = append(cart, domain.CartItem{
		ItemID:   itemID,
		Quantity: quantity,
		AddedAt:  time.Now(),
	})
}

// Items returns a copy of the user's cart in insertion order.
func (s *MemoryCarts) Items(userID int64) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	result := make([]domain.CartItem, len(cart))
	copy(result, cart)
	return result
}

// Remove deletes the entry matching itemID, if any.
func (s *MemoryCarts) Remove(userID, itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ItemID == itemID {
			s.carts[userID] = append(cart[:i], cart[i+1:]...)
			return
		}
	}
}

// Clear empties the user's cart.
func (s *MemoryCarts) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
