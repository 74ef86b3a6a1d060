package store

import (
	"sync"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

// MemoryLedger implements OrderLedger with an in-memory append-only slice.
type MemoryLedger struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemoryLedger creates an empty in-memory order ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// Append stores the order under the next 1-based number and returns it.
func (l *MemoryLedger) Append(order domain.Order) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	order.Number = len(l.orders) + 1
	l.orders = append(l.orders, order)
	return order.Number
}

// Recent returns up to n orders, most recent first.
func (l *MemoryLedger) Recent(n int) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.orders) {
		n = len(l.orders)
	}
	result := make([]domain.Order, 0, n)
	for i := len(l.orders) - 1; i >= len(l.orders)-n; i-- {
		result = append(result, l.orders[i])
	}
	return result
}

// All returns a copy of every stored order in append order.
func (l *MemoryLedger) All() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]domain.Order, len(l.orders))
	copy(result, l.orders)
	return result
}

// Len returns the number of stored orders.
func (l *MemoryLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.orders)
}
