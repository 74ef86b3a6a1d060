package store

import (
	"sync"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

// MemoryCatalog implements CatalogStore with in-memory storage
type MemoryCatalog struct {
	mu     sync.RWMutex
	items  map[int64]domain.MenuItem
	order  []int64 // insertion order, survives updates
	nextID int64
}

// NewMemoryCatalog creates an empty in-memory catalog
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		items: make(map[int64]domain.MenuItem),
	}
}

// Seed replaces the catalog contents. The id counter continues past the
// highest seeded id so later additions never collide.
func (c *MemoryCatalog) Seed(items []domain.MenuItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int64]domain.MenuItem, len(items))
	c.order = c.order[:0]
	for _, item := range items {
		c.items[item.ID] = item
		c.order = append(c.order, item.ID)
		if item.ID >= c.nextID {
			c.nextID = item.ID + 1
		}
	}
}

// Categories returns categories having at least one available item,
// in the order they first appear in the catalog.
func (c *MemoryCatalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, id := range c.order {
		item := c.items[id]
		if !item.Available || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories
}

// ItemsByCategory returns the available items of a category in insertion order.
func (c *MemoryCatalog) ItemsByCategory(category string) []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []domain.MenuItem
	for _, id := range c.order {
		item := c.items[id]
		if item.Available && item.Category == category {
			result = append(result, item)
		}
	}
	return result
}

// AllItems returns every item in insertion order regardless of availability.
func (c *MemoryCatalog) AllItems() []domain.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.MenuItem, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.items[id])
	}
	return result
}

// Item returns the item with the given id.
func (c *MemoryCatalog) Item(id int64) (domain.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[id]
	if !exists {
		return domain.MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

// AddItem stores the item under the next free id and returns the stored copy.
// Deleted ids are never handed out again.
func (c *MemoryCatalog) AddItem(item domain.MenuItem) domain.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nextID == 0 {
		c.nextID = 1
	}
	item.ID = c.nextID
	c.nextID++

	c.items[item.ID] = item
	c.order = append(c.order, item.ID)
	return item
}

// UpdateItem replaces the stored item with the same id.
func (c *MemoryCatalog) UpdateItem(item domain.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[item.ID]; !exists {
		return ErrItemNotFound
	}
	c.items[item.ID] = item
	return nil
}

// DeleteItem removes the item by id. Calling it for an absent id is a no-op.
func (c *MemoryCatalog) DeleteItem(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		return
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
