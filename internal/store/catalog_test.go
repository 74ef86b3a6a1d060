package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

func menuItem(name, category string, price int64, available bool) domain.MenuItem {
	return domain.MenuItem{
		Name:      name,
		Price:     decimal.NewFromInt(price),
		Category:  category,
		Available: available,
	}
}

func TestCatalog_AddItem_AssignsSequentialIDs(t *testing.T) {
	catalog := NewMemoryCatalog()

	first := catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))
	second := catalog.AddItem(menuItem("Pepperoni", "Pizza", 950, true))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestCatalog_AddItem_NeverReusesDeletedIDs(t *testing.T) {
	catalog := NewMemoryCatalog()

	catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))
	second := catalog.AddItem(menuItem("Pepperoni", "Pizza", 950, true))

	catalog.DeleteItem(second.ID)
	third := catalog.AddItem(menuItem("Borscht", "Soups", 450, true))

	assert.Equal(t, int64(3), third.ID)
}

func TestCatalog_Seed_ContinuesIDCounter(t *testing.T) {
	catalog := NewMemoryCatalog()
	catalog.Seed([]domain.MenuItem{
		{ID: 1, Name: "Margherita", Category: "Pizza", Price: decimal.NewFromInt(850), Available: true},
		{ID: 7, Name: "Caesar", Category: "Salads", Price: decimal.NewFromInt(680), Available: true},
	})

	added := catalog.AddItem(menuItem("Espresso", "Drinks", 180, true))
	assert.Equal(t, int64(8), added.ID)
}

func TestCatalog_Categories_AvailableOnly(t *testing.T) {
	catalog := NewMemoryCatalog()
	catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))
	catalog.AddItem(menuItem("Borscht", "Soups", 450, false))
	catalog.AddItem(menuItem("Caesar", "Salads", 680, true))

	categories := catalog.Categories()
	assert.Equal(t, []string{"Pizza", "Salads"}, categories)
}

func TestCatalog_ItemsByCategory_FiltersUnavailable(t *testing.T) {
	catalog := NewMemoryCatalog()
	catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))
	catalog.AddItem(menuItem("Pepperoni", "Pizza", 950, false))
	catalog.AddItem(menuItem("Caesar", "Salads", 680, true))

	items := catalog.ItemsByCategory("Pizza")
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita", items[0].Name)
}

func TestCatalog_AllItems_IncludesUnavailable(t *testing.T) {
	catalog := NewMemoryCatalog()
	catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))
	catalog.AddItem(menuItem("Pepperoni", "Pizza", 950, false))

	assert.Len(t, catalog.AllItems(), 2)
}

func TestCatalog_Item_NotFound(t *testing.T) {
	catalog := NewMemoryCatalog()

	_, err := catalog.Item(42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalog_UpdateItem(t *testing.T) {
	catalog := NewMemoryCatalog()
	item := catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))

	item.Price = decimal.NewFromInt(900)
	item.Available = false
	require.NoError(t, catalog.UpdateItem(item))

	stored, err := catalog.Item(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "900.00", stored.Price.StringFixed(2))
	assert.False(t, stored.Available)
}

func TestCatalog_UpdateItem_NotFound(t *testing.T) {
	catalog := NewMemoryCatalog()

	err := catalog.UpdateItem(domain.MenuItem{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCatalog_DeleteItem_Idempotent(t *testing.T) {
	catalog := NewMemoryCatalog()
	item := catalog.AddItem(menuItem("Margherita", "Pizza", 850, true))

	catalog.DeleteItem(item.ID)
	catalog.DeleteItem(item.ID) // second delete must not panic

	_, err := catalog.Item(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Empty(t, catalog.AllItems())
}
