package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/store"
)

// notifierMock records every order handed to it
type notifierMock struct {
	orders []domain.Order
}

func (m *notifierMock) OrderPlaced(_ context.Context, order domain.Order) {
	m.orders = append(m.orders, order)
}

type fixture struct {
	catalog  *store.MemoryCatalog
	carts    *store.MemoryCarts
	ledger   *store.MemoryLedger
	notifier *notifierMock
	checkout *CheckoutService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog:  store.NewMemoryCatalog(),
		carts:    store.NewMemoryCarts(),
		ledger:   store.NewMemoryLedger(),
		notifier: &notifierMock{},
	}
	f.checkout = NewCheckoutService(f.catalog, f.carts, f.ledger, f.notifier)
	return f
}

func (f *fixture) addItem(name, category string, price int64) domain.MenuItem {
	return f.catalog.AddItem(domain.MenuItem{
		Name:      name,
		Category:  category,
		Price:     decimal.NewFromInt(price),
		Available: true,
	})
}

func TestSnapshot_PricesAgainstLiveCatalog(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 2)

	_, total, err := f.checkout.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, "1700.00", total.StringFixed(2))

	// price change before checkout is reflected in the total
	item.Price = decimal.NewFromInt(900)
	require.NoError(t, f.catalog.UpdateItem(item))

	_, total, err = f.checkout.Snapshot(1)
	require.NoError(t, err)
	assert.Equal(t, "1800.00", total.StringFixed(2))
}

func TestSnapshot_EmptyCart(t *testing.T) {
	f := setup(t)

	_, _, err := f.checkout.Snapshot(1)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSnapshot_DropsDeletedItems(t *testing.T) {
	f := setup(t)
	kept := f.addItem("Margherita", "Pizza", 850)
	deleted := f.addItem("Pepperoni", "Pizza", 950)
	f.carts.Add(1, kept.ID, 1)
	f.carts.Add(1, deleted.ID, 1)

	f.catalog.DeleteItem(deleted.ID)

	items, total, err := f.checkout.Snapshot(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ItemID)
	assert.Equal(t, "850.00", total.StringFixed(2))

	// the orphaned entry is pruned from the stored cart too
	require.Len(t, f.carts.Items(1), 1)
	assert.Equal(t, kept.ID, f.carts.Items(1)[0].ItemID)
}

func TestSnapshot_DropsUnavailableItems(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 1)

	item.Available = false
	require.NoError(t, f.catalog.UpdateItem(item))

	_, _, err := f.checkout.Snapshot(1)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.carts.Items(1))
}

func TestConfirm_CommitsOrderAndClearsCart(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 2)

	order, err := f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", domain.PaymentCash)
	require.NoError(t, err)

	assert.Equal(t, 1, order.Number)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "1700.00", order.Total.StringFixed(2))
	assert.Equal(t, domain.PaymentCash, order.Payment)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "Addr A", order.Address)
	assert.Equal(t, "+1000", order.Phone)
	assert.False(t, order.CreatedAt.IsZero())

	assert.Equal(t, 1, f.ledger.Len())
	assert.Empty(t, f.carts.Items(1))

	require.Len(t, f.notifier.orders, 1)
	assert.Equal(t, order.Number, f.notifier.orders[0].Number)
}

func TestConfirm_TotalFrozenAfterPriceChange(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 2)

	order, err := f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", domain.PaymentCard)
	require.NoError(t, err)

	item.Price = decimal.NewFromInt(9999)
	require.NoError(t, f.catalog.UpdateItem(item))

	stored := f.ledger.All()[0]
	assert.Equal(t, "1700.00", stored.Total.StringFixed(2))
	assert.Equal(t, "850.00", stored.Items[0].UnitPrice.StringFixed(2))
	_ = order
}

func TestConfirm_SecondConfirmRejected(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 2)

	_, err := f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", domain.PaymentCash)
	require.NoError(t, err)

	// cart was cleared; confirming again must not create another order
	_, err = f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", domain.PaymentCash)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 1, f.ledger.Len())
}

func TestConfirm_InvalidPayment(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 1)

	_, err := f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", "voucher")
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.Equal(t, 0, f.ledger.Len())
	assert.Len(t, f.carts.Items(1), 1)
}

func TestConfirm_SequentialOrderNumbers(t *testing.T) {
	f := setup(t)
	item := f.addItem("Margherita", "Pizza", 850)

	for i := 1; i <= 3; i++ {
		f.carts.Add(1, item.ID, 1)
		order, err := f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", domain.PaymentCash)
		require.NoError(t, err)
		assert.Equal(t, i, order.Number)
	}
}

func TestConfirm_NilNotifier(t *testing.T) {
	f := setup(t)
	f.checkout = NewCheckoutService(f.catalog, f.carts, f.ledger, nil)
	item := f.addItem("Margherita", "Pizza", 850)
	f.carts.Add(1, item.ID, 1)

	_, err := f.checkout.Confirm(context.Background(), 1, "alice", "Addr A", "+1000", domain.PaymentCash)
	require.NoError(t, err)
}
