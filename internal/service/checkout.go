package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/store"
)

// OrderNotifier receives committed orders for staff notification. Delivery
// problems are the notifier's to log; confirmation never fails because of
// them, which is why this interface returns nothing.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order domain.Order)
}

// CheckoutService prices carts against the live catalog and turns them into
// immutable ledger entries on confirmation.
type CheckoutService struct {
	catalog  store.CatalogStore
	carts    store.CartStore
	ledger   store.OrderLedger
	notifier OrderNotifier
}

// NewCheckoutService creates a checkout service over the given stores.
// notifier may be nil when staff notification is not wired (tests).
func NewCheckoutService(catalog store.CatalogStore, carts store.CartStore, ledger store.OrderLedger, notifier OrderNotifier) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		carts:    carts,
		ledger:   ledger,
		notifier: notifier,
	}
}

// Snapshot prices the user's cart against the live catalog. Entries whose
// item no longer resolves or is no longer available are dropped from the
// stored cart and excluded from the result. An empty result is ErrEmptyCart.
//
// Callers serialize per user (session lock), so the prune cannot race a
// concurrent add for the same user.
func (s *CheckoutService) Snapshot(userID int64) ([]domain.OrderItem, decimal.Decimal, error) {
	var items []domain.OrderItem
	total := decimal.Zero

	for _, entry := range s.carts.Items(userID) {
		item, err := s.catalog.Item(entry.ItemID)
		if err != nil || !item.Available {
			// item was deleted or pulled from the menu mid-session
			s.carts.Remove(userID, entry.ItemID)
			continue
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		items = append(items, domain.OrderItem{
			ItemID:    item.ID,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: item.Price,
			Quantity:  entry.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	if len(items) == 0 {
		return nil, decimal.Zero, ErrEmptyCart
	}
	return items, total, nil
}

// Confirm builds an order from the current cart snapshot, appends it to the
// ledger, clears the cart and hands the committed order to the notifier.
// The order is committed before notification is attempted.
func (s *CheckoutService) Confirm(ctx context.Context, userID int64, username, address, phone string, payment domain.PaymentMethod) (domain.Order, error) {
	if !domain.ValidPayment(payment) {
		return domain.Order{}, ErrInvalidPayment
	}

	items, total, err := s.Snapshot(userID)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Items:     items,
		Address:   address,
		Phone:     phone,
		Payment:   payment,
		Total:     total,
		CreatedAt: time.Now(),
		Status:    domain.OrderStatusPending,
	}

	order.Number = s.ledger.Append(order)
	s.carts.Clear(userID)
	log.Printf("order #%d committed: user=%d total=%s payment=%s", order.Number, userID, total.StringFixed(2), payment)

	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, order)
	}
	return order, nil
}
