package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer chose to pay on delivery.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// ValidPayment reports whether m is one of the supported payment methods.
func ValidPayment(m PaymentMethod) bool {
	return m == PaymentCard || m == PaymentCash
}

// OrderStatus tracks an order through the kitchen. The customer flow only
// ever creates pending orders; the rest of the table is for staff tooling.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether an order may move from status `from`
// to status `to`.
func CanTransitionTo(from, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusAccepted || to == OrderStatusCancelled
	case OrderStatusAccepted:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	default:
		return false
	}
}

// OrderItem is a line item with the price captured at confirmation time.
// Catalog changes after confirmation never touch these snapshots.
type OrderItem struct {
	ItemID    int64
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// Order is a confirmed, committed order. Immutable once appended to the
// ledger except for Status.
type Order struct {
	ID        string
	Number    int
	UserID    int64
	Username  string
	Items     []OrderItem
	Address   string
	Phone     string
	Payment   PaymentMethod
	Total     decimal.Decimal
	CreatedAt time.Time
	Status    OrderStatus
}
