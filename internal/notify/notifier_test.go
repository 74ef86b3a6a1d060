package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/gateway"
)

// senderMock fails for the configured recipients and records the rest
type senderMock struct {
	failFor map[int64]bool
	sent    map[int64]gateway.Reply
}

func newSenderMock(failFor ...int64) *senderMock {
	m := &senderMock{
		failFor: make(map[int64]bool),
		sent:    make(map[int64]gateway.Reply),
	}
	for _, id := range failFor {
		m.failFor[id] = true
	}
	return m
}

func (m *senderMock) Send(_ context.Context, userID int64, reply gateway.Reply) error {
	if m.failFor[userID] {
		return errors.New("gateway unreachable")
	}
	m.sent[userID] = reply
	return nil
}

func sampleOrder() domain.Order {
	return domain.Order{
		ID:       "order-uuid-1",
		Number:   1,
		Username: "alice",
		Address:  "Addr A",
		Phone:    "+1000",
		Payment:  domain.PaymentCash,
		Total:    decimal.NewFromInt(1700),
		Items: []domain.OrderItem{
			{Name: "Margherita", Quantity: 2, Subtotal: decimal.NewFromInt(1700)},
		},
	}
}

func TestOrderPlaced_DeliversToAllRecipients(t *testing.T) {
	sender := newSenderMock()
	notifier := New(sender, []int64{10, 20})

	notifier.OrderPlaced(context.Background(), sampleOrder())

	require.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[10].Text, "New order #1")
	assert.Contains(t, sender.sent[10].Text, "Margherita x 2")
	assert.Contains(t, sender.sent[10].Text, "Total: 1700.00")
}

func TestOrderPlaced_OneFailureDoesNotBlockOthers(t *testing.T) {
	sender := newSenderMock(10)
	notifier := New(sender, []int64{10, 20, 30})

	notifier.OrderPlaced(context.Background(), sampleOrder())

	assert.NotContains(t, sender.sent, int64(10))
	assert.Contains(t, sender.sent, int64(20))
	assert.Contains(t, sender.sent, int64(30))
}

func TestOrderPlaced_NoRecipients(t *testing.T) {
	sender := newSenderMock()
	notifier := New(sender, nil)

	// must be a no-op, not a panic
	notifier.OrderPlaced(context.Background(), sampleOrder())
	assert.Empty(t, sender.sent)
}

func TestOrderPlaced_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	sender := newSenderMock(10)
	notifier := New(sender, []int64{10})

	// three consecutive failures trip the breaker
	for i := 0; i < 3; i++ {
		notifier.OrderPlaced(context.Background(), sampleOrder())
	}

	// recipient is reachable again, but the breaker is still open
	sender.failFor[10] = false
	notifier.OrderPlaced(context.Background(), sampleOrder())
	assert.Empty(t, sender.sent)
}
