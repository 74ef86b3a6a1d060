// Package notify delivers order summaries to privileged staff recipients.
package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/gateway"
)

// Notifier fans an order notice out to every configured recipient. A
// failure for one recipient is logged and does not stop the loop; a dead
// gateway trips the breaker so confirmations are not stalled by timeouts.
type Notifier struct {
	sender     gateway.Sender
	recipients []int64
	breaker    *gobreaker.CircuitBreaker[any]
}

// New creates a notifier for the given recipients
func New(sender gateway.Sender, recipients []int64) *Notifier {
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "staff-notify",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &Notifier{
		sender:     sender,
		recipients: recipients,
		breaker:    breaker,
	}
}

// OrderPlaced sends the order summary to every recipient. Errors are logged
// only; the order is already committed by the time this runs.
func (n *Notifier) OrderPlaced(ctx context.Context, order domain.Order) {
	reply := formatOrderNotice(order)

	for _, recipient := range n.recipients {
		_, err := n.breaker.Execute(func() (any, error) {
			return nil, n.sender.Send(ctx, recipient, reply)
		})
		if err != nil {
			log.Printf("order #%d: notifying %d failed: %v", order.Number, recipient, err)
		}
	}
}

func formatOrderNotice(order domain.Order) gateway.Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d\n", order.Number)
	fmt.Fprintf(&b, "Customer: @%s\n", order.Username)
	fmt.Fprintf(&b, "Address: %s\n", order.Address)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Payment: %s\n", order.Payment)
	fmt.Fprintf(&b, "Placed: %s\n\n", order.CreatedAt.Format("02.01.2006 15:04"))

	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x %d = %s\n", item.Name, item.Quantity, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s", order.Total.StringFixed(2))

	return gateway.Reply{Text: b.String()}
}
