package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/gateway"
	"github.com/Jaxa123/jaxa-tg/internal/service"
	"github.com/Jaxa123/jaxa-tg/internal/session"
)

func homeReply() gateway.Reply {
	return gateway.Reply{
		Text:    "Welcome! Browse the menu, fill your cart and we will deliver.\nPick a section:",
		Choices: mainKeyboard(),
	}
}

func helpReply() gateway.Reply {
	return gateway.Reply{
		Text:    "Use the buttons to navigate.\n/start — main menu\n/admin — staff panel",
		Choices: mainKeyboard(),
	}
}

func aboutReply() gateway.Reply {
	return gateway.Reply{
		Text: "A cozy family restaurant. Fresh ingredients, delivery in 30-45 minutes, open daily 10:00-23:00.",
		Choices: []gateway.Choice{
			{Label: "Main menu", Token: tokenHome},
		},
	}
}

func contactsReply() gateway.Reply {
	return gateway.Reply{
		Text: "Phone: +998 90 123-45-67\nEmail: info@vkusnoe-mesto.uz\nAmir Temur st. 15, open daily 10:00-23:00",
		Choices: []gateway.Choice{
			{Label: "Main menu", Token: tokenHome},
		},
	}
}

func unknownActionReply() gateway.Reply {
	return gateway.Reply{
		Text:    "Unknown action.",
		Choices: mainKeyboard(),
	}
}

func cancelledReply() gateway.Reply {
	return gateway.Reply{
		Text:    "Order cancelled. Your cart is untouched.",
		Choices: mainKeyboard(),
	}
}

func (h *Handler) showCategories(s *session.Session) gateway.Reply {
	categories := h.catalog.Categories()
	if len(categories) == 0 {
		return gateway.Reply{
			Text:    "The menu is empty right now, please come back later.",
			Choices: []gateway.Choice{{Label: "Main menu", Token: tokenHome}},
		}
	}

	s.State = session.StateSelectingCategory
	return gateway.Reply{
		Text:    "Our menu. Pick a category:",
		Choices: categoriesKeyboard(categories),
	}
}

func (h *Handler) showCategoryItems(s *session.Session, category string) gateway.Reply {
	items := h.catalog.ItemsByCategory(category)
	if len(items) == 0 {
		// category emptied since the keyboard was rendered; stay put
		return gateway.Reply{
			Text:    "Nothing in this category right now.",
			Choices: categoriesKeyboard(h.catalog.Categories()),
		}
	}

	s.Category = category
	s.State = session.StateSelectingItem
	return gateway.Reply{
		Text:    fmt.Sprintf("%s — pick a dish:", category),
		Choices: itemsKeyboard(items),
	}
}

func (h *Handler) showItem(arg string) gateway.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return unknownActionReply()
	}
	item, err := h.catalog.Item(id)
	if err != nil {
		return itemGoneReply()
	}

	text := fmt.Sprintf("%s\n\n%s\n\nPrice: %s", item.Name, item.Description, item.Price.StringFixed(2))
	if !item.Available {
		text += "\n\nCurrently unavailable."
	}
	return gateway.Reply{
		Text:     text,
		Choices:  itemKeyboard(item.ID),
		ImageURL: item.ImageURL,
	}
}

func itemGoneReply() gateway.Reply {
	return gateway.Reply{
		Text:    "This dish is no longer on the menu.",
		Choices: []gateway.Choice{{Label: "Back to menu", Token: tokenMenu}},
	}
}

func (h *Handler) startQuantity(s *session.Session, arg string) gateway.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return unknownActionReply()
	}
	item, err := h.catalog.Item(id)
	if err != nil || !item.Available {
		return itemGoneReply()
	}

	s.ItemID = id
	s.State = session.StateEnteringQuantity
	return gateway.Reply{
		Text:    fmt.Sprintf("Adding %s. How many?", item.Name),
		Choices: quantityKeyboard(),
	}
}

func (h *Handler) commitQuantity(s *session.Session, userID int64, arg string) gateway.Reply {
	if s.State != session.StateEnteringQuantity {
		return unknownActionReply()
	}

	quantity, err := strconv.Atoi(arg)
	if err != nil || quantity < 1 || quantity > maxQuantity {
		// re-prompt, state unchanged
		return gateway.Reply{
			Text:    fmt.Sprintf("Pick a quantity between 1 and %d:", maxQuantity),
			Choices: quantityKeyboard(),
		}
	}

	item, err := h.catalog.Item(s.ItemID)
	if err != nil || !item.Available {
		s.Reset()
		return itemGoneReply()
	}

	h.carts.Add(userID, item.ID, quantity)
	line := item.Price.Mul(decimal.NewFromInt(int64(quantity)))
	s.Reset()

	return gateway.Reply{
		Text: fmt.Sprintf("Added to cart!\n%s x %d = %s\n\nWhat next?", item.Name, quantity, line.StringFixed(2)),
		Choices: []gateway.Choice{
			{Label: "Go to cart", Token: tokenCart},
			{Label: "Keep browsing", Token: tokenMenu},
			{Label: "Main menu", Token: tokenHome},
		},
	}
}

func (h *Handler) showCart(userID int64) gateway.Reply {
	items, total, err := h.checkout.Snapshot(userID)
	if errors.Is(err, service.ErrEmptyCart) {
		return emptyCartReply()
	}

	var b strings.Builder
	b.WriteString("Your cart:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %s x %d = %s\n", item.Name, item.UnitPrice.StringFixed(2), item.Quantity, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s", total.StringFixed(2))

	return gateway.Reply{
		Text:    b.String(),
		Choices: cartKeyboard(items),
	}
}

func emptyCartReply() gateway.Reply {
	return gateway.Reply{
		Text: "Your cart is empty. Add something from the menu!",
		Choices: []gateway.Choice{
			{Label: "Go to menu", Token: tokenMenu},
			{Label: "Main menu", Token: tokenHome},
		},
	}
}

func (h *Handler) removeFromCart(userID int64, arg string) gateway.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return unknownActionReply()
	}
	h.carts.Remove(userID, id)
	return h.showCart(userID)
}

func (h *Handler) startCheckout(s *session.Session, userID int64) gateway.Reply {
	_, _, err := h.checkout.Snapshot(userID)
	if errors.Is(err, service.ErrEmptyCart) {
		// rejected in place, state unchanged
		return emptyCartReply()
	}

	s.State = session.StateEnteringAddress
	return gateway.Reply{
		Text:    "Checkout. Where should we deliver?\n(street, building, apartment)",
		Choices: []gateway.Choice{{Label: "Back to cart", Token: tokenCart}},
	}
}

func (h *Handler) collectAddress(s *session.Session, text string) gateway.Reply {
	if text == "" {
		return gateway.Reply{Text: "Please enter a delivery address:"}
	}
	s.Address = text
	s.State = session.StateEnteringPhone
	return gateway.Reply{Text: "Your phone number?\n(e.g. +7 900 123-45-67)"}
}

func (h *Handler) collectPhone(s *session.Session, text string) gateway.Reply {
	if text == "" {
		return gateway.Reply{Text: "Please enter a contact phone number:"}
	}
	s.Phone = text
	s.State = session.StateChoosingPayment
	return gateway.Reply{
		Text:    "How would you like to pay?",
		Choices: paymentKeyboard(),
	}
}

func (h *Handler) choosePayment(s *session.Session, userID int64, arg string) gateway.Reply {
	if s.State != session.StateChoosingPayment {
		return unknownActionReply()
	}
	payment := domain.PaymentMethod(arg)
	if !domain.ValidPayment(payment) {
		return gateway.Reply{
			Text:    "Pick one of the payment methods:",
			Choices: paymentKeyboard(),
		}
	}

	items, total, err := h.checkout.Snapshot(userID)
	if errors.Is(err, service.ErrEmptyCart) {
		s.Reset()
		return emptyCartReply()
	}

	s.Payment = payment
	s.State = session.StateConfirmingOrder

	var b strings.Builder
	b.WriteString("Order confirmation\n\n")
	fmt.Fprintf(&b, "Address: %s\nPhone: %s\nPayment: %s\n\n", s.Address, s.Phone, payment)
	for _, item := range items {
		fmt.Fprintf(&b, "- %s x %d = %s\n", item.Name, item.Quantity, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\nDelivery in 30-45 minutes.", total.StringFixed(2))

	return gateway.Reply{
		Text:    b.String(),
		Choices: confirmKeyboard(),
	}
}

func (h *Handler) confirmOrder(ctx context.Context, s *session.Session, ev gateway.Event) gateway.Reply {
	if s.State != session.StateConfirmingOrder {
		// stale confirm button; nothing staged
		return unknownActionReply()
	}

	order, err := h.checkout.Confirm(ctx, ev.UserID, ev.Username, s.Address, s.Phone, s.Payment)
	if errors.Is(err, service.ErrEmptyCart) {
		s.Reset()
		return emptyCartReply()
	}
	if err != nil {
		s.Reset()
		return gateway.Reply{
			Text:    "Something went wrong placing the order, please try again.",
			Choices: mainKeyboard(),
		}
	}

	s.Reset()
	return gateway.Reply{
		Text: fmt.Sprintf("Order placed!\n\nOrder #%d\nTotal: %s\nDelivery in 30-45 minutes.\n\nThank you!",
			order.Number, order.Total.StringFixed(2)),
		Choices: []gateway.Choice{{Label: "Main menu", Token: tokenHome}},
	}
}
