// Package bot drives the per-user conversation flows: menu browsing,
// cart building, the checkout questionnaire and the admin panel. It sits
// between the messaging gateway contract and the stores.
package bot

import (
	"context"
	"strings"

	"github.com/Jaxa123/jaxa-tg/internal/gateway"
	"github.com/Jaxa123/jaxa-tg/internal/service"
	"github.com/Jaxa123/jaxa-tg/internal/session"
	"github.com/Jaxa123/jaxa-tg/internal/store"
)

// Handler turns inbound gateway events into replies, advancing the user's
// conversation state as a side effect.
type Handler struct {
	catalog  store.CatalogStore
	carts    store.CartStore
	ledger   store.OrderLedger
	checkout *service.CheckoutService
	sessions *session.Registry
	admins   map[int64]bool
}

// New creates a handler over the given stores. adminIDs is the static set
// of privileged users allowed into the admin flows.
func New(catalog store.CatalogStore, carts store.CartStore, ledger store.OrderLedger, checkout *service.CheckoutService, adminIDs []int64) *Handler {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		ledger:   ledger,
		checkout: checkout,
		sessions: session.NewRegistry(),
		admins:   admins,
	}
}

// Handle processes one inbound event to completion. Events for the same
// user are serialized on the session lock; different users do not contend.
func (h *Handler) Handle(ctx context.Context, ev gateway.Event) gateway.Reply {
	s, release := h.sessions.Acquire(ev.UserID)
	defer release()

	switch {
	case ev.Command == "start":
		s.Reset()
		return homeReply()
	case ev.Command == "admin":
		if !h.isAdmin(ev.UserID) {
			return deniedReply()
		}
		s.Reset()
		return adminPanelReply()
	case ev.Command != "":
		return helpReply()
	case ev.Selection != "":
		return h.handleSelection(ctx, s, ev)
	default:
		return h.handleText(ctx, s, ev)
	}
}

func (h *Handler) handleSelection(ctx context.Context, s *session.Session, ev gateway.Event) gateway.Reply {
	token := ev.Selection

	switch token {
	case tokenHome:
		s.Reset()
		return homeReply()
	case tokenMenu:
		return h.showCategories(s)
	case tokenCart:
		return h.showCart(ev.UserID)
	case tokenAbout:
		return aboutReply()
	case tokenContacts:
		return contactsReply()
	case tokenClear:
		h.carts.Clear(ev.UserID)
		return h.showCart(ev.UserID)
	case tokenCheckout:
		return h.startCheckout(s, ev.UserID)
	case tokenConfirm:
		return h.confirmOrder(ctx, s, ev)
	case tokenCancel:
		s.Reset()
		return cancelledReply()
	}

	if strings.HasPrefix(token, "admin:") {
		return h.handleAdminSelection(s, ev)
	}

	prefix, arg, found := strings.Cut(token, ":")
	if !found {
		return unknownActionReply()
	}
	switch prefix {
	case prefixCategory:
		return h.showCategoryItems(s, arg)
	case prefixItem:
		return h.showItem(arg)
	case prefixAdd:
		return h.startQuantity(s, arg)
	case prefixQty:
		return h.commitQuantity(s, ev.UserID, arg)
	case prefixRemove:
		return h.removeFromCart(ev.UserID, arg)
	case prefixPay:
		return h.choosePayment(s, ev.UserID, arg)
	default:
		return unknownActionReply()
	}
}

func (h *Handler) handleText(ctx context.Context, s *session.Session, ev gateway.Event) gateway.Reply {
	text := strings.TrimSpace(ev.Text)

	switch s.State {
	case session.StateEnteringAddress:
		return h.collectAddress(s, text)
	case session.StateEnteringPhone:
		return h.collectPhone(s, text)
	case session.StateAddingName, session.StateAddingDescription,
		session.StateAddingPrice, session.StateAddingCategory,
		session.StateAddingImage:
		return h.handleAdminText(s, ev.UserID, text)
	default:
		// stray text outside any collecting state
		return helpReply()
	}
}

func (h *Handler) isAdmin(userID int64) bool {
	return h.admins[userID]
}
