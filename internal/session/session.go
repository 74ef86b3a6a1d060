// Package session tracks per-user conversation state. Each user has at most
// one session; acquiring it locks out other events for the same user, which
// serializes a user's flow end to end (including the checkout critical
// section) without a global lock.
package session

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
)

// State is the user's position in a conversation flow.
type State string

const (
	StateIdle              State = "idle"
	StateSelectingCategory State = "selecting_category"
	StateSelectingItem     State = "selecting_item"
	StateEnteringQuantity  State = "entering_quantity"
	StateEnteringAddress   State = "entering_address"
	StateEnteringPhone     State = "entering_phone"
	StateChoosingPayment   State = "choosing_payment"
	StateConfirmingOrder   State = "confirming_order"

	// admin add-item wizard
	StateAddingName        State = "adding_name"
	StateAddingDescription State = "adding_description"
	StateAddingPrice       State = "adding_price"
	StateAddingCategory    State = "adding_category"
	StateAddingImage       State = "adding_image"
)

// ItemDraft accumulates fields of a menu item being created by an admin.
type ItemDraft struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
}

// Session holds everything collected from a user mid-flow. Fields are only
// touched while the session is held via Registry.Acquire.
type Session struct {
	mu sync.Mutex

	State    State
	Category string
	ItemID   int64
	Address  string
	Phone    string
	Payment  domain.PaymentMethod
	Draft    ItemDraft
}

// Reset returns the session to idle and drops all collected data.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Category = ""
	s.ItemID = 0
	s.Address = ""
	s.Phone = ""
	s.Payment = ""
	s.Draft = ItemDraft{}
}

// Registry maps user ids to their sessions, creating one on first use.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*Session),
	}
}

// Acquire returns the user's session locked for exclusive use, creating an
// idle session on first contact. The release func must be called once the
// event has been fully handled.
func (r *Registry) Acquire(userID int64) (*Session, func()) {
	r.mu.Lock()
	s, exists := r.sessions[userID]
	if !exists {
		s = &Session{State: StateIdle}
		r.sessions[userID] = s
	}
	r.mu.Unlock()

	s.mu.Lock()
	return s, s.mu.Unlock
}
