package bot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/gateway"
	"github.com/Jaxa123/jaxa-tg/internal/service"
	"github.com/Jaxa123/jaxa-tg/internal/session"
)

func deniedReply() gateway.Reply {
	return gateway.Reply{Text: "Access denied."}
}

func adminPanelReply() gateway.Reply {
	return gateway.Reply{
		Text:    "Staff panel. Manage the menu, check orders and stats:",
		Choices: adminPanelKeyboard(),
	}
}

// handleAdminSelection routes admin:* tokens. Authorization is checked here
// for every entry, before any state change or mutation.
func (h *Handler) handleAdminSelection(s *session.Session, ev gateway.Event) gateway.Reply {
	if !h.isAdmin(ev.UserID) {
		return deniedReply()
	}

	switch ev.Selection {
	case tokenAdminPanel:
		return adminPanelReply()
	case tokenAdminAdd:
		s.Reset()
		s.State = session.StateAddingName
		return gateway.Reply{Text: "New dish. Enter its name:"}
	case tokenAdminMenu:
		return h.adminShowCategories()
	case tokenAdminOrders:
		return h.adminShowOrders()
	case tokenAdminStats:
		return h.adminShowStats()
	}

	rest := strings.TrimPrefix(ev.Selection, "admin:")
	action, arg, found := strings.Cut(rest, ":")
	if !found {
		return unknownActionReply()
	}
	switch "admin:" + action {
	case prefixAdminCategory:
		return h.adminShowCategoryItems(arg)
	case prefixAdminItem:
		return h.adminShowItem(arg)
	case prefixAdminToggle:
		return h.adminToggleItem(arg)
	case prefixAdminDelete:
		return h.adminDeleteItem(arg)
	default:
		return unknownActionReply()
	}
}

func (h *Handler) adminShowCategories() gateway.Reply {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range h.catalog.AllItems() {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	if len(categories) == 0 {
		return gateway.Reply{
			Text:    "The menu is empty. Add a dish first.",
			Choices: adminPanelKeyboard(),
		}
	}
	return gateway.Reply{
		Text:    "Menu management. Pick a category:",
		Choices: adminCategoriesKeyboard(categories),
	}
}

func (h *Handler) adminShowCategoryItems(category string) gateway.Reply {
	var items []domain.MenuItem
	for _, item := range h.catalog.AllItems() {
		if item.Category == category {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return h.adminShowCategories()
	}
	return gateway.Reply{
		Text:    fmt.Sprintf("%s — pick a dish to manage:", category),
		Choices: adminItemsKeyboard(items),
	}
}

func (h *Handler) adminShowItem(arg string) gateway.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return unknownActionReply()
	}
	item, err := h.catalog.Item(id)
	if err != nil {
		return gateway.Reply{
			Text:    "Dish not found.",
			Choices: []gateway.Choice{{Label: "Back", Token: tokenAdminMenu}},
		}
	}

	availability := "available"
	if !item.Available {
		availability = "unavailable"
	}
	return gateway.Reply{
		Text: fmt.Sprintf("%s\n%s\nPrice: %s\nCategory: %s\nStatus: %s",
			item.Name, item.Description, item.Price.StringFixed(2), item.Category, availability),
		Choices:  adminItemKeyboard(item),
		ImageURL: item.ImageURL,
	}
}

func (h *Handler) adminToggleItem(arg string) gateway.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return unknownActionReply()
	}
	item, err := h.catalog.Item(id)
	if err != nil {
		return gateway.Reply{
			Text:    "Dish not found.",
			Choices: []gateway.Choice{{Label: "Back", Token: tokenAdminMenu}},
		}
	}

	item.Available = !item.Available
	if err := h.catalog.UpdateItem(item); err != nil {
		return unknownActionReply()
	}
	return h.adminShowItem(arg)
}

func (h *Handler) adminDeleteItem(arg string) gateway.Reply {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return unknownActionReply()
	}
	item, err := h.catalog.Item(id)
	if err != nil {
		// already gone; deletion is idempotent
		return h.adminShowCategories()
	}

	h.catalog.DeleteItem(id)
	reply := h.adminShowCategories()
	reply.Text = fmt.Sprintf("Deleted %q.\n\n%s", item.Name, reply.Text)
	return reply
}

func (h *Handler) adminShowOrders() gateway.Reply {
	orders := h.ledger.Recent(5)
	if len(orders) == 0 {
		return gateway.Reply{
			Text:    "No orders yet.",
			Choices: []gateway.Choice{{Label: "Back", Token: tokenAdminPanel}},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent orders (%d total):\n\n", h.ledger.Len())
	for _, order := range orders {
		fmt.Fprintf(&b, "#%d @%s\n%s | %s\n%s | %s\n\n",
			order.Number, order.Username,
			order.Total.StringFixed(2), order.Payment,
			order.CreatedAt.Format("02.01.2006 15:04"), order.Status)
	}
	return gateway.Reply{
		Text:    b.String(),
		Choices: []gateway.Choice{{Label: "Back", Token: tokenAdminPanel}},
	}
}

func (h *Handler) adminShowStats() gateway.Reply {
	stats := service.ComputeStats(h.ledger)

	type categoryCount struct {
		category string
		count    int
	}
	counts := make([]categoryCount, 0, len(stats.PerCategoryQuantity))
	for category, count := range stats.PerCategoryQuantity {
		counts = append(counts, categoryCount{category, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].category < counts[j].category
	})

	var b strings.Builder
	b.WriteString("Restaurant stats\n\n")
	fmt.Fprintf(&b, "Orders: %d\n", stats.TotalOrders)
	fmt.Fprintf(&b, "Revenue: %s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Average order: %s\n", stats.AverageOrder.StringFixed(2))
	if len(counts) > 0 {
		b.WriteString("\nPopular categories:\n")
		for _, c := range counts {
			fmt.Fprintf(&b, "- %s: %d\n", c.category, c.count)
		}
	}
	return gateway.Reply{
		Text:    b.String(),
		Choices: []gateway.Choice{{Label: "Back", Token: tokenAdminPanel}},
	}
}

// handleAdminText advances the add-item wizard. The caller has already
// matched the session state; authorization is re-checked before any
// mutation can be reached.
func (h *Handler) handleAdminText(s *session.Session, userID int64, text string) gateway.Reply {
	if !h.isAdmin(userID) {
		s.Reset()
		return deniedReply()
	}
	if text == "" {
		return gateway.Reply{Text: "Please enter a value:"}
	}

	switch s.State {
	case session.StateAddingName:
		s.Draft.Name = text
		s.State = session.StateAddingDescription
		return gateway.Reply{Text: "Enter a description:"}

	case session.StateAddingDescription:
		s.Draft.Description = text
		s.State = session.StateAddingPrice
		return gateway.Reply{Text: "Enter the price:"}

	case session.StateAddingPrice:
		price, err := decimal.NewFromString(text)
		if err != nil || price.IsNegative() {
			// re-prompt, state unchanged
			return gateway.Reply{Text: "Invalid price. Enter a non-negative number:"}
		}
		s.Draft.Price = price
		s.State = session.StateAddingCategory

		var b strings.Builder
		b.WriteString("Pick a category or type a new one.")
		if categories := h.catalog.Categories(); len(categories) > 0 {
			b.WriteString("\n\nExisting categories:\n")
			for _, category := range categories {
				fmt.Fprintf(&b, "- %s\n", category)
			}
		}
		return gateway.Reply{Text: b.String()}

	case session.StateAddingCategory:
		s.Draft.Category = text
		s.State = session.StateAddingImage
		return gateway.Reply{Text: "Send an image URL or type 'skip':"}

	case session.StateAddingImage:
		imageURL := ""
		if !strings.EqualFold(text, "skip") {
			imageURL = text
		}
		item := h.catalog.AddItem(domain.MenuItem{
			Name:        s.Draft.Name,
			Description: s.Draft.Description,
			Price:       s.Draft.Price,
			Category:    s.Draft.Category,
			ImageURL:    imageURL,
			Available:   true,
		})
		s.Reset()
		return gateway.Reply{
			Text: fmt.Sprintf("Dish added!\n\nName: %s\nDescription: %s\nPrice: %s\nCategory: %s",
				item.Name, item.Description, item.Price.StringFixed(2), item.Category),
			Choices: []gateway.Choice{{Label: "Staff panel", Token: tokenAdminPanel}},
		}

	default:
		return unknownActionReply()
	}
}
