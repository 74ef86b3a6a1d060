package bot

import (
	"fmt"
	"strconv"

	"github.com/Jaxa123/jaxa-tg/internal/domain"
	"github.com/Jaxa123/jaxa-tg/internal/gateway"
)

func mainKeyboard() []gateway.Choice {
	return []gateway.Choice{
		{Label: "Menu", Token: tokenMenu},
		{Label: "Cart", Token: tokenCart},
		{Label: "About", Token: tokenAbout},
		{Label: "Contacts", Token: tokenContacts},
	}
}

func categoriesKeyboard(categories []string) []gateway.Choice {
	choices := make([]gateway.Choice, 0, len(categories)+1)
	for _, category := range categories {
		choices = append(choices, gateway.Choice{
			Label: category,
			Token: prefixCategory + ":" + category,
		})
	}
	return append(choices, gateway.Choice{Label: "Back", Token: tokenHome})
}

func itemsKeyboard(items []domain.MenuItem) []gateway.Choice {
	choices := make([]gateway.Choice, 0, len(items)+1)
	for _, item := range items {
		choices = append(choices, gateway.Choice{
			Label: fmt.Sprintf("%s — %s", item.Name, item.Price.StringFixed(2)),
			Token: prefixItem + ":" + strconv.FormatInt(item.ID, 10),
		})
	}
	return append(choices, gateway.Choice{Label: "Back to categories", Token: tokenMenu})
}

func itemKeyboard(id int64) []gateway.Choice {
	return []gateway.Choice{
		{Label: "Add to cart", Token: prefixAdd + ":" + strconv.FormatInt(id, 10)},
		{Label: "Back to menu", Token: tokenMenu},
	}
}

func quantityKeyboard() []gateway.Choice {
	choices := make([]gateway.Choice, 0, maxQuantity+1)
	for i := 1; i <= maxQuantity; i++ {
		choices = append(choices, gateway.Choice{
			Label: strconv.Itoa(i),
			Token: prefixQty + ":" + strconv.Itoa(i),
		})
	}
	return append(choices, gateway.Choice{Label: "Cancel", Token: tokenMenu})
}

func cartKeyboard(items []domain.OrderItem) []gateway.Choice {
	choices := make([]gateway.Choice, 0, len(items)+3)
	for _, item := range items {
		choices = append(choices, gateway.Choice{
			Label: fmt.Sprintf("Remove %s (%d)", item.Name, item.Quantity),
			Token: prefixRemove + ":" + strconv.FormatInt(item.ItemID, 10),
		})
	}
	choices = append(choices,
		gateway.Choice{Label: "Clear cart", Token: tokenClear},
		gateway.Choice{Label: "Checkout", Token: tokenCheckout},
		gateway.Choice{Label: "Main menu", Token: tokenHome},
	)
	return choices
}

func paymentKeyboard() []gateway.Choice {
	return []gateway.Choice{
		{Label: "Card", Token: prefixPay + ":" + string(domain.PaymentCard)},
		{Label: "Cash", Token: prefixPay + ":" + string(domain.PaymentCash)},
		{Label: "Back to cart", Token: tokenCart},
	}
}

func confirmKeyboard() []gateway.Choice {
	return []gateway.Choice{
		{Label: "Confirm", Token: tokenConfirm},
		{Label: "Cancel", Token: tokenCancel},
	}
}

func adminPanelKeyboard() []gateway.Choice {
	return []gateway.Choice{
		{Label: "Add item", Token: tokenAdminAdd},
		{Label: "Manage menu", Token: tokenAdminMenu},
		{Label: "Orders", Token: tokenAdminOrders},
		{Label: "Stats", Token: tokenAdminStats},
		{Label: "Main menu", Token: tokenHome},
	}
}

func adminCategoriesKeyboard(categories []string) []gateway.Choice {
	choices := make([]gateway.Choice, 0, len(categories)+1)
	for _, category := range categories {
		choices = append(choices, gateway.Choice{
			Label: category,
			Token: prefixAdminCategory + ":" + category,
		})
	}
	return append(choices, gateway.Choice{Label: "Back", Token: tokenAdminPanel})
}

func adminItemsKeyboard(items []domain.MenuItem) []gateway.Choice {
	choices := make([]gateway.Choice, 0, len(items)+1)
	for _, item := range items {
		choices = append(choices, gateway.Choice{
			Label: item.Name,
			Token: prefixAdminItem + ":" + strconv.FormatInt(item.ID, 10),
		})
	}
	return append(choices, gateway.Choice{Label: "Back", Token: tokenAdminMenu})
}

func adminItemKeyboard(item domain.MenuItem) []gateway.Choice {
	toggle := "Mark unavailable"
	if !item.Available {
		toggle = "Mark available"
	}
	id := strconv.FormatInt(item.ID, 10)
	return []gateway.Choice{
		{Label: toggle, Token: prefixAdminToggle + ":" + id},
		{Label: "Delete", Token: prefixAdminDelete + ":" + id},
		{Label: "Back", Token: tokenAdminMenu},
	}
}
