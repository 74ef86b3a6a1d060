package bot

// Button tokens. Opaque to the transport: a Reply carries them out as
// Choice.Token and they come back as Event.Selection.
const (
	tokenHome     = "home"
	tokenMenu     = "menu"
	tokenCart     = "cart"
	tokenAbout    = "about"
	tokenContacts = "contacts"
	tokenClear    = "clear"
	tokenCheckout = "checkout"
	tokenConfirm  = "confirm"
	tokenCancel   = "cancel"

	prefixCategory = "category"
	prefixItem     = "item"
	prefixAdd      = "add"
	prefixQty      = "qty"
	prefixRemove   = "remove"
	prefixPay      = "pay"

	tokenAdminPanel  = "admin:panel"
	tokenAdminAdd    = "admin:add"
	tokenAdminMenu   = "admin:menu"
	tokenAdminOrders = "admin:orders"
	tokenAdminStats  = "admin:stats"

	prefixAdminCategory = "admin:category"
	prefixAdminItem     = "admin:item"
	prefixAdminToggle   = "admin:toggle"
	prefixAdminDelete   = "admin:delete"
)

// maxQuantity bounds a single add-to-cart selection
const maxQuantity = 5
