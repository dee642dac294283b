package payments

import (
	"html/template"

	"github.com/tryanzu/cashapp/modules/gcommerce"
)

const RESULT_SUCCESS string = "success"

// FIELD_CUSTOMER_HANDLE is the checkout form key holding the shopper's own
// handle.
const FIELD_CUSTOMER_HANDLE string = "clients_cashapp_id"

type Gateway interface {

	// Gets the id of the gateway
	GetName() string

	// Admin options declaration
	Schema() Schema

	// Current title, description and availability
	Describe() (Info, error)

	// Checkout form fragment. hasOrder is true on pay-for-order pages.
	PaymentFields(hasOrder bool) (template.HTML, error)

	// Gate the submission before the host creates the order
	ValidateFields(CheckoutSubmission) error

	// Handle an already created order and tell the host where to go next
	ProcessPayment(orderID int64, cart gcommerce.CartService) (Result, error)

	// Persist the admin options form
	ProcessAdminOptions(form map[string]string) error
}

type Info struct {
	Id                string   `json:"id"`
	MethodTitle       string   `json:"method_title"`
	MethodDescription string   `json:"method_description"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Enabled           bool     `json:"enabled"`
	Supports          []string `json:"supports"`
}

// CheckoutSubmission is the typed part of the checkout form a gateway
// cares about.
type CheckoutSubmission struct {
	CustomerHandle string `form:"clients_cashapp_id" json:"clients_cashapp_id"`
}

// Result is the only answer a gateway gives back to the host after
// processing. The host redirects the shopper to Redirect.
type Result struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}
