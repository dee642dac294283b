package payments

import (
	"html/template"

	"github.com/tryanzu/cashapp/modules/exceptions"
	"github.com/tryanzu/cashapp/modules/gcommerce"
	"github.com/tryanzu/cashapp/modules/helpers"
)

const CASHAPP string = "cashapp"

var CashappSchema = Schema{
	{
		Key:     "enabled",
		Title:   "Enable/Disable",
		Label:   "Enable Cashapp payments",
		Type:    FIELD_CHECKBOX,
		Default: "no",
	},
	{
		Key:         "title",
		Title:       "Title",
		Type:        FIELD_TEXT,
		Description: "This controls the title which the user sees during checkout.",
		Default:     "Cashapp",
		DescTip:     true,
	},
	{
		Key:         "description",
		Title:       "Description",
		Type:        FIELD_TEXTAREA,
		Description: "This controls the description which the user sees during checkout.",
		Default:     "Pay with cashapp app",
	},
	{
		Key:   "cashappid",
		Title: "Your cashapp id",
		Type:  FIELD_TEXT,
	},
}

// Settings is the typed snapshot of the cashapp options.
type Settings struct {
	Enabled         bool
	Title           string
	Description     string
	RecipientHandle string
}

func SettingsFrom(values map[string]string) Settings {
	return Settings{
		Enabled:         helpers.IsTruthy(values["enabled"]),
		Title:           values["title"],
		Description:     values["description"],
		RecipientHandle: values["cashappid"],
	}
}

func LoadSettings(store SettingsStore) (Settings, error) {
	values, err := LoadOptions(store, CASHAPP, CashappSchema)
	if err != nil {
		return Settings{}, err
	}

	return SettingsFrom(values), nil
}

// Cashapp lets the shopper pay by sending money to the merchant handle
// out-of-band.
type Cashapp struct {
	Orders   gcommerce.OrderStore
	Settings SettingsStore
}

func NewCashapp(orders gcommerce.OrderStore, store SettingsStore) *Cashapp {
	return &Cashapp{Orders: orders, Settings: store}
}

func (c *Cashapp) GetName() string {
	return CASHAPP
}

func (c *Cashapp) Schema() Schema {
	return CashappSchema
}

func (c *Cashapp) Describe() (Info, error) {
	s, err := LoadSettings(c.Settings)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Id:                CASHAPP,
		MethodTitle:       "Cashapp",
		MethodDescription: "Accept cashapp payments",
		Title:             s.Title,
		Description:       s.Description,
		Enabled:           s.Enabled,
		Supports:          []string{"products"},
	}, nil
}

func (c *Cashapp) PaymentFields(hasOrder bool) (template.HTML, error) {
	s, err := LoadSettings(c.Settings)
	if err != nil {
		return "", err
	}

	return RenderFields(s, hasOrder)
}

// ValidateFields only checks that the shopper typed a handle. The value is
// not kept anywhere.
func (c *Cashapp) ValidateFields(sub CheckoutSubmission) error {
	if sub.CustomerHandle == "" {
		return exceptions.ValidationError{
			Field: FIELD_CUSTOMER_HANDLE,
			Code:  "missing customer handle",
			Msg:   "Your cashapp id is required!",
		}
	}

	return nil
}

func (c *Cashapp) ProcessPayment(orderID int64, cart gcommerce.CartService) (Result, error) {
	s, err := LoadSettings(c.Settings)
	if err != nil {
		return Result{}, err
	}

	return Process(c.Orders, cart, s, orderID)
}

func (c *Cashapp) ProcessAdminOptions(form map[string]string) error {
	return SaveOptions(c.Settings, CASHAPP, CashappSchema, form)
}
