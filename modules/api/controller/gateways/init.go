package gateways

import (
	"github.com/tryanzu/cashapp/core/events"
	"github.com/tryanzu/cashapp/modules/exceptions"
	"github.com/tryanzu/cashapp/modules/payments"
)

type API struct {
	Payments *payments.Module             `inject:""`
	Settings payments.SettingsStore       `inject:"settings"`
	Events   *events.Bus                  `inject:""`
	Errors   *exceptions.ExceptionsModule `inject:""`
}
