package events

const (
	GATEWAY_OPTIONS_UPDATE = "gateways:options.update."
	ORDER_PAYMENT_PENDING  = "orders:payment.pending"
)

// GatewayOptionsUpdate is fired when the admin saves the options form of a
// single gateway.
func GatewayOptionsUpdate(id string, form map[string]string) Event {
	return Event{
		Name: GATEWAY_OPTIONS_UPDATE + id,
		Params: map[string]interface{}{
			"form": form,
		},
	}
}

func OrderPaymentPending(gateway string, orderID int64) Event {
	return Event{
		Name: ORDER_PAYMENT_PENDING,
		Params: map[string]interface{}{
			"gateway":  gateway,
			"order_id": orderID,
		},
	}
}
