package payments

import (
	"fmt"

	"github.com/tryanzu/cashapp/modules/gcommerce"
	"github.com/tryanzu/cashapp/modules/helpers"
)

// Instructions is the customer note appended to every processed order.
func Instructions(total float64, recipient string, orderID int64) string {
	return fmt.Sprintf("Send %s to %s and include order id #%d to complete your order.  Thank you!", helpers.FormatAmount(total), recipient, orderID)
}

// Process records the transfer instructions on the order and empties the
// cart. It never confirms a payment: the transfer happens out-of-band after
// the redirect, so the only result is success. Collaborator errors are
// returned untouched.
func Process(orders gcommerce.OrderStore, cart gcommerce.CartService, s Settings, orderID int64) (Result, error) {
	order, err := orders.Get(orderID)
	if err != nil {
		return Result{}, err
	}

	total := order.Total
	if err := orders.ReduceStock(order); err != nil {
		return Result{}, err
	}

	if err := orders.AddNote(order, Instructions(total, s.RecipientHandle, order.Id), true); err != nil {
		return Result{}, err
	}

	if err := cart.Empty(); err != nil {
		return Result{}, err
	}

	log.Infof("order awaiting transfer	order=%d total=%s", order.Id, helpers.FormatAmount(total))
	return Result{Result: RESULT_SUCCESS, Redirect: orders.ReturnURL(order)}, nil
}
