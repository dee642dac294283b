package checkout

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tryanzu/cashapp/core/events"
	"github.com/tryanzu/cashapp/modules/exceptions"
	"github.com/tryanzu/cashapp/modules/gcommerce"
)

// Place validates the submission against the chosen gateway, turns the cart
// into an order and hands it to the gateway for processing.
func (this API) Place(c *gin.Context) {
	var form CheckoutForm

	if err := c.ShouldBind(&form); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request, gateway is required.", "status": "error"})
		return
	}

	gateway, err := this.Payments.GetGateway(form.Gateway)
	if err != nil {
		c.JSON(400, gin.H{"message": err.Error(), "status": "error"})
		return
	}

	info, err := gateway.Describe()
	if err != nil {
		this.fail(c, err)
		return
	}

	if !info.Enabled {
		c.JSON(400, gin.H{"message": "Gateway is not available.", "status": "error"})
		return
	}

	// Nothing is created unless the gateway accepts the submission.
	if err := gateway.ValidateFields(form.CheckoutSubmission); err != nil {
		var v exceptions.ValidationError
		if errors.As(err, &v) {
			c.JSON(400, gin.H{"message": v.Msg, "key": v.Code, "field": v.Field, "status": "error"})
			return
		}

		this.fail(c, err)
		return
	}

	bucket, err := this.getCartObject(c)
	if err != nil {
		this.fail(c, err)
		return
	}

	if bucket.IsEmpty() {
		c.JSON(400, gin.H{"message": "No items in cart.", "status": "error"})
		return
	}

	items := []gcommerce.Item{}
	for _, item := range bucket.Items() {
		items = append(items, gcommerce.Item{
			ProductId: item.Id,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := gcommerce.NewOrder(gateway.GetName(), items)
	if err := this.Orders.Create(order); err != nil {
		this.fail(c, err)
		return
	}

	log.Infof("order placed	order=%d gateway=%s", order.Id, gateway.GetName())

	result, err := gateway.ProcessPayment(order.Id, bucket)
	if err != nil {
		this.fail(c, err)
		return
	}

	// Listeners never undo a processed payment.
	if err := this.Events.Emit(events.OrderPaymentPending(gateway.GetName(), order.Id)); err != nil {
		log.Warningf("payment pending listener failed	order=%d err=%v", order.Id, err)
	}

	c.JSON(200, result)
}
