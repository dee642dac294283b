package checkout

import (
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/tryanzu/cashapp/core/events"
	"github.com/tryanzu/cashapp/modules/cart"
	"github.com/tryanzu/cashapp/modules/exceptions"
	"github.com/tryanzu/cashapp/modules/gcommerce"
	"github.com/tryanzu/cashapp/modules/payments"
)

var log = logging.MustGetLogger("checkout")

type API struct {
	Payments *payments.Module             `inject:""`
	Orders   gcommerce.OrderStore         `inject:"orders"`
	Events   *events.Bus                  `inject:""`
	Errors   *exceptions.ExceptionsModule `inject:""`
}

func (this API) getCartObject(c *gin.Context) (*cart.Cart, error) {
	return cart.Boot(cart.GinGonicSession{Session: sessions.Default(c)})
}

func (this API) fail(c *gin.Context, err error) {
	this.Errors.Capture(err, map[string]string{"path": c.Request.URL.Path})
	c.JSON(500, gin.H{"status": "error", "message": err.Error()})
}

type CheckoutForm struct {
	Gateway string `form:"gateway" json:"gateway" binding:"required"`

	payments.CheckoutSubmission
}
