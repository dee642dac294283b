package cart

import (
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/tryanzu/cashapp/modules/cart"
)

type API struct{}

func (this API) getCart(c *gin.Context) (*cart.Cart, error) {
	return cart.Boot(cart.GinGonicSession{Session: sessions.Default(c)})
}
