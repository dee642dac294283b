package cart

import (
	"github.com/gin-gonic/gin"
	"github.com/tryanzu/cashapp/modules/cart"
)

// Add an item to the session cart. Quantity defaults to one.
func (this API) Add(c *gin.Context) {
	var form cart.CartItem

	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request, check item format.", "status": "error"})
		return
	}

	if form.Quantity <= 0 {
		form.Quantity = 1
	}

	container, err := this.getCart(c)
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if err := container.Add(form); err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"status": "okay", "items": container.Items(), "total": container.Total()})
}
