package cart

import (
	"github.com/gin-gonic/gin"
)

// Remove takes one unit of the item off the session cart.
func (this API) Remove(c *gin.Context) {
	container, err := this.getCart(c)
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	removed, err := container.Remove(c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if !removed {
		c.JSON(404, gin.H{"status": "error", "message": "Item is not in cart."})
		return
	}

	c.JSON(200, gin.H{"status": "okay", "items": container.Items(), "total": container.Total()})
}
