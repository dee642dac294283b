package cart

import (
	"github.com/gin-gonic/gin"
)

func (this API) Get(c *gin.Context) {
	container, err := this.getCart(c)
	if err != nil {
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"items": container.Items(), "total": container.Total()})
}
