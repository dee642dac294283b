package gateways

import (
	"github.com/gin-gonic/gin"
)

// List the gateways offered at checkout.
func (this API) List(c *gin.Context) {
	list, err := this.Payments.Available()
	if err != nil {
		this.Errors.Capture(err, map[string]string{"path": c.Request.URL.Path})
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(200, list)
}

// Fields renders the checkout fragment of a gateway. Pass order=1 on
// pay-for-order pages.
func (this API) Fields(c *gin.Context) {
	gateway, err := this.Payments.GetGateway(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"status": "error", "message": err.Error()})
		return
	}

	html, err := gateway.PaymentFields(c.Query("order") == "1")
	if err != nil {
		this.Errors.Capture(err, map[string]string{"path": c.Request.URL.Path})
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.Data(200, "text/html; charset=utf-8", []byte(html))
}
