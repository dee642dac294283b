package gateways

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/tryanzu/cashapp/core/events"
	"github.com/tryanzu/cashapp/modules/payments"
)

// Options returns the admin schema of a gateway along with its current
// raw values.
func (this API) Options(c *gin.Context) {
	gateway, err := this.Payments.GetGateway(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"status": "error", "message": err.Error()})
		return
	}

	values, err := payments.LoadOptions(this.Settings, gateway.GetName(), gateway.Schema())
	if err != nil {
		this.Errors.Capture(err, map[string]string{"path": c.Request.URL.Path})
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"schema": gateway.Schema(), "values": values})
}

// UpdateOptions fires the options update event of a gateway with the
// submitted form. Json bodies and url encoded forms are accepted.
func (this API) UpdateOptions(c *gin.Context) {
	gateway, err := this.Payments.GetGateway(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"status": "error", "message": err.Error()})
		return
	}

	form := map[string]string{}
	if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": "Invalid request, options must be strings."})
			return
		}
	} else {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(400, gin.H{"status": "error", "message": err.Error()})
			return
		}

		for key := range c.Request.PostForm {
			form[key] = c.Request.PostForm.Get(key)
		}
	}

	if err := this.Events.Emit(events.GatewayOptionsUpdate(gateway.GetName(), form)); err != nil {
		this.Errors.Capture(err, map[string]string{"path": c.Request.URL.Path})
		c.JSON(500, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"status": "okay"})
}
