package exceptions

import (
	"errors"
	"fmt"

	"github.com/getsentry/raven-go"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("exceptions")

type ExceptionsModule struct {
	ErrorService *raven.Client `inject:""`
}

// Recover must be deferred directly. Panics are reported and swallowed.
func (di *ExceptionsModule) Recover() {
	rval := recover()
	if rval == nil {
		return
	}

	di.capture(rval, 3)
}

// Capture reports an error that was returned to the host instead of panicking.
func (di *ExceptionsModule) Capture(err error, tags map[string]string) {
	log.Errorf("uncaught	err=%v", err)
	if di == nil || di.ErrorService == nil {
		return
	}

	packet := raven.NewPacket(err.Error(), raven.NewException(err, raven.NewStacktrace(1, 3, nil)))
	di.ErrorService.Capture(packet, tags)
}

// Tracking recovers handler panics, reports them and answers with a 500.
func (di *ExceptionsModule) Tracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rval := recover(); rval != nil {
				di.capture(rval, 4)
				c.AbortWithStatusJSON(500, gin.H{"status": "error", "message": "Internal server error."})
			}
		}()

		c.Next()
	}
}

func (di *ExceptionsModule) capture(rval interface{}, skip int) {
	var packet *raven.Packet

	switch rval := rval.(type) {
	case error:
		log.Errorf("recovered	err=%v", rval)
		packet = raven.NewPacket(rval.Error(), raven.NewException(rval, raven.NewStacktrace(skip, 3, nil)))
	default:
		rvalStr := fmt.Sprint(rval)
		log.Errorf("recovered	panic=%s", rvalStr)
		packet = raven.NewPacket(rvalStr, raven.NewException(errors.New(rvalStr), raven.NewStacktrace(skip, 3, nil)))
	}

	if di == nil || di.ErrorService == nil {
		return
	}

	// Grab the error and send it to sentry
	di.ErrorService.Capture(packet, map[string]string{})
}
