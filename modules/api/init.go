package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/facebookgo/inject"
	"github.com/gin-gonic/contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	cartctl "github.com/tryanzu/cashapp/modules/api/controller/cart"
	"github.com/tryanzu/cashapp/modules/api/controller/checkout"
	"github.com/tryanzu/cashapp/modules/api/controller/gateways"
	"github.com/tryanzu/cashapp/modules/exceptions"
)

var log = logging.MustGetLogger("api")

type Module struct {
	Dependencies ModuleDI
	Checkout     checkout.API
	Cart         cartctl.API
	Gateways     gateways.API
}

type ModuleDI struct {
	Config *config.Config               `inject:""`
	Errors *exceptions.ExceptionsModule `inject:""`
}

// Populate fills the module controllers from the dependency graph.
func (module *Module) Populate(g *inject.Graph) error {
	err := g.Provide(
		&inject.Object{Value: &module.Dependencies},
		&inject.Object{Value: &module.Checkout},
		&inject.Object{Value: &module.Gateways},
	)
	if err != nil {
		return err
	}

	return g.Populate()
}

func (module *Module) Router() *gin.Engine {
	environment := module.Dependencies.Config.UString("environment", "development")
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Session storage
	secret := module.Dependencies.Config.UString("application.secret", "cashapp-development-secret")
	store := sessions.NewCookieStore([]byte(secret))

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(module.Dependencies.Errors.Tracking())
	router.Use(sessions.Sessions("session", store))

	v1 := router.Group("/v1")

	// Cart routes
	v1.GET("/cart", module.Cart.Get)
	v1.POST("/cart", module.Cart.Add)
	v1.DELETE("/cart/:id", module.Cart.Remove)

	// Gateway routes
	v1.GET("/gateways", module.Gateways.List)
	v1.GET("/gateways/:id/fields", module.Gateways.Fields)

	// Checkout routes
	v1.POST("/checkout", module.Checkout.Place)

	// Admin routes are only mounted behind credentials.
	user := module.Dependencies.Config.UString("application.admin.user", "")
	password := module.Dependencies.Config.UString("application.admin.password", "")
	if user == "" || password == "" {
		log.Warning("application.admin credentials not configured, admin routes disabled")
		return router
	}

	admin := v1.Group("/admin", gin.BasicAuth(gin.Accounts{user: password}))
	admin.GET("/gateways/:id/options", module.Gateways.Options)
	admin.POST("/gateways/:id/options", module.Gateways.UpdateOptions)

	return router
}

func (module *Module) Run(bindTo string) error {
	srv := &http.Server{
		Addr:    bindTo,
		Handler: module.Router(),
	}

	// Start the http server as an isolated goroutine.
	errs := make(chan error, 1)
	go func() {
		log.Infof("listening	addr=%s", bindTo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	select {
	case err := <-errs:
		return err
	case <-quit:
	}

	log.Info("Shutdown Server ...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
