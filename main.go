package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/facebookgo/inject"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tryanzu/cashapp/core/events"
	"github.com/tryanzu/cashapp/deps"
	"github.com/tryanzu/cashapp/modules/api"
	"github.com/tryanzu/cashapp/modules/exceptions"
	"github.com/tryanzu/cashapp/modules/gcommerce"
	"github.com/tryanzu/cashapp/modules/payments"
)

var log = logging.MustGetLogger("cashapp")

// Services shared by every command once booted.
type services struct {
	graph      inject.Graph
	bus        *events.Bus
	payments   *payments.Module
	settings   payments.SettingsStore
	exceptions *exceptions.ExceptionsModule
}

func boot(memory bool) (*services, error) {
	if err := deps.Bootstrap(); err != nil {
		return nil, err
	}

	var orders gcommerce.OrderStore
	if memory || deps.Container.Mgo() == nil {
		orders = gcommerce.NewMemoryOrders(deps.Container.SiteURL())
	} else {
		orders = gcommerce.NewMgoOrders(deps.Container.Mgo(), deps.Container.SiteURL())
	}

	s := &services{
		bus:        events.NewBus(),
		settings:   payments.BuntStore{DB: deps.Container.Settings()},
		exceptions: &exceptions.ExceptionsModule{ErrorService: deps.Container.Errors()},
	}

	// Gateways are registered once, before any request is served.
	s.payments = payments.GetModule(s.bus)
	s.payments.Register(payments.NewCashapp(orders, s.settings))

	s.bus.On(events.ORDER_PAYMENT_PENDING, func(e events.Event) error {
		log.Infof("awaiting manual payment	order=%v gateway=%v", e.Params["order_id"], e.Params["gateway"])
		return nil
	})

	err := s.graph.Provide(
		&inject.Object{Value: deps.Container.Config(), Complete: true},
		&inject.Object{Value: s.bus, Complete: true},
		&inject.Object{Value: s.payments, Complete: true},
		&inject.Object{Value: s.exceptions, Complete: true},
		&inject.Object{Value: orders, Name: "orders", Complete: true},
		&inject.Object{Value: s.settings, Name: "settings", Complete: true},
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func main() {
	var memory bool

	cmdAPI := &cobra.Command{
		Use:   "api [addr]",
		Short: "Starts API web server",
		Long: `Starts API web server listening
        in the specified address (defaults to :3200)
        `,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			port := ":3200"
			if len(args) == 1 {
				port = args[0]
			}

			s, err := boot(memory)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			var module api.Module
			if err := module.Populate(&s.graph); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			err = module.Run(port)
			if cerr := deps.Container.Close(); cerr != nil {
				log.Warningf("closing deps failed	err=%v", cerr)
			}

			if err != nil {
				s.exceptions.Capture(err, nil)
				os.Exit(1)
			}
		},
	}
	cmdAPI.Flags().BoolVar(&memory, "memory", false, "keep orders in memory even when mongo is configured")

	cmdGateways := &cobra.Command{
		Use:   "gateways",
		Short: "Lists registered payment gateways",
		Long: `Lists every registered payment gateway
        along with its current settings
        `,
		Run: func(cmd *cobra.Command, args []string) {
			s, err := boot(true)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			defer deps.Container.Close()
			defer s.exceptions.Recover()
			for _, g := range s.payments.List() {
				values, err := payments.LoadOptions(s.settings, g.GetName(), g.Schema())
				if err != nil {
					panic(err)
				}

				fmt.Println(g.GetName())
				for _, field := range g.Schema() {
					fmt.Printf("  %-12s %s\n", field.Key, strings.TrimSpace(values[field.Key]))
				}
			}
		},
	}

	rootCmd := &cobra.Command{Use: "cashapp"}
	rootCmd.AddCommand(cmdAPI)
	rootCmd.AddCommand(cmdGateways)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
