package gcommerce

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("gcommerce")

// OrderStore is the host side of order handling. Gateways only resolve
// orders, reduce their stock, append notes and compute return urls.
type OrderStore interface {
	Create(*Order) error
	Get(id int64) (*Order, error)
	ReduceStock(*Order) error
	AddNote(order *Order, content string, customer bool) error
	ReturnURL(*Order) string
}

// CartService is the shopper's cart as seen by gateways.
type CartService interface {
	Empty() error
}
