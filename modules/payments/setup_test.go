package payments

import (
	"errors"
	"testing"

	"github.com/tidwall/buntdb"
	"github.com/tryanzu/cashapp/modules/gcommerce"
)

func memorySettings(t *testing.T) BuntStore {
	db, err := buntdb.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { db.Close() })
	return BuntStore{DB: db}
}

type fakeCart struct {
	emptied int
	err     error
}

func (c *fakeCart) Empty() error {
	if c.err != nil {
		return c.err
	}

	c.emptied++
	return nil
}

// failingOrders wraps a memory store and fails the configured step.
type failingOrders struct {
	*gcommerce.MemoryOrders
	failOn string
}

var errStore = errors.New("order store unavailable")

func (f failingOrders) Get(id int64) (*gcommerce.Order, error) {
	if f.failOn == "get" {
		return nil, errStore
	}

	return f.MemoryOrders.Get(id)
}

func (f failingOrders) ReduceStock(o *gcommerce.Order) error {
	if f.failOn == "stock" {
		return errStore
	}

	return f.MemoryOrders.ReduceStock(o)
}

func (f failingOrders) AddNote(o *gcommerce.Order, content string, customer bool) error {
	if f.failOn == "note" {
		return errStore
	}

	return f.MemoryOrders.AddNote(o, content, customer)
}

func placeOrder(t *testing.T, store *gcommerce.MemoryOrders, id int64, total float64) *gcommerce.Order {
	order := gcommerce.NewOrder(CASHAPP, []gcommerce.Item{{ProductId: "p1", Name: "Item", Price: total, Quantity: 1}})
	order.Id = id
	if err := store.Create(order); err != nil {
		t.Fatal(err)
	}

	return order
}
