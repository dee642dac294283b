package gcommerce

import (
	"fmt"
	"time"

	"github.com/tryanzu/cashapp/modules/exceptions"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// MgoOrders stores orders in the gcommerce_orders collection and keeps
// stock in gcommerce_products.
type MgoOrders struct {
	Database *mgo.Database
	SiteURL  string
}

func NewMgoOrders(db *mgo.Database, site string) *MgoOrders {
	return &MgoOrders{Database: db, SiteURL: site}
}

func (m *MgoOrders) nextId() (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	change := mgo.Change{
		Update:    bson.M{"$inc": bson.M{"seq": 1}},
		Upsert:    true,
		ReturnNew: true,
	}

	_, err := m.Database.C("counters").FindId("gcommerce_orders").Apply(change, &counter)
	return counter.Seq, err
}

func (m *MgoOrders) Create(order *Order) error {
	if order.Id == 0 {
		id, err := m.nextId()
		if err != nil {
			return err
		}

		order.Id = id
	}

	return m.Database.C("gcommerce_orders").Insert(order)
}

func (m *MgoOrders) Get(id int64) (*Order, error) {
	var order *Order

	err := m.Database.C("gcommerce_orders").FindId(id).One(&order)
	if err == mgo.ErrNotFound {
		return nil, exceptions.NotFound{Msg: fmt.Sprintf("Order #%d not found.", id)}
	}

	if err != nil {
		return nil, err
	}

	return order, nil
}

// ReduceStock flags the order first so that concurrent or repeated calls
// reduce stock at most once.
func (m *MgoOrders) ReduceStock(order *Order) error {
	now := time.Now()
	where := bson.M{"_id": order.Id, "stock_reduced": bson.M{"$ne": true}}
	err := m.Database.C("gcommerce_orders").Update(where, bson.M{"$set": bson.M{"stock_reduced": true, "updated_at": now}})
	if err == mgo.ErrNotFound {
		order.StockReduced = true
		return nil
	}

	if err != nil {
		return err
	}

	for _, item := range order.Items {
		err := m.Database.C("gcommerce_products").UpdateId(item.ProductId, bson.M{"$inc": bson.M{"stock": -item.Quantity}})
		if err == mgo.ErrNotFound {
			log.Warningf("stock not managed	product=%s order=%d", item.ProductId, order.Id)
			continue
		}

		if err != nil {
			return err
		}
	}

	order.StockReduced = true
	order.Updated = now
	return nil
}

func (m *MgoOrders) AddNote(order *Order, content string, customer bool) error {
	note := order.appendNote(content, customer)
	update := bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updated_at": note.Created},
	}

	return m.Database.C("gcommerce_orders").UpdateId(order.Id, update)
}

func (m *MgoOrders) ReturnURL(order *Order) string {
	return order.ReceivedURL(m.SiteURL)
}
