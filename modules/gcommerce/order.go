package gcommerce

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tryanzu/cashapp/modules/helpers"
)

// NewOrder builds a pending order for the given gateway. Id is assigned by
// the store on Create.
func NewOrder(gateway string, items []Item) *Order {
	now := time.Now()
	order := &Order{
		Reference: "order_" + helpers.StrCapRandom(13),
		Status:    ORDER_PENDING,
		Statuses:  []Status{{ORDER_PENDING, now}},
		Gateway:   gateway,
		Items:     []Item{},
		Notes:     []Note{},
		Created:   now,
		Updated:   now,
	}

	for _, item := range items {
		order.Add(item)
	}

	return order
}

func (this *Order) Add(item Item) {
	this.Items = append(this.Items, item)
	this.Total = this.Subtotal()
}

func (this *Order) Subtotal() float64 {
	total := 0.0
	for _, item := range this.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// ReceivedURL is the thank-you page the shopper lands on after checkout.
func (this *Order) ReceivedURL(site string) string {
	return fmt.Sprintf("%s/checkout/order-received/%d?key=%s", strings.TrimRight(site, "/"), this.Id, url.QueryEscape(this.Reference))
}

func (this *Order) appendNote(content string, customer bool) Note {
	note := Note{Content: content, Customer: customer, Created: time.Now()}
	this.Notes = append(this.Notes, note)
	this.Updated = note.Created

	return note
}
