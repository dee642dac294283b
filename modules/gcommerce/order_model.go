package gcommerce

import (
	"time"
)

const ORDER_PENDING string = "pending"

type Order struct {
	Id        int64  `bson:"_id" json:"id"`
	Reference string `bson:"reference" json:"reference"`

	// Information about the order status
	Status   string   `bson:"status" json:"status"`
	Statuses []Status `bson:"statuses" json:"statuses"`

	// Information about the order itself
	Items        []Item    `bson:"items" json:"items"`
	Total        float64   `bson:"total" json:"total"`
	Gateway      string    `bson:"gateway" json:"gateway"`
	Notes        []Note    `bson:"notes" json:"notes"`
	StockReduced bool      `bson:"stock_reduced" json:"stock_reduced"`
	Created      time.Time `bson:"created_at" json:"created_at"`
	Updated      time.Time `bson:"updated_at" json:"updated_at"`
}

type Item struct {
	ProductId string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Status struct {
	Name    string    `bson:"name" json:"name"`
	Created time.Time `bson:"created_at" json:"created_at"`
}

// Note is append-only. Customer notes are shown to the shopper, the rest
// stay private to the store staff.
type Note struct {
	Content  string    `bson:"content" json:"content"`
	Customer bool      `bson:"customer" json:"customer"`
	Created  time.Time `bson:"created_at" json:"created_at"`
}

type Product struct {
	Id    string  `bson:"_id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
	Stock int     `bson:"stock" json:"stock"`
}
