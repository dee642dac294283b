package cart

type CartItem struct {
	Id       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity"`
}

func (item *CartItem) GetId() string {
	return item.Id
}

func (item *CartItem) GetQuantity() int {
	return item.Quantity
}

func (item *CartItem) IncQuantity(by int) {
	item.Quantity = item.Quantity + by
}
