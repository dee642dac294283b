package gcommerce

import (
	"fmt"
	"sync"
	"time"

	"github.com/tryanzu/cashapp/modules/exceptions"
)

// MemoryOrders keeps orders and product stock in process. Used by tests and
// by the api command when no mongo url is configured.
type MemoryOrders struct {
	SiteURL string

	mu       sync.Mutex
	seq      int64
	orders   map[int64]*Order
	products map[string]*Product
}

func NewMemoryOrders(site string) *MemoryOrders {
	return &MemoryOrders{
		SiteURL:  site,
		orders:   map[int64]*Order{},
		products: map[string]*Product{},
	}
}

func (m *MemoryOrders) PutProduct(p Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products[p.Id] = &p
}

func (m *MemoryOrders) Product(id string) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.products[id]
	if !exists {
		return Product{}, exceptions.NotFound{Msg: fmt.Sprintf("Product %s not found.", id)}
	}

	return *p, nil
}

// Create keeps a preset id, otherwise assigns the next one.
func (m *MemoryOrders) Create(order *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if order.Id == 0 {
		m.seq++
		order.Id = m.seq
	} else if order.Id > m.seq {
		m.seq = order.Id
	}

	if _, exists := m.orders[order.Id]; exists {
		return exceptions.OutOfBounds{Msg: fmt.Sprintf("Order #%d already exists.", order.Id)}
	}

	m.orders[order.Id] = order
	return nil
}

func (m *MemoryOrders) Get(id int64) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, exists := m.orders[id]
	if !exists {
		return nil, exceptions.NotFound{Msg: fmt.Sprintf("Order #%d not found.", id)}
	}

	return order, nil
}

func (m *MemoryOrders) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.orders)
}

func (m *MemoryOrders) ReduceStock(order *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if order.StockReduced {
		return nil
	}

	for _, item := range order.Items {
		if p, exists := m.products[item.ProductId]; exists {
			p.Stock -= item.Quantity
			log.Debugf("stock reduced	product=%s stock=%d", p.Id, p.Stock)
		}
	}

	order.StockReduced = true
	order.Updated = time.Now()
	return nil
}

func (m *MemoryOrders) AddNote(order *Order, content string, customer bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order.appendNote(content, customer)
	return nil
}

func (m *MemoryOrders) ReturnURL(order *Order) string {
	return order.ReceivedURL(m.SiteURL)
}
