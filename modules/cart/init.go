package cart

import (
	"sort"
)

// Cart is the shopper's bucket of items. Every mutation is persisted
// through the storage bucket right away.
type Cart struct {
	items   map[string]*CartItem
	storage CartBucket
}

func Boot(storage CartBucket) (*Cart, error) {
	restored := map[string]*CartItem{}
	if err := storage.Restore(&restored); err != nil {
		return nil, err
	}

	if restored == nil {
		restored = map[string]*CartItem{}
	}

	bucket := &Cart{
		items:   restored,
		storage: storage,
	}

	return bucket, nil
}

func (module *Cart) Add(item CartItem) error {
	id := item.GetId()
	if _, exists := module.items[id]; !exists {
		module.items[id] = &item
	} else {
		module.items[id].IncQuantity(item.Quantity)
	}

	return module.storage.Save(module.items)
}

// An Item will be removed of the list in case it exists.
func (module *Cart) Remove(id string) (bool, error) {
	if _, exists := module.items[id]; !exists {
		return false, nil
	}

	module.items[id].IncQuantity(-1)
	if module.items[id].GetQuantity() <= 0 {
		delete(module.items, id)
	}

	return true, module.storage.Save(module.items)
}

// Empty drops every item and persists the empty cart.
func (module *Cart) Empty() error {
	module.items = map[string]*CartItem{}
	return module.storage.Save(module.items)
}

// IsEmpty checks if no items in cart object.
func (module *Cart) IsEmpty() bool {
	return len(module.items) == 0
}

// Items returns the cart contents ordered by id.
func (module *Cart) Items() []CartItem {
	list := make([]CartItem, 0, len(module.items))
	for _, item := range module.items {
		list = append(list, *item)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Id < list[j].Id
	})

	return list
}

func (module *Cart) Total() float64 {
	total := 0.0
	for _, item := range module.items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}
