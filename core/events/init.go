package events

import (
	"sync"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("events")

type Handler func(Event) error

type Event struct {
	Name   string
	Params map[string]interface{}
}

// Bus dispatches events synchronously to the handlers registered under the
// event name, in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) On(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], h)
}

// Emit runs the handlers for event and stops at the first error, which is
// returned to the caller.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	list := b.handlers[event.Name]
	b.mu.RUnlock()

	log.Debugf("incoming event	name=%s handlers=%d", event.Name, len(list))
	for _, h := range list {
		if err := h(event); err != nil {
			return err
		}
	}

	return nil
}
