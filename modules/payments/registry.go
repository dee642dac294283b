package payments

import (
	"fmt"
	"sync"

	"github.com/tryanzu/cashapp/core/events"
	"github.com/tryanzu/cashapp/modules/exceptions"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("payments")

// Module is the gateway registry table. Gateways are instantiated once at
// startup and registered by id.
type Module struct {
	Events *events.Bus `inject:""`

	mu       sync.RWMutex
	gateways map[string]Gateway
	order    []string
}

func GetModule(bus *events.Bus) *Module {
	return &Module{Events: bus, gateways: map[string]Gateway{}}
}

// Register inserts g if its id is not registered yet and wires its options
// callback. Repeated calls with the same id are no-ops and report false.
func (m *Module) Register(g Gateway) bool {
	id := g.GetName()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gateways == nil {
		m.gateways = map[string]Gateway{}
	}

	if _, exists := m.gateways[id]; exists {
		log.Debugf("gateway already registered	id=%s", id)
		return false
	}

	m.gateways[id] = g
	m.order = AppendGateway(m.order, id)

	if m.Events != nil {
		m.Events.On(events.GATEWAY_OPTIONS_UPDATE+id, func(e events.Event) error {
			form, ok := e.Params["form"].(map[string]string)
			if !ok {
				return exceptions.OutOfBounds{Msg: fmt.Sprintf("Options event for %s carries no form.", id)}
			}

			return g.ProcessAdminOptions(form)
		})
	}

	log.Infof("gateway registered	id=%s", id)
	return true
}

// Gets the related gateway to id.
func (m *Module) GetGateway(id string) (Gateway, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if g, exists := m.gateways[id]; exists {
		return g, nil
	}

	return nil, exceptions.NotFound{Msg: fmt.Sprintf("Gateway %s has not been registered.", id)}
}

// Ids in registration order.
func (m *Module) Ids() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string{}, m.order...)
}

func (m *Module) List() []Gateway {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]Gateway, 0, len(m.order))
	for _, id := range m.order {
		list = append(list, m.gateways[id])
	}

	return list
}

// Available describes the enabled gateways, the ones offered at checkout.
func (m *Module) Available() ([]Info, error) {
	list := []Info{}
	for _, g := range m.List() {
		info, err := g.Describe()
		if err != nil {
			return nil, err
		}

		if info.Enabled {
			list = append(list, info)
		}
	}

	return list, nil
}

// AppendGateway adds id to the host list of gateway ids unless it is
// already there.
func AppendGateway(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}

	return append(ids, id)
}
