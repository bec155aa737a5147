// Package runtime hosts the services shared by every component of the chat
// host. It wires providers together without containing formatting rules.
package runtime

import (
	"chat-formatter/contract"
	"chat-formatter/domain"
	"chat-formatter/errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/samber/lo"
)

type registration struct {
	service  any
	owner    string
	priority domain.ServicePriority
	seq      uint64
}

func (r registration) toEvent(kind domain.ServiceKind) contract.ServiceEvent {
	return contract.ServiceEvent{Kind: kind, Service: r.service, Owner: r.owner, Priority: r.priority}
}

// ServicesManager keeps every registered service per kind, best first.
// Services are compared by identity, register pointers.
type ServicesManager struct {
	mu        sync.RWMutex
	log       *slog.Logger
	services  map[domain.ServiceKind][]registration
	listeners []contract.ServiceListener
	seq       uint64
}

func NewServicesManager(log *slog.Logger) *ServicesManager {
	return &ServicesManager{
		log:      log,
		services: make(map[domain.ServiceKind][]registration),
	}
}

// Register adds a service. The highest priority wins; between equal
// priorities the latest registration wins.
// Listeners are notified once the lock is released.
func (m *ServicesManager) Register(kind domain.ServiceKind, service any, owner string, priority domain.ServicePriority) error {
	if kind == "" {
		return errors.ErrUnknownServiceKind
	}
	if service == nil {
		return errors.ErrNilService
	}
	if !reflect.ValueOf(service).Comparable() {
		return fmt.Errorf("%w: %T", errors.ErrIncomparableService, service)
	}

	m.mu.Lock()
	m.seq++
	reg := registration{service: service, owner: owner, priority: priority, seq: m.seq}
	regs := append(m.services[kind], reg)
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].priority != regs[j].priority {
			return regs[i].priority > regs[j].priority
		}
		return regs[i].seq > regs[j].seq
	})
	m.services[kind] = regs
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	m.log.Debug(fmt.Sprintf("Service registered for %s", kind), "owner", owner, "priority", priority)
	for _, l := range listeners {
		l.OnServiceRegistered(reg.toEvent(kind))
	}
	return nil
}

// Unregister removes a service. Nothing happens if it was not registered.
func (m *ServicesManager) Unregister(kind domain.ServiceKind, service any) {
	if !reflect.ValueOf(service).Comparable() {
		return
	}
	m.mu.Lock()
	removed, kept := lo.FilterReject(m.services[kind], func(r registration, _ int) bool {
		return r.service == service
	})
	m.store(kind, kept)
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	m.notifyUnregistered(listeners, kind, removed)
}

// UnregisterAll removes every service owned by owner, whatever its kind.
func (m *ServicesManager) UnregisterAll(owner string) {
	m.mu.Lock()
	removed := make(map[domain.ServiceKind][]registration)
	for kind, regs := range m.services {
		gone, kept := lo.FilterReject(regs, func(r registration, _ int) bool {
			return r.owner == owner
		})
		if len(gone) > 0 {
			removed[kind] = gone
			m.store(kind, kept)
		}
	}
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	for kind, regs := range removed {
		m.notifyUnregistered(listeners, kind, regs)
	}
}

// Load returns the service currently resolved for kind, or nil.
func (m *ServicesManager) Load(kind domain.ServiceKind) any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	regs := m.services[kind]
	if len(regs) == 0 {
		return nil
	}
	return regs[0].service
}

// Registrations lists the services of kind, best first.
func (m *ServicesManager) Registrations(kind domain.ServiceKind) []contract.ServiceEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.services[kind], func(r registration, _ int) contract.ServiceEvent {
		return r.toEvent(kind)
	})
}

func (m *ServicesManager) Subscribe(listener contract.ServiceListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, listener)
}

// store drops the kind entirely once empty so the map does not grow forever.
func (m *ServicesManager) store(kind domain.ServiceKind, regs []registration) {
	if len(regs) == 0 {
		delete(m.services, kind)
		return
	}
	m.services[kind] = regs
}

func (m *ServicesManager) snapshotListeners() []contract.ServiceListener {
	return append([]contract.ServiceListener(nil), m.listeners...)
}

func (m *ServicesManager) notifyUnregistered(listeners []contract.ServiceListener, kind domain.ServiceKind, removed []registration) {
	for _, reg := range removed {
		m.log.Debug(fmt.Sprintf("Service unregistered for %s", kind), "owner", reg.owner)
		for _, l := range listeners {
			l.OnServiceUnregistered(reg.toEvent(kind))
		}
	}
}
