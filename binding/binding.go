// Package binding tracks the chat provider currently registered with the
// services manager. The provider may appear, change or vanish at any time.
package binding

import (
	"chat-formatter/contract"
	"chat-formatter/domain"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
)

// Attributes are the raw values returned by the active provider.
type Attributes struct {
	Prefix *string
	Suffix *string
}

type active struct {
	provider contract.ChatProvider
}

// ProviderBinding holds at most one chat provider.
// Refreshes are serialized, reads are lock-free snapshots.
type ProviderBinding struct {
	log      *slog.Logger
	resolver contract.ServiceResolver
	mu       sync.Mutex
	current  atomic.Pointer[active]
}

func NewProviderBinding(log *slog.Logger, resolver contract.ServiceResolver) *ProviderBinding {
	b := &ProviderBinding{log: log, resolver: resolver}
	b.current.Store(&active{})
	return b
}

func (b *ProviderBinding) OnServiceRegistered(e contract.ServiceEvent) {
	b.onServiceChange(e)
}

func (b *ProviderBinding) OnServiceUnregistered(e contract.ServiceEvent) {
	b.onServiceChange(e)
}

// onServiceChange ignores the event payload on purpose: several changes may
// race, only the resolver knows which provider won.
func (b *ProviderBinding) onServiceChange(e contract.ServiceEvent) {
	if e.Kind != domain.ChatServiceKind {
		return
	}
	b.Refresh()
}

// Refresh asks the resolver for the chat provider and swaps it in.
func (b *ProviderBinding) Refresh() contract.ChatProvider {
	b.mu.Lock()
	defer b.mu.Unlock()

	provider, _ := b.resolver.Load(domain.ChatServiceKind).(contract.ChatProvider)
	if !sameProvider(provider, b.Current()) {
		b.log.Info(fmt.Sprintf("New chat provider registered: %s", nameOf(provider)))
	}
	b.current.Store(&active{provider: provider})
	return provider
}

// Current returns the active provider or nil.
func (b *ProviderBinding) Current() contract.ChatProvider {
	return b.current.Load().provider
}

// CurrentPrefix reports ok=false when no provider is active.
func (b *ProviderBinding) CurrentPrefix(p domain.Participant) (*string, bool, error) {
	provider := b.Current()
	if provider == nil {
		return nil, false, nil
	}
	prefix, err := provider.PlayerPrefix(p)
	return prefix, true, err
}

// CurrentSuffix reports ok=false when no provider is active.
func (b *ProviderBinding) CurrentSuffix(p domain.Participant) (*string, bool, error) {
	provider := b.Current()
	if provider == nil {
		return nil, false, nil
	}
	suffix, err := provider.PlayerSuffix(p)
	return suffix, true, err
}

// Lookup reads prefix and suffix from a single snapshot so both come from
// the same provider even if it is replaced concurrently.
func (b *ProviderBinding) Lookup(p domain.Participant) (Attributes, bool, error) {
	provider := b.Current()
	if provider == nil {
		return Attributes{}, false, nil
	}
	prefix, err := provider.PlayerPrefix(p)
	if err != nil {
		return Attributes{}, true, fmt.Errorf("prefix from %s: %w", provider.Name(), err)
	}
	suffix, err := provider.PlayerSuffix(p)
	if err != nil {
		return Attributes{}, true, fmt.Errorf("suffix from %s: %w", provider.Name(), err)
	}
	return Attributes{Prefix: prefix, Suffix: suffix}, true, nil
}

func nameOf(provider contract.ChatProvider) string {
	if provider == nil {
		return "null"
	}
	return provider.Name()
}

// sameProvider compares by identity. A provider whose value can not be
// compared counts as a new one.
func sameProvider(a, b contract.ChatProvider) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
