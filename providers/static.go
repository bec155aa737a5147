package providers

import (
	"chat-formatter/domain"
	"strings"
	"sync"
)

// Entry is the prefix and suffix of one participant. Nil fields are returned
// as nil so the formatter shows them as "null".
type Entry struct {
	Prefix *string
	Suffix *string
}

// StaticProvider keeps entries in memory, keyed by case-insensitive name.
type StaticProvider struct {
	name    string
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewStaticProvider(name string) *StaticProvider {
	return &StaticProvider{name: name, entries: make(map[string]Entry)}
}

func (p *StaticProvider) Set(participantName string, entry Entry) *StaticProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[strings.ToLower(participantName)] = entry
	return p
}

func (p *StaticProvider) Name() string {
	return p.name
}

func (p *StaticProvider) PlayerPrefix(participant domain.Participant) (*string, error) {
	return p.get(participant).Prefix, nil
}

func (p *StaticProvider) PlayerSuffix(participant domain.Participant) (*string, error) {
	return p.get(participant).Suffix, nil
}

func (p *StaticProvider) get(participant domain.Participant) Entry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries[strings.ToLower(participant.Name)]
}
