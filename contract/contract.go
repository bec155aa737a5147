//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-formatter/domain"
	"context"
	"reflect"
)

// ChatProvider supplies the prefix and suffix of a participant.
// A nil value means the provider has nothing for this participant.
type ChatProvider interface {
	Name() string
	PlayerPrefix(p domain.Participant) (*string, error)
	PlayerSuffix(p domain.Participant) (*string, error)
}

// ServiceEvent is published for every registration change, whatever its kind.
type ServiceEvent struct {
	Kind     domain.ServiceKind
	Service  any
	Owner    string
	Priority domain.ServicePriority
}

type ServiceListener interface {
	OnServiceRegistered(e ServiceEvent)
	OnServiceUnregistered(e ServiceEvent)
}

// ServiceResolver answers which service currently serves a kind.
// Its answer is authoritative, whatever events were seen before.
type ServiceResolver interface {
	Load(kind domain.ServiceKind) any
}

type IServicesManager interface {
	ServiceResolver
	Register(kind domain.ServiceKind, service any, owner string, priority domain.ServicePriority) error
	Unregister(kind domain.ServiceKind, service any)
	UnregisterAll(owner string)
	Subscribe(listener ServiceListener)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type MessageSink interface {
	Consume(ctx context.Context, msg domain.DecoratedMessage) error
}

// ChatFormatter decorates outgoing messages and answers administrative commands.
type ChatFormatter interface {
	OnChat(msg domain.Message) domain.DecoratedMessage
	HandleCommand(args []string) (string, error)
}

// ConfigLoader reads the raw chat format from persisted configuration.
type ConfigLoader interface {
	SaveDefault() error
	LoadFormat() (string, error)
}
