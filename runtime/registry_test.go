package runtime

import (
	"chat-formatter/contract"
	"chat-formatter/domain"
	"chat-formatter/errors"
	"chat-formatter/mocks"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type service struct {
	name string
}

func TestServicesManager_Register_One_Service(t *testing.T) {
	req := require.New(t)
	manager := NewServicesManager(slog.Default())
	vault := &service{"vault"}

	// Given no service is registered
	req.Nil(manager.Load(domain.ChatServiceKind))

	// When a chat service is registered
	req.NoError(manager.Register(domain.ChatServiceKind, vault, "vault-plugin", domain.PriorityNormal))

	// Then it is resolved for its kind only
	req.Same(vault, manager.Load(domain.ChatServiceKind))
	req.Nil(manager.Load(domain.EconomyServiceKind))
	req.Len(manager.Registrations(domain.ChatServiceKind), 1)
}

func TestServicesManager_Last_Registration_Wins(t *testing.T) {
	req := require.New(t)
	manager := NewServicesManager(slog.Default())
	a, b := &service{"a"}, &service{"b"}

	req.NoError(manager.Register(domain.ChatServiceKind, a, "a", domain.PriorityNormal))
	req.NoError(manager.Register(domain.ChatServiceKind, b, "b", domain.PriorityNormal))
	req.Same(b, manager.Load(domain.ChatServiceKind))

	// When the latest is removed, the previous one is resolved again
	manager.Unregister(domain.ChatServiceKind, b)
	req.Same(a, manager.Load(domain.ChatServiceKind))

	manager.Unregister(domain.ChatServiceKind, a)
	req.Nil(manager.Load(domain.ChatServiceKind))
	req.Empty(manager.services)
}

func TestServicesManager_Priority_Beats_Recency(t *testing.T) {
	req := require.New(t)
	manager := NewServicesManager(slog.Default())
	high, low := &service{"high"}, &service{"low"}

	req.NoError(manager.Register(domain.ChatServiceKind, high, "high", domain.PriorityHigh))
	req.NoError(manager.Register(domain.ChatServiceKind, low, "low", domain.PriorityLow))

	req.Same(high, manager.Load(domain.ChatServiceKind))
	registrations := manager.Registrations(domain.ChatServiceKind)
	req.Equal("high", registrations[0].Owner)
	req.Equal("low", registrations[1].Owner)
}

func TestServicesManager_Register_Invalid(t *testing.T) {
	req := require.New(t)
	manager := NewServicesManager(slog.Default())

	req.ErrorIs(manager.Register("", &service{}, "x", domain.PriorityNormal), errors.ErrUnknownServiceKind)
	req.ErrorIs(manager.Register(domain.ChatServiceKind, nil, "x", domain.PriorityNormal), errors.ErrNilService)

	// A value holding a map can not be told apart from another one
	unhashable := map[string]string{"prefix": "[Admin]"}
	req.ErrorIs(manager.Register(domain.ChatServiceKind, unhashable, "x", domain.PriorityNormal), errors.ErrIncomparableService)
	req.Nil(manager.Load(domain.ChatServiceKind))
	req.NotPanics(func() { manager.Unregister(domain.ChatServiceKind, unhashable) })
}

func TestServicesManager_Notifies_Listeners(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	listener := mocks.NewMockServiceListener(ctrl)
	manager := NewServicesManager(slog.Default())
	manager.Subscribe(listener)
	vault, bank := &service{"vault"}, &service{"bank"}

	// Every kind is published, filtering belongs to the listener
	gomock.InOrder(
		listener.EXPECT().OnServiceRegistered(contract.ServiceEvent{
			Kind: domain.ChatServiceKind, Service: vault, Owner: "vault", Priority: domain.PriorityNormal,
		}),
		listener.EXPECT().OnServiceRegistered(gomock.Any()).Do(func(e contract.ServiceEvent) {
			req.Equal(domain.EconomyServiceKind, e.Kind)
		}),
		listener.EXPECT().OnServiceUnregistered(gomock.Any()).Times(2),
	)

	req.NoError(manager.Register(domain.ChatServiceKind, vault, "vault", domain.PriorityNormal))
	req.NoError(manager.Register(domain.EconomyServiceKind, bank, "vault", domain.PriorityNormal))
	manager.UnregisterAll("vault")

	req.Nil(manager.Load(domain.ChatServiceKind))
	req.Nil(manager.Load(domain.EconomyServiceKind))
}

func TestServicesManager_Unregister_Unknown_Is_Silent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	listener := mocks.NewMockServiceListener(ctrl)
	manager := NewServicesManager(slog.Default())
	manager.Subscribe(listener)

	listener.EXPECT().OnServiceUnregistered(gomock.Any()).Times(0)

	manager.Unregister(domain.ChatServiceKind, &service{"ghost"})
}

// Listeners may query the manager from their callback.
type reentrantListener struct {
	manager *ServicesManager
	seen    []any
}

func (r *reentrantListener) OnServiceRegistered(e contract.ServiceEvent) {
	r.seen = append(r.seen, r.manager.Load(e.Kind))
}

func (r *reentrantListener) OnServiceUnregistered(e contract.ServiceEvent) {
	r.seen = append(r.seen, r.manager.Load(e.Kind))
}

func TestServicesManager_Listener_Can_Reenter(t *testing.T) {
	req := require.New(t)
	manager := NewServicesManager(slog.Default())
	listener := &reentrantListener{manager: manager}
	manager.Subscribe(listener)
	vault := &service{"vault"}

	req.NoError(manager.Register(domain.ChatServiceKind, vault, "vault", domain.PriorityNormal))
	manager.Unregister(domain.ChatServiceKind, vault)

	req.Equal([]any{vault, nil}, listener.seen)
}
