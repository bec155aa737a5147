package binding

import (
	"chat-formatter/contract"
	"chat-formatter/domain"
	"chat-formatter/mocks"
	"chat-formatter/runtime"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func participant(t *testing.T, name string) domain.Participant {
	p, err := domain.NewParticipant(name)
	require.NoError(t, err)
	return p
}

func TestProviderBinding_Starts_Without_Provider(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mocks.NewMockServiceResolver(ctrl)
	b := NewProviderBinding(slog.Default(), resolver)

	prefix, ok, err := b.CurrentPrefix(participant(t, "Bob"))
	req.NoError(err)
	req.False(ok)
	req.Nil(prefix)

	suffix, ok, err := b.CurrentSuffix(participant(t, "Bob"))
	req.NoError(err)
	req.False(ok)
	req.Nil(suffix)
	req.Nil(b.Current())
}

func TestProviderBinding_Ignores_Other_Kinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mocks.NewMockServiceResolver(ctrl)
	b := NewProviderBinding(slog.Default(), resolver)

	// The resolver must never be asked for a permission or economy change
	resolver.EXPECT().Load(gomock.Any()).Times(0)

	b.OnServiceRegistered(contract.ServiceEvent{Kind: domain.PermissionServiceKind})
	b.OnServiceUnregistered(contract.ServiceEvent{Kind: domain.EconomyServiceKind})
}

func TestProviderBinding_Requeries_Resolver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mocks.NewMockServiceResolver(ctrl)
	announced := mocks.NewMockChatProvider(ctrl)
	resolved := mocks.NewMockChatProvider(ctrl)
	b := NewProviderBinding(logs.GetLoggerFromLevel(slog.LevelDebug), resolver)

	// Given the event names one provider but the resolver answers another
	resolver.EXPECT().Load(domain.ChatServiceKind).Return(resolved)
	resolved.EXPECT().Name().Return("resolved").AnyTimes()

	// When the event is delivered
	b.OnServiceRegistered(contract.ServiceEvent{Kind: domain.ChatServiceKind, Service: announced})

	// Then the resolver's answer is kept
	req.Equal(contract.ChatProvider(resolved), b.Current())
}

func TestProviderBinding_Delegates_To_Provider(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mocks.NewMockServiceResolver(ctrl)
	provider := mocks.NewMockChatProvider(ctrl)
	b := NewProviderBinding(slog.Default(), resolver)
	bob := participant(t, "Bob")

	resolver.EXPECT().Load(domain.ChatServiceKind).Return(provider)
	provider.EXPECT().Name().Return("vault").AnyTimes()
	provider.EXPECT().PlayerPrefix(bob).Return(lo.ToPtr("[Admin]"), nil).Times(2)
	provider.EXPECT().PlayerSuffix(bob).Return(nil, nil).Times(2)
	b.Refresh()

	prefix, ok, err := b.CurrentPrefix(bob)
	req.NoError(err)
	req.True(ok)
	req.Equal("[Admin]", *prefix)

	suffix, ok, err := b.CurrentSuffix(bob)
	req.NoError(err)
	req.True(ok)
	req.Nil(suffix)

	attributes, ok, err := b.Lookup(bob)
	req.NoError(err)
	req.True(ok)
	req.Equal(Attributes{Prefix: lo.ToPtr("[Admin]")}, attributes)
}

func TestProviderBinding_Propagates_Provider_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mocks.NewMockServiceResolver(ctrl)
	provider := mocks.NewMockChatProvider(ctrl)
	b := NewProviderBinding(slog.Default(), resolver)
	boom := fmt.Errorf("backend down")

	resolver.EXPECT().Load(domain.ChatServiceKind).Return(provider)
	provider.EXPECT().Name().Return("vault").AnyTimes()
	provider.EXPECT().PlayerPrefix(gomock.Any()).Return(nil, boom)
	b.Refresh()

	_, ok, err := b.Lookup(participant(t, "Bob"))

	req.True(ok)
	req.ErrorIs(err, boom)
}

type namedProvider struct {
	name string
}

func (n *namedProvider) Name() string { return n.name }

func (n *namedProvider) PlayerPrefix(domain.Participant) (*string, error) {
	return lo.ToPtr(n.name), nil
}

func (n *namedProvider) PlayerSuffix(domain.Participant) (*string, error) {
	return nil, nil
}

// tableProvider is used by value and holds a map, so it is not comparable.
type tableProvider struct {
	prefixes map[string]string
}

func (p tableProvider) Name() string { return "table" }

func (p tableProvider) PlayerPrefix(participant domain.Participant) (*string, error) {
	return lo.ToPtr(p.prefixes[participant.Name]), nil
}

func (p tableProvider) PlayerSuffix(domain.Participant) (*string, error) {
	return nil, nil
}

func TestProviderBinding_Refresh_With_Incomparable_Provider(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := mocks.NewMockServiceResolver(ctrl)
	b := NewProviderBinding(slog.Default(), resolver)

	// Given a resolver answering a provider value that holds a map
	provider := tableProvider{prefixes: map[string]string{"Bob": "[Admin]"}}
	resolver.EXPECT().Load(domain.ChatServiceKind).Return(provider).Times(2)

	// When the binding refreshes twice
	req.NotPanics(func() {
		b.Refresh()
		b.Refresh()
	})

	// Then the provider is active and answers
	prefix, ok, err := b.CurrentPrefix(participant(t, "Bob"))
	req.NoError(err)
	req.True(ok)
	req.Equal("[Admin]", *prefix)
}

func TestProviderBinding_Follows_Services_Manager(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	manager := runtime.NewServicesManager(log)
	b := NewProviderBinding(log, manager)
	manager.Subscribe(b)
	a, bProvider := &namedProvider{"A"}, &namedProvider{"B"}

	// Given A then B register
	req.NoError(manager.Register(domain.ChatServiceKind, a, "a", domain.PriorityNormal))
	req.Same(a, b.Current())
	req.NoError(manager.Register(domain.ChatServiceKind, bProvider, "b", domain.PriorityNormal))
	req.Same(bProvider, b.Current())

	// When A unregisters
	manager.Unregister(domain.ChatServiceKind, a)

	// Then B stays active
	req.Same(bProvider, b.Current())

	// And once B goes too, nothing is active
	manager.Unregister(domain.ChatServiceKind, bProvider)
	req.Nil(b.Current())
}

func TestProviderBinding_Concurrent_Reads_During_Swaps(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	manager := runtime.NewServicesManager(log)
	b := NewProviderBinding(log, manager)
	manager.Subscribe(b)
	a, c := &namedProvider{"A"}, &namedProvider{"C"}
	bob := participant(t, "Bob")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = manager.Register(domain.ChatServiceKind, a, "a", domain.PriorityNormal)
			_ = manager.Register(domain.ChatServiceKind, c, "c", domain.PriorityNormal)
			manager.UnregisterAll("a")
			manager.UnregisterAll("c")
		}
	}()
	seen := make(map[string]bool)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			attributes, ok, err := b.Lookup(bob)
			if err != nil {
				return
			}
			if ok {
				seen[*attributes.Prefix] = true
			}
		}
	}()
	wg.Wait()

	for name := range seen {
		req.Contains([]string{"A", "C"}, name)
	}
	req.Nil(b.Current())
}
