package session

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"canteen/config"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeDeriver struct {
	mu       sync.Mutex
	uid      string
	onNotify func()
	started  int
	stopped  int
	startErr error
}

func (d *fakeDeriver) Start(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started++

	return d.startErr
}

func (d *fakeDeriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped++
}

func (d *fakeDeriver) State() live.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started > d.stopped {
		return live.StateReady
	}

	return live.StateClosed
}

type registryFixtures struct {
	registry *Registry
	users    *mockRepo.MockUserRepository
	inbox    *mockRepo.MockInboxRepository
	derivers []*fakeDeriver
	startErr error
	clock    time.Time
}

func createTestRegistry(t *testing.T) *registryFixtures {
	fx := &registryFixtures{
		users: mockRepo.NewMockUserRepository(t),
		inbox: mockRepo.NewMockInboxRepository(t),
		clock: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
	cfg := &config.Config{Session: &config.SessionConfig{IdleTimeout: 10 * time.Minute, SweepInterval: time.Hour}}
	factory := func(uid string, onNotify func()) Deriver {
		d := &fakeDeriver{uid: uid, onNotify: onNotify, startErr: fx.startErr}
		fx.derivers = append(fx.derivers, d)

		return d
	}
	fx.registry = newRegistry(fx.users, fx.inbox, factory, cfg, slog.Default())
	fx.registry.now = func() time.Time { return fx.clock }

	return fx
}

func TestRegistry_ActivateCustomerStartsDeriver(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "a@example.com", EmailVerified: true}

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1", Name: "Asha"}, nil).Once()

	s, err := fx.registry.Activate(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UID())
	assert.Equal(t, "Asha", s.DisplayName())
	assert.False(t, s.IsAdmin())
	require.Len(t, fx.derivers, 1)
	assert.Equal(t, 1, fx.derivers[0].started)
	assert.Equal(t, live.StateReady, s.DeriverState())

	again, err := fx.registry.Activate(ctx, identity)
	require.NoError(t, err)
	assert.Same(t, s, again)
	assert.Len(t, fx.derivers, 1, "an active session keeps its deriver")
}

func TestRegistry_ActivateAdminRunsNoDeriver(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "a1").Return(&entity.UserProfile{ID: "a1", Name: "Ravi", AdminCheck: true}, nil).Once()

	s, err := fx.registry.Activate(ctx, &entity.Identity{UID: "a1"})
	require.NoError(t, err)
	assert.True(t, s.IsAdmin())
	assert.Empty(t, fx.derivers)
	assert.Equal(t, live.StateClosed, s.DeriverState())
}

func TestRegistry_ActivateWithoutProfile(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u2abcdefgh").Return(nil, repository.ErrUserNotFound).Once()

	s, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u2abcdefgh"})
	require.NoError(t, err)
	assert.False(t, s.IsAdmin())
	assert.Equal(t, "u2abcd...", s.DisplayName())
	assert.Len(t, fx.derivers, 1)
}

func TestRegistry_ActivateProfileError(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u1").Return(nil, errors.New("unavailable")).Once()

	_, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1"})
	require.Error(t, err)
	assert.Equal(t, 0, fx.registry.Len())
}

func TestRegistry_DeriverStartFailureKeepsSession(t *testing.T) {
	fx := createTestRegistry(t)
	fx.startErr = errors.New("permission denied")
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1"}, nil).Once()

	s, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, live.StateClosed, s.DeriverState())
	assert.Equal(t, 1, fx.registry.Len())
}

func TestRegistry_ActivateUpdatesVerification(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1"}, nil).Once()

	_, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1"})
	require.NoError(t, err)

	s, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1", EmailVerified: true})
	require.NoError(t, err)
	assert.True(t, s.Identity().EmailVerified)
}

func TestRegistry_EndStopsDeriverAndClearsInbox(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1"}, nil).Once()
	fx.inbox.EXPECT().Clear(ctx, "u1").Return(nil).Once()

	s, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1"})
	require.NoError(t, err)
	listener, unsubscribe := s.Changed().Subscribe()
	defer unsubscribe()

	fx.registry.End(ctx, "u1")

	assert.Equal(t, 1, fx.derivers[0].stopped)
	_, ok := fx.registry.Get("u1")
	assert.False(t, ok)
	select {
	case <-listener:
	default:
		t.Fatal("open streams must be woken on sign-out")
	}

	fx.registry.End(ctx, "u1")
}

func TestRegistry_RefreshTogglesDeriver(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1"}, nil).Once()
	s, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1"})
	require.NoError(t, err)
	require.Len(t, fx.derivers, 1)

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1", AdminCheck: true}, nil).Once()
	require.NoError(t, fx.registry.Refresh(ctx, "u1"))
	assert.True(t, s.IsAdmin())
	assert.Equal(t, 1, fx.derivers[0].stopped)

	fx.users.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1", Name: "Back"}, nil).Once()
	require.NoError(t, fx.registry.Refresh(ctx, "u1"))
	assert.False(t, s.IsAdmin())
	assert.Equal(t, "Back", s.Profile().Name)
	require.Len(t, fx.derivers, 2)
	assert.Equal(t, 1, fx.derivers[1].started)

	require.NoError(t, fx.registry.Refresh(ctx, "nobody"))
}

func TestRegistry_SweepEvictsIdleSessions(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.UserProfile{}, nil).Times(3)

	_, err := fx.registry.Activate(ctx, &entity.Identity{UID: "idle"})
	require.NoError(t, err)
	streaming, err := fx.registry.Activate(ctx, &entity.Identity{UID: "streaming"})
	require.NoError(t, err)
	release := streaming.Acquire(fx.clock)

	fx.clock = fx.clock.Add(5 * time.Minute)
	_, err = fx.registry.Activate(ctx, &entity.Identity{UID: "recent"})
	require.NoError(t, err)

	evicted := fx.registry.Sweep(fx.clock.Add(6 * time.Minute))

	assert.Equal(t, 1, evicted)
	_, ok := fx.registry.Get("idle")
	assert.False(t, ok)
	_, ok = fx.registry.Get("streaming")
	assert.True(t, ok)
	_, ok = fx.registry.Get("recent")
	assert.True(t, ok)
	assert.Equal(t, 1, fx.derivers[0].stopped)

	release(fx.clock)
	release(fx.clock)
	assert.Equal(t, 2, fx.registry.Sweep(fx.clock.Add(time.Hour)))
}

func TestRegistry_CloseTearsDownEverySession(t *testing.T) {
	fx := createTestRegistry(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.UserProfile{}, nil).Times(2)

	_, err := fx.registry.Activate(ctx, &entity.Identity{UID: "u1"})
	require.NoError(t, err)
	_, err = fx.registry.Activate(ctx, &entity.Identity{UID: "u2"})
	require.NoError(t, err)

	fx.registry.StartSweeper()
	fx.registry.Close()
	fx.registry.Close()

	assert.Equal(t, 0, fx.registry.Len())
	for _, d := range fx.derivers {
		assert.Equal(t, 1, d.stopped)
	}

	_, err = fx.registry.Activate(ctx, &entity.Identity{UID: "u3"})
	require.Error(t, err)
}

func TestRegistry_ActivateRejectsEmptyIdentity(t *testing.T) {
	fx := createTestRegistry(t)

	_, err := fx.registry.Activate(context.Background(), nil)
	require.Error(t, err)
	_, err = fx.registry.Activate(context.Background(), &entity.Identity{})
	require.Error(t, err)
}
