package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase/live"
	"canteen/internal/usecase/notify"
	"canteen/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	defaultIdleTimeout   = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// Deriver is the notification deriver run for customer sessions.
type Deriver interface {
	Start(ctx context.Context) error
	Stop()
	State() live.State
}

// DeriverFactory builds a stopped deriver for uid that calls onNotify after each batch.
type DeriverFactory func(uid string, onNotify func()) Deriver

// NewDeriverFactory adapts the notification deriver factory.
func NewDeriverFactory(factory *notify.Factory) DeriverFactory {
	return func(uid string, onNotify func()) Deriver {
		return factory.New(uid, onNotify)
	}
}

// Registry holds the sessions of every signed-in identity, keyed by UID.
type Registry struct {
	users       repository.UserRepository
	inbox       repository.InboxRepository
	newDeriver  DeriverFactory
	logger      *slog.Logger
	idleTimeout time.Duration
	sweepEvery  time.Duration
	now         func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	sessions map[string]*Session
	closed   bool

	stopSweep context.CancelFunc
	sweepDone chan struct{}
}

// RegistryParams holds dependencies for Registry, injected by Fx.
type RegistryParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Logger     *slog.Logger
	Users      repository.UserRepository
	Inbox      repository.InboxRepository
	NewDeriver DeriverFactory
}

// NewRegistry creates the registry and ties its sweeper and teardown to the application lifecycle.
func NewRegistry(params RegistryParams) *Registry {
	r := newRegistry(params.Users, params.Inbox, params.NewDeriver, params.Config, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.StartSweeper()

			return nil
		},
		OnStop: func(context.Context) error {
			r.Close()

			return nil
		},
	})

	return r
}

func newRegistry(
	users repository.UserRepository,
	inbox repository.InboxRepository,
	newDeriver DeriverFactory,
	cfg *config.Config,
	logger *slog.Logger,
) *Registry {
	r := &Registry{
		users:       users,
		inbox:       inbox,
		newDeriver:  newDeriver,
		logger:      logger,
		idleTimeout: defaultIdleTimeout,
		sweepEvery:  defaultSweepInterval,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
	if cfg != nil && cfg.Session != nil {
		if cfg.Session.IdleTimeout > 0 {
			r.idleTimeout = cfg.Session.IdleTimeout
		}
		if cfg.Session.SweepInterval > 0 {
			r.sweepEvery = cfg.Session.SweepInterval
		}
	}

	return r
}

func (r *Registry) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Activate returns the session of identity, creating it on first use. Creating a customer
// session starts its notification deriver; a deriver that fails to start is logged and the
// session stays usable.
func (r *Registry) Activate(ctx context.Context, identity *entity.Identity) (*Session, error) {
	if identity == nil || identity.UID == "" {
		return nil, errors.New("identity is required")
	}

	if s, ok := r.Get(identity.UID); ok {
		s.touch(identity, r.now())

		return s, nil
	}

	v, err, _ := r.group.Do(identity.UID, func() (any, error) {
		r.mu.RLock()
		s, ok := r.sessions[identity.UID]
		closed := r.closed
		r.mu.RUnlock()
		if closed {
			return nil, errors.New("session registry is closed")
		}
		if ok {
			return s, nil
		}

		profile, err := r.loadProfile(ctx, identity.UID)
		if err != nil {
			return nil, err
		}

		s = newSession(identity, profile, r.now())

		r.mu.Lock()
		if r.closed {
			r.mu.Unlock()

			return nil, errors.New("session registry is closed")
		}
		r.sessions[identity.UID] = s
		r.mu.Unlock()

		r.syncDeriver(ctx, s)
		r.log(ctx).Info("Session activated",
			slog.String("uid", identity.UID),
			slog.Bool("admin", s.IsAdmin()),
		)

		return s, nil
	})
	if err != nil {
		return nil, err
	}

	s, _ := v.(*Session)
	s.touch(identity, r.now())

	return s, nil
}

func (r *Registry) loadProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := r.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// syncDeriver runs a deriver for customers and none for admins.
func (r *Registry) syncDeriver(ctx context.Context, s *Session) {
	if s.IsAdmin() {
		if prev := s.swapDeriver(nil); prev != nil {
			prev.Stop()
		}

		return
	}

	s.mu.Lock()
	running := s.deriver != nil
	s.mu.Unlock()
	if running {
		return
	}

	d := r.newDeriver(s.uid, s.changed.Notify)
	if err := d.Start(ctx); err != nil {
		r.log(ctx).Error("Failed to start notification deriver",
			slog.String("uid", s.uid),
			slog.Any("error", err),
		)

		return
	}
	if prev := s.swapDeriver(d); prev != nil {
		prev.Stop()
	}
}

// Get returns the active session of uid.
func (r *Registry) Get(uid string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[uid]

	return s, ok
}

// Refresh re-reads the profile of an active session, so a renamed profile or a toggled
// privileged flag takes effect without signing in again. Inactive UIDs are ignored.
func (r *Registry) Refresh(ctx context.Context, uid string) error {
	s, ok := r.Get(uid)
	if !ok {
		return nil
	}

	profile, err := r.loadProfile(ctx, uid)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.setProfile(profile)
	s.mu.Unlock()

	r.syncDeriver(ctx, s)
	s.changed.Notify()

	return nil
}

// End signs the session out: the deriver stops before End returns and the inbox is cleared.
func (r *Registry) End(ctx context.Context, uid string) {
	r.mu.Lock()
	s, ok := r.sessions[uid]
	delete(r.sessions, uid)
	r.mu.Unlock()

	if !ok {
		return
	}

	r.teardown(s)
	if err := r.inbox.Clear(ctx, uid); err != nil {
		r.log(ctx).Warn("Failed to clear notification inbox", slog.String("uid", uid), slog.Any("error", err))
	}
	r.log(ctx).Info("Session ended", slog.String("uid", uid))
}

func (r *Registry) teardown(s *Session) {
	if d := s.swapDeriver(nil); d != nil {
		d.Stop()
	}
	s.changed.Notify()
}

// Sweep evicts sessions idle for longer than the idle timeout and returns how many it evicted.
// Sessions with open streams are kept. The inbox of an evicted session is kept.
func (r *Registry) Sweep(now time.Time) int {
	var evicted []*Session

	r.mu.Lock()
	for uid, s := range r.sessions {
		idle, streaming := s.idleSince(now)
		if streaming || idle < r.idleTimeout {
			continue
		}
		delete(r.sessions, uid)
		evicted = append(evicted, s)
	}
	r.mu.Unlock()

	for _, s := range evicted {
		r.teardown(s)
		r.logger.Debug("Evicted idle session", slog.String("uid", s.uid))
	}

	return len(evicted)
}

// Len returns the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// StartSweeper evicts idle sessions periodically until Close.
func (r *Registry) StartSweeper() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopSweep != nil || r.closed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.stopSweep = cancel
	r.sweepDone = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)

		ticker := time.NewTicker(r.sweepEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(r.now()); n > 0 {
					r.logger.Info("Swept idle sessions",
						slog.Int("evicted", n),
						slog.String("idle_timeout", util.FormatDuration(r.idleTimeout)),
					)
				}
			}
		}
	}(r.sweepDone)

	r.logger.Info("Session sweeper started", slog.String("interval", util.FormatDuration(r.sweepEvery)))
}

// Close stops the sweeper and tears down every session. It is idempotent.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()

		return
	}
	r.closed = true
	stop, done := r.stopSweep, r.sweepDone
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}
	for _, s := range sessions {
		r.teardown(s)
	}
	r.logger.Info("Session registry closed", slog.Int("sessions", len(sessions)))
}
