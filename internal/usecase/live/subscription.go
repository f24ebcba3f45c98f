// Package live materializes live queries into local snapshots that screens can render.
package live

import (
	"context"
	"log/slog"
	"sync"

	"canteen/internal/domain/repository"
)

// State is the lifecycle state of a subscription.
type State int

const (
	// StateLoading means no snapshot has been delivered yet.
	StateLoading State = iota
	// StateReady means at least one snapshot was delivered. An empty result is still Ready.
	StateReady
	// StateFailed is terminal: establishment or delivery failed and nothing more is delivered.
	StateFailed
	// StateClosed is terminal: the consumer withdrew the subscription.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state can no longer change.
func (s State) IsTerminal() bool {
	return s == StateFailed || s == StateClosed
}

// Snapshot is a consistent copy of a subscription's materialized state.
// Docs is shared with the subscription and must not be modified.
type Snapshot[T any] struct {
	Docs    []T
	State   State
	Err     error
	Version uint64 // Incremented on every delivered snapshot.
}

// Option configures a Subscription.
type Option[T any] func(*Subscription[T])

// WithHandler registers fn to run after each delivered snapshot has been materialized.
// fn runs on the backend's delivery goroutine and must not call Close.
func WithHandler[T any](fn func(docs []T)) Option[T] {
	return func(s *Subscription[T]) {
		s.handler = fn
	}
}

// WithLogger sets the logger used to report delivery failures.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Subscription[T]) {
		s.logger = logger
	}
}

// Subscription holds the latest snapshot of a live query.
type Subscription[T any] struct {
	mu      sync.Mutex
	docs    []T
	state   State
	err     error
	version uint64
	closed  bool
	reg     repository.Registration

	changed chan struct{}
	handler func(docs []T)
	logger  *slog.Logger
}

// Open establishes a live query against src. It always returns a subscription;
// when establishment fails the subscription is already in StateFailed and Err reports why.
// The caller owns the subscription and must Close it on every exit path.
func Open[T any](ctx context.Context, src repository.Watchable[T], q repository.Query, opts ...Option[T]) *Subscription[T] {
	s := &Subscription[T]{
		state:   StateLoading,
		changed: make(chan struct{}, 1),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	reg, err := src.Watch(ctx, q, s.deliver, s.fail)
	if err != nil {
		s.fail(err)

		return s
	}

	s.mu.Lock()
	s.reg = reg
	s.mu.Unlock()

	return s
}

func (s *Subscription[T]) deliver(docs []T) {
	s.mu.Lock()
	if s.closed || s.state == StateFailed {
		s.mu.Unlock()

		return
	}
	s.docs = docs
	s.state = StateReady
	s.version++
	handler := s.handler
	s.mu.Unlock()

	if handler != nil {
		handler(docs)
	}
	s.notify()
}

func (s *Subscription[T]) fail(err error) {
	s.mu.Lock()
	if s.closed || s.state == StateFailed {
		s.mu.Unlock()

		return
	}
	s.state = StateFailed
	s.err = err
	s.mu.Unlock()

	s.logger.Warn("Live query failed", slog.Any("error", err))
	s.notify()
}

func (s *Subscription[T]) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Changed signals that the snapshot or state changed. Signals coalesce: a consumer
// that falls behind sees one pending signal and then reads the latest snapshot.
// The channel is never closed.
func (s *Subscription[T]) Changed() <-chan struct{} {
	return s.changed
}

// Snapshot returns the current materialized state.
func (s *Subscription[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot[T]{
		Docs:    s.docs,
		State:   s.state,
		Err:     s.err,
		Version: s.version,
	}
}

// State returns the current lifecycle state.
func (s *Subscription[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Err returns the failure that moved the subscription into StateFailed.
func (s *Subscription[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Close withdraws the live query. After Close returns no callback runs and the
// snapshot no longer changes. Close is idempotent and must not be called from a handler.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	if s.state != StateFailed {
		s.state = StateClosed
	}
	reg := s.reg
	s.reg = nil
	s.mu.Unlock()

	if reg != nil {
		reg.Remove()
	}
	s.notify()
}
