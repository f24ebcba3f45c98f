package live

import (
	"context"
	"sync"
)

// Frame is one rendered state of a Feed.
type Frame struct {
	State   State
	Data    any
	Err     error
	Version uint64
}

// Feed is a renderable stream of frames, consumed by one screen.
type Feed interface {
	// Changed signals that Frame may return something new.
	Changed() <-chan struct{}

	// Frame renders the current state.
	Frame(ctx context.Context) Frame

	// Close releases everything the feed holds. It is idempotent.
	Close()
}

// Projection turns a materialized snapshot into the value a screen renders.
type Projection[T, V any] func(ctx context.Context, docs []T) (V, error)

type view[T, V any] struct {
	sub     *Subscription[T]
	project Projection[T, V]
}

// Project builds a Feed that renders sub through project. Closing the feed closes sub.
func Project[T, V any](sub *Subscription[T], project Projection[T, V]) Feed {
	return &view[T, V]{sub: sub, project: project}
}

func (v *view[T, V]) Changed() <-chan struct{} {
	return v.sub.Changed()
}

func (v *view[T, V]) Frame(ctx context.Context) Frame {
	snap := v.sub.Snapshot()
	frame := Frame{State: snap.State, Err: snap.Err, Version: snap.Version}
	if snap.State != StateReady {
		return frame
	}

	data, err := v.project(ctx, snap.Docs)
	if err != nil {
		frame.State = StateFailed
		frame.Err = err

		return frame
	}
	frame.Data = data

	return frame
}

func (v *view[T, V]) Close() {
	v.sub.Close()
}

type signalFeed struct {
	ch     <-chan struct{}
	render func(ctx context.Context) (any, error)

	mu       sync.Mutex
	version  uint64
	closed   bool
	teardown func()
}

// FromSignal builds a Feed that re-renders whenever sig fires. Closing the feed
// only unregisters from sig.
func FromSignal(sig *Signal, render func(ctx context.Context) (any, error)) Feed {
	ch, unsubscribe := sig.Subscribe()

	return &signalFeed{ch: ch, render: render, teardown: unsubscribe}
}

func (f *signalFeed) Changed() <-chan struct{} {
	return f.ch
}

func (f *signalFeed) Frame(ctx context.Context) Frame {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()

		return Frame{State: StateClosed}
	}
	f.version++
	version := f.version
	f.mu.Unlock()

	data, err := f.render(ctx)
	if err != nil {
		return Frame{State: StateFailed, Err: err, Version: version}
	}

	return Frame{State: StateReady, Data: data, Version: version}
}

func (f *signalFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.teardown()
}
