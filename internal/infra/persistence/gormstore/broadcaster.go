package gormstore

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"canteen/internal/domain/repository"
)

// Broadcaster wakes the live queries of a table after a write to it commits.
type Broadcaster struct {
	logger *slog.Logger

	mu       sync.Mutex
	watchers map[string]map[*watcher]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger:   logger,
		watchers: make(map[string]map[*watcher]struct{}),
	}
}

// Notify wakes every live query on table. It never blocks.
func (b *Broadcaster) Notify(table string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for w := range b.watchers[table] {
		select {
		case w.wake <- struct{}{}:
		default:
		}
	}
}

// Watchers returns the number of live queries on table.
func (b *Broadcaster) Watchers(table string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.watchers[table])
}

func (b *Broadcaster) add(table string, w *watcher) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.watchers[table] == nil {
		b.watchers[table] = make(map[*watcher]struct{})
	}
	b.watchers[table][w] = struct{}{}
}

func (b *Broadcaster) remove(table string, w *watcher) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.watchers[table], w)
}

type watcher struct {
	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Remove stops the watcher and waits for its goroutine, so no callback runs after it returns.
func (w *watcher) Remove() {
	w.once.Do(func() {
		w.cancel()
		<-w.done
	})
}

// watch serves a live query: it runs the query once, then again after each write to table,
// and delivers the result whenever it differs from the last one delivered. Callbacks run on
// one goroutine. A failed query is reported once through onError and ends the watch; a
// cancelled ctx ends it silently.
func watch[T any](
	ctx context.Context,
	b *Broadcaster,
	table string,
	run func(ctx context.Context) ([]T, error),
	onSnapshot func([]T),
	onError func(error),
) repository.Registration {
	runCtx, cancel := context.WithCancel(ctx)
	w := &watcher{
		wake:   make(chan struct{}, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	// Registered before the first run so no write between the run and the wait is missed.
	b.add(table, w)

	go func() {
		defer close(w.done)
		defer b.remove(table, w)

		var (
			last      []T
			delivered bool
		)
		for {
			docs, err := run(runCtx)
			if runCtx.Err() != nil {
				return
			}
			if err != nil {
				b.logger.Warn("Live query failed", slog.String("table", table), slog.Any("error", err))
				onError(err)

				return
			}
			if !delivered || !reflect.DeepEqual(last, docs) {
				onSnapshot(docs)
				last, delivered = docs, true
			}

			select {
			case <-runCtx.Done():
				return
			case <-w.wake:
			}
		}
	}()

	return w
}
