package live

import (
	"context"
	"sync"
	"testing"

	"canteen/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory Watchable. With leaky set it keeps invoking callbacks
// after Remove, which lets tests check that the subscription itself ignores them.
type fakeSource struct {
	mu         sync.Mutex
	onSnapshot func([]string)
	onError    func(error)
	removed    int
	leaky      bool
	watchErr   error
	lastQuery  repository.Query
	initial    []string
	hasInitial bool
}

func (f *fakeSource) Watch(_ context.Context, q repository.Query, onSnapshot func([]string), onError func(error)) (repository.Registration, error) {
	if f.watchErr != nil {
		return nil, f.watchErr
	}

	f.mu.Lock()
	f.onSnapshot = onSnapshot
	f.onError = onError
	f.lastQuery = q
	initial, hasInitial := f.initial, f.hasInitial
	f.mu.Unlock()

	if hasInitial {
		onSnapshot(initial)
	}

	return repository.RegistrationFunc(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.removed++
		if !f.leaky {
			f.onSnapshot = nil
			f.onError = nil
		}
	}), nil
}

func (f *fakeSource) emit(docs []string) {
	f.mu.Lock()
	cb := f.onSnapshot
	f.mu.Unlock()
	if cb != nil {
		cb(docs)
	}
}

func (f *fakeSource) emitError(err error) {
	f.mu.Lock()
	cb := f.onError
	f.mu.Unlock()
	if cb != nil {
		cb(err)
	}
}

func drained(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestSubscription_LoadingUntilFirstSnapshot(t *testing.T) {
	src := &fakeSource{}
	q := repository.NewQuery().Where("UserID", repository.OpEqual, "u1")

	sub := Open[string](context.Background(), src, q)
	defer sub.Close()

	snap := sub.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.Empty(t, snap.Docs)
	assert.Equal(t, q, src.lastQuery)

	src.emit([]string{})

	snap = sub.Snapshot()
	assert.Equal(t, StateReady, snap.State, "an empty result is a delivered snapshot")
	assert.Empty(t, snap.Docs)
	assert.Equal(t, uint64(1), snap.Version)
	assert.True(t, drained(sub.Changed()))
}

func TestSubscription_ReplacesSnapshotWholesale(t *testing.T) {
	src := &fakeSource{}
	sub := Open[string](context.Background(), src, repository.NewQuery())
	defer sub.Close()

	src.emit([]string{"a", "b"})
	src.emit([]string{"c"})

	snap := sub.Snapshot()
	assert.Equal(t, []string{"c"}, snap.Docs)
	assert.Equal(t, uint64(2), snap.Version)
}

func TestSubscription_ChangedCoalesces(t *testing.T) {
	src := &fakeSource{}
	sub := Open[string](context.Background(), src, repository.NewQuery())
	defer sub.Close()

	src.emit([]string{"a"})
	src.emit([]string{"b"})
	src.emit([]string{"c"})

	assert.True(t, drained(sub.Changed()))
	assert.False(t, drained(sub.Changed()), "signals must coalesce into one")
	assert.Equal(t, []string{"c"}, sub.Snapshot().Docs)
}

func TestSubscription_SnapshotDeliveredDuringWatch(t *testing.T) {
	src := &fakeSource{initial: []string{"x"}, hasInitial: true}
	sub := Open[string](context.Background(), src, repository.NewQuery())
	defer sub.Close()

	snap := sub.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.Equal(t, []string{"x"}, snap.Docs)
}

func TestSubscription_EstablishmentFailure(t *testing.T) {
	src := &fakeSource{watchErr: errors.New("permission denied")}

	sub := Open[string](context.Background(), src, repository.NewQuery())
	defer sub.Close()

	assert.Equal(t, StateFailed, sub.State())
	require.Error(t, sub.Err())
	assert.Contains(t, sub.Err().Error(), "permission denied")
	assert.True(t, drained(sub.Changed()))
}

func TestSubscription_MidStreamErrorIsTerminal(t *testing.T) {
	src := &fakeSource{leaky: true}
	calls := 0
	sub := Open[string](context.Background(), src, repository.NewQuery(),
		WithHandler(func([]string) { calls++ }),
	)
	defer sub.Close()

	src.emit([]string{"a"})
	src.emitError(errors.New("stream reset"))
	src.emit([]string{"b"})

	snap := sub.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.EqualError(t, snap.Err, "stream reset")
	assert.Equal(t, []string{"a"}, snap.Docs, "no delivery after failure")
	assert.Equal(t, 1, calls)

	sub.Close()
	assert.Equal(t, StateFailed, sub.State(), "closing keeps the failure visible")
}

func TestSubscription_CloseStopsCallbacksAndMutation(t *testing.T) {
	// The source keeps calling back after Remove; the subscription must ignore it.
	src := &fakeSource{leaky: true}
	calls := 0
	sub := Open[string](context.Background(), src, repository.NewQuery(),
		WithHandler(func([]string) { calls++ }),
	)

	src.emit([]string{"a"})
	require.Equal(t, 1, calls)
	before := sub.Snapshot()

	sub.Close()
	assert.Equal(t, 1, src.removed)

	src.emit([]string{"b", "c"})
	src.emitError(errors.New("late"))

	after := sub.Snapshot()
	assert.Equal(t, 1, calls, "no handler invocation after close")
	assert.Equal(t, before.Docs, after.Docs)
	assert.Equal(t, before.Version, after.Version)
	assert.Equal(t, StateClosed, after.State)
	assert.NoError(t, after.Err)
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	src := &fakeSource{}
	sub := Open[string](context.Background(), src, repository.NewQuery())

	sub.Close()
	sub.Close()

	assert.Equal(t, 1, src.removed)
	assert.Equal(t, StateClosed, sub.State())
}

func TestProject_RendersReadySnapshots(t *testing.T) {
	src := &fakeSource{}
	sub := Open[string](context.Background(), src, repository.NewQuery())
	feed := Project(sub, func(_ context.Context, docs []string) (int, error) {
		return len(docs), nil
	})
	defer feed.Close()

	frame := feed.Frame(context.Background())
	assert.Equal(t, StateLoading, frame.State)
	assert.Nil(t, frame.Data)

	src.emit([]string{"a", "b"})
	frame = feed.Frame(context.Background())
	assert.Equal(t, StateReady, frame.State)
	assert.Equal(t, 2, frame.Data)

	feed.Close()
	assert.Equal(t, 1, src.removed)
}

func TestProject_ProjectionErrorFailsFrame(t *testing.T) {
	src := &fakeSource{}
	sub := Open[string](context.Background(), src, repository.NewQuery())
	feed := Project(sub, func(context.Context, []string) (int, error) {
		return 0, errors.New("lookup failed")
	})
	defer feed.Close()

	src.emit([]string{"a"})
	frame := feed.Frame(context.Background())
	assert.Equal(t, StateFailed, frame.State)
	assert.EqualError(t, frame.Err, "lookup failed")
}

func TestSignal_FanOut(t *testing.T) {
	sig := NewSignal()
	first, unsubFirst := sig.Subscribe()
	second, unsubSecond := sig.Subscribe()
	defer unsubSecond()

	sig.Notify()
	sig.Notify()

	assert.True(t, drained(first))
	assert.False(t, drained(first))
	assert.True(t, drained(second))

	unsubFirst()
	unsubFirst()
	assert.Equal(t, 1, sig.Len())

	sig.Notify()
	assert.False(t, drained(first))
	assert.True(t, drained(second))
}

func TestFromSignal(t *testing.T) {
	sig := NewSignal()
	count := 0
	feed := FromSignal(sig, func(context.Context) (any, error) {
		count++

		return count, nil
	})

	sig.Notify()
	assert.True(t, drained(feed.Changed()))

	frame := feed.Frame(context.Background())
	assert.Equal(t, StateReady, frame.State)
	assert.Equal(t, 1, frame.Data)

	feed.Close()
	feed.Close()
	assert.Equal(t, 0, sig.Len())
	assert.Equal(t, StateClosed, feed.Frame(context.Background()).State)
}
