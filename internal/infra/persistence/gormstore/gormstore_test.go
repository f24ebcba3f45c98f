package gormstore

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"canteen/config"
	"canteen/internal/domain/constants"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

// createTestDB opens a private in-memory SQLite database with the schema migrated.
func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{Local: &config.LocalConfig{
		Driver: constants.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}}
	db, err := Open(cfg, slog.Default())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// snapshotRecorder collects live query deliveries.
type snapshotRecorder[T any] struct {
	mu    sync.Mutex
	snaps [][]T
	err   error
}

func (r *snapshotRecorder[T]) onSnapshot(docs []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, docs)
}

func (r *snapshotRecorder[T]) onError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *snapshotRecorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.snaps)
}

func (r *snapshotRecorder[T]) last() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return nil
	}

	return r.snaps[len(r.snaps)-1]
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{Local: &config.LocalConfig{Driver: "mysql"}}

	_, err := Open(cfg, slog.Default())
	assert.ErrorContains(t, err, "unsupported local driver")
}

func TestOpen_PostgresRequiresConfig(t *testing.T) {
	cfg := &config.Config{Local: &config.LocalConfig{Driver: constants.DriverPostgres}}

	_, err := Open(cfg, slog.Default())
	assert.ErrorContains(t, err, "postgres configuration is required")
}

func TestColumns_Apply(t *testing.T) {
	db := createTestDB(t)
	repo := NewOrderRepository(db, NewBroadcaster(slog.Default()))
	ctx := context.Background()

	for i, status := range []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusReady, entity.OrderStatusCancelled} {
		require.NoError(t, repo.Create(ctx, &entity.Order{
			OrderID: "ORDER_00000000" + string(rune('1'+i)),
			UserID:  "u1",
			Status:  status,
			Time:    baseTime.Add(time.Duration(i) * time.Minute),
		}))
	}

	tests := []struct {
		name    string
		query   repository.Query
		want    []string
		wantErr string
	}{
		{
			name:  "equality on a named string type",
			query: repository.NewQuery().Where(repository.FieldOrderStatus, repository.OpEqual, entity.OrderStatusReady),
			want:  []string{"ORDER_000000002"},
		},
		{
			name: "membership with ordering",
			query: repository.NewQuery().
				Where(repository.FieldOrderStatus, repository.OpIn, entity.TerminalOrderStatuses()).
				OrderBy(repository.FieldOrderTime, repository.Descending),
			want: []string{"ORDER_000000003", "ORDER_000000002"},
		},
		{
			name: "time range with limit",
			query: repository.NewQuery().
				Where(repository.FieldOrderTime, repository.OpGreaterEqual, baseTime).
				OrderBy(repository.FieldOrderTime, repository.Ascending).
				WithLimit(2),
			want: []string{"ORDER_000000001", "ORDER_000000002"},
		},
		{
			name:  "empty membership matches nothing",
			query: repository.NewQuery().Where(repository.FieldOrderStatus, repository.OpIn, []entity.OrderStatus{}),
			want:  []string{},
		},
		{
			name:    "unknown field",
			query:   repository.NewQuery().Where("Address", repository.OpEqual, "x"),
			wantErr: "unsupported query field",
		},
		{
			name:    "oversized membership",
			query:   repository.NewQuery().Where(repository.FieldOrderUserID, repository.OpIn, make([]string, repository.MaxInValues+1)),
			wantErr: "at most 30 allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.List(ctx, tt.query)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)

			codes := make([]string, 0, len(orders))
			for _, o := range orders {
				codes = append(codes, o.OrderID)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestWatch_DeliversChangedResults(t *testing.T) {
	db := createTestDB(t)
	broadcaster := NewBroadcaster(slog.Default())
	repo := NewMenuRepository(db, broadcaster)
	ctx := context.Background()
	rec := &snapshotRecorder[*entity.MenuItem]{}

	reg, err := repo.Watch(ctx, repository.NewQuery().OrderBy(repository.FieldMenuItemName, repository.Ascending), rec.onSnapshot, rec.onError)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, rec.last())

	item := &entity.MenuItem{ItemID: "V01", ItemName: "Veg Thali", Price: 80}
	require.NoError(t, repo.Create(ctx, item))
	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Veg Thali", rec.last()[0].ItemName)

	// A write that leaves the result unchanged delivers nothing.
	item.Price = 80
	require.NoError(t, repo.Update(ctx, item))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, rec.count())

	reg.Remove()
	reg.Remove()
	assert.Zero(t, broadcaster.Watchers(model.MenuItemModel{}.TableName()))

	require.NoError(t, repo.Delete(ctx, item.ID))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, rec.count(), "no delivery after Remove")
	assert.NoError(t, rec.err)
}

func TestWatch_RejectsInvalidQuery(t *testing.T) {
	db := createTestDB(t)
	repo := NewUserRepository(db, NewBroadcaster(slog.Default()))
	rec := &snapshotRecorder[*entity.UserProfile]{}

	_, err := repo.Watch(context.Background(), repository.NewQuery().Where("Email", repository.OpEqual, "x"), rec.onSnapshot, rec.onError)
	assert.Error(t, err)
}

func TestWatch_CancelledContextEndsSilently(t *testing.T) {
	db := createTestDB(t)
	broadcaster := NewBroadcaster(slog.Default())
	repo := NewUserRepository(db, broadcaster)
	ctx, cancel := context.WithCancel(context.Background())
	rec := &snapshotRecorder[*entity.UserProfile]{}

	_, err := repo.Watch(ctx, repository.NewQuery(), rec.onSnapshot, rec.onError)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return broadcaster.Watchers(model.UserModel{}.TableName()) == 0 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, rec.err)
}
