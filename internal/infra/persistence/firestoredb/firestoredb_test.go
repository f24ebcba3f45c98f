package firestoredb

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_Build(t *testing.T) {
	base := firestore.Query{}

	tests := []struct {
		name        string
		query       repository.Query
		wantNothing bool
		wantErr     string
	}{
		{
			name: "supported filters and orderings",
			query: repository.NewQuery().
				Where(repository.FieldOrderStatus, repository.OpIn, entity.TerminalOrderStatuses()).
				Where(repository.FieldOrderIsNotified, repository.OpEqual, false).
				OrderBy(repository.FieldOrderTime, repository.Descending).
				WithLimit(10),
		},
		{
			name:        "empty membership",
			query:       repository.NewQuery().Where(repository.FieldOrderUserID, repository.OpIn, []string{}),
			wantNothing: true,
		},
		{
			name:    "unknown filter field",
			query:   repository.NewQuery().Where("Address", repository.OpEqual, "x"),
			wantErr: "unsupported query field",
		},
		{
			name:    "unknown order field",
			query:   repository.NewQuery().OrderBy("Address", repository.Ascending),
			wantErr: "unsupported order field",
		},
		{
			name:    "unknown operator",
			query:   repository.NewQuery().Where(repository.FieldOrderStatus, "!=", "ready"),
			wantErr: "unsupported operator",
		},
		{
			name:    "oversized membership",
			query:   repository.NewQuery().Where(repository.FieldOrderUserID, repository.OpIn, make([]string, repository.MaxInValues+1)),
			wantErr: "at most 30 allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, nothing, err := orderFields.build(base, tt.query)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNothing, nothing)
		})
	}
}

func TestNormalizeList(t *testing.T) {
	assert.Equal(t, []any{"ready", "cancelled"}, normalizeList(entity.TerminalOrderStatuses()))
	assert.Equal(t, []any{"u1"}, normalizeList("u1"))
	assert.Equal(t, "Open", normalizeValue(entity.TicketStatusOpen))
	assert.Equal(t, 3, normalizeValue(3))
}

func TestWatch_EmptyMembershipDeliversOnce(t *testing.T) {
	var (
		mu    sync.Mutex
		snaps [][]*entity.Order
	)
	reg := watch(context.Background(), slog.Default(), CollectionOrders, firestore.Query{}, true, decodeOrder,
		func(docs []*entity.Order) {
			mu.Lock()
			defer mu.Unlock()
			snaps = append(snaps, docs)
		},
		func(error) { t.Error("unexpected error") },
	)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(snaps) == 1
	}, time.Second, 5*time.Millisecond)

	reg.Remove()
	reg.Remove()
	assert.Empty(t, snaps[0])
}

func TestOrderDocumentRoundTrip(t *testing.T) {
	pickup := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	order := &entity.Order{
		ID:            "doc1",
		OrderID:       "ORDER_ABC123XYZ",
		Items:         []entity.OrderItem{{Name: "Veg Thali", Quantity: 2, Price: 80}},
		UserID:        "u1",
		Amount:        160,
		PaymentMethod: entity.PaymentMethodPaytm,
		ScheduleLater: &pickup,
		Status:        entity.OrderStatusPending,
		Time:          time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		Notes:         "extra pickle",
	}

	doc := fromOrder(order)
	assert.Equal(t, order, toOrder("doc1", &doc))
}

// newEmulatorClient connects to the Firestore emulator, skipping when none is configured.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "demo-canteen")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestOrderRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewOrderRepository(client, slog.Default())
	ctx := context.Background()

	order := &entity.Order{
		OrderID: "ORDER_EMULATOR1",
		UserID:  "emulator-" + t.Name(),
		Status:  entity.OrderStatusPending,
		Time:    time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.Create(ctx, order))

	updated, err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusReady)
	require.NoError(t, err)
	assert.True(t, updated.PaymentStatus)

	_, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)

	require.NoError(t, repo.MarkAnnounced(ctx, []string{order.ID, "missing"}))
	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found.IsNotified)
}

func TestTicketRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewTicketRepository(client, slog.Default())
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	ticket := &entity.Ticket{
		UserID:        "emulator-" + t.Name(),
		UserName:      "Asha",
		Subject:       "Refund",
		Area:          entity.TicketAreaOrderQuery,
		Status:        entity.TicketStatusOpen,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, ticket))
	require.NoError(t, repo.AppendMessage(ctx, ticket.ID, entity.TicketMessage{SenderID: "admin", SenderName: "Canteen", Text: "Done", Timestamp: now.Add(time.Second)}))

	found, err := repo.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	require.Len(t, found.Messages, 1)
	assert.Equal(t, now.Add(time.Second), found.LastUpdatedAt)

	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", entity.TicketStatusResolved, now), repository.ErrTicketNotFound)
}
