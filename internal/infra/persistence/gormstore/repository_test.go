package gormstore

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.UserProfile{ID: "u1", Name: "Asha"}))
	require.NoError(t, repo.Create(ctx, &entity.UserProfile{ID: "u2", Name: "Ravi", AdminCheck: true}))

	err := repo.Create(ctx, &entity.UserProfile{ID: "u1", Name: "Again"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	err = repo.Create(ctx, &entity.UserProfile{Name: "Nobody"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	require.NoError(t, repo.UpdateName(ctx, "u1", "Asha K"))
	require.NoError(t, repo.SetAdmin(ctx, "u1", true))

	profile, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &entity.UserProfile{ID: "u1", Name: "Asha K", AdminCheck: true}, profile)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.ErrorIs(t, repo.UpdateName(ctx, "missing", "x"), repository.ErrUserNotFound)

	profiles, err := repo.FindByIDs(ctx, []string{"u1", "u2", "missing"})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "Ravi", profiles["u2"].Name)

	admins, err := repo.List(ctx, repository.NewQuery().Where(repository.FieldUserAdminCheck, repository.OpEqual, true).OrderBy(repository.FieldUserName, repository.Ascending))
	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "Asha K", admins[0].Name)
}

func TestMenuRepository(t *testing.T) {
	repo := NewMenuRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	item := &entity.MenuItem{ItemID: "V01", ItemName: "Veg Thali", Description: "Rice, dal, sabzi", Price: 80}
	require.NoError(t, repo.Create(ctx, item))
	assert.NotEmpty(t, item.ID)

	item.Price = 90
	require.NoError(t, repo.Update(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, found)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), repository.ErrMenuItemNotFound)
	assert.ErrorIs(t, repo.Update(ctx, item), repository.ErrMenuItemNotFound)
}

func newTestOrder(userID string, status entity.OrderStatus) *entity.Order {
	pickup := baseTime.Add(2 * time.Hour)

	return &entity.Order{
		OrderID: "ORDER_ABC123XYZ",
		Items: []entity.OrderItem{
			{Name: "Veg Thali", Quantity: 2, Price: 80},
			{Name: "Masala Chai", Quantity: 1, Price: 15},
		},
		UserID:        userID,
		Amount:        175,
		PaymentMethod: entity.PaymentMethodGPay,
		ScheduleLater: &pickup,
		Status:        status,
		Time:          baseTime,
		Notes:         "less spicy",
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	repo := NewOrderRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	order := newTestOrder("u1", entity.OrderStatusPending)
	require.NoError(t, repo.Create(ctx, order))
	require.NotEmpty(t, order.ID)

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, found)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo := NewOrderRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	order := newTestOrder("u1", entity.OrderStatusPending)
	require.NoError(t, repo.Create(ctx, order))

	updated, err := repo.UpdateStatus(ctx, order.ID, entity.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, updated.Status)
	assert.True(t, updated.PaymentStatus, "ready orders are paid")

	_, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)
	assert.ErrorContains(t, err, "order is ready")

	_, err = repo.UpdateStatus(ctx, order.ID, entity.OrderStatusPending)
	assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)

	_, err = repo.UpdateStatus(ctx, "missing", entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	cancelled := newTestOrder("u1", entity.OrderStatusPending)
	require.NoError(t, repo.Create(ctx, cancelled))
	updated, err = repo.UpdateStatus(ctx, cancelled.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.False(t, updated.PaymentStatus)
}

func TestOrderRepository_MarkAnnounced(t *testing.T) {
	repo := NewOrderRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	ids := make([]string, 0, 35)
	for range 35 {
		order := newTestOrder("u1", entity.OrderStatusReady)
		require.NoError(t, repo.Create(ctx, order))
		ids = append(ids, order.ID)
	}

	require.NoError(t, repo.MarkAnnounced(ctx, append(ids, ids[0])))
	require.NoError(t, repo.MarkAnnounced(ctx, nil))

	pending, err := repo.List(ctx, repository.NewQuery().Where(repository.FieldOrderIsNotified, repository.OpEqual, false))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOrderRepository_SetPaymentStatus(t *testing.T) {
	repo := NewOrderRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	order := newTestOrder("u1", entity.OrderStatusPending)
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.SetPaymentStatus(ctx, order.ID, true))
	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found.PaymentStatus)

	assert.ErrorIs(t, repo.SetPaymentStatus(ctx, "missing", true), repository.ErrOrderNotFound)
}

func TestTicketRepository(t *testing.T) {
	repo := NewTicketRepository(createTestDB(t), NewBroadcaster(slog.Default()))
	ctx := context.Background()

	ticket := &entity.Ticket{
		UserID:   "u1",
		UserName: "Asha",
		Subject:  "Cold food",
		Area:     entity.TicketAreaFeedback,
		Status:   entity.TicketStatusOpen,
		Messages: []entity.TicketMessage{
			{SenderID: "u1", SenderName: "Asha", Text: "The dal was cold.", Timestamp: baseTime},
		},
		CreatedAt:     baseTime,
		LastUpdatedAt: baseTime,
	}
	require.NoError(t, repo.Create(ctx, ticket))
	require.NotEmpty(t, ticket.ID)

	reply := entity.TicketMessage{SenderID: "admin", SenderName: "Canteen", Text: "Sorry, we will check.", Timestamp: baseTime.Add(time.Hour)}
	require.NoError(t, repo.AppendMessage(ctx, ticket.ID, reply))
	require.NoError(t, repo.SetStatus(ctx, ticket.ID, entity.TicketStatusResolved, baseTime.Add(2*time.Hour)))

	found, err := repo.FindByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusResolved, found.Status)
	assert.Equal(t, baseTime.Add(2*time.Hour), found.LastUpdatedAt)
	require.Len(t, found.Messages, 2)
	assert.Equal(t, reply, found.Messages[1])

	assert.ErrorIs(t, repo.AppendMessage(ctx, "missing", reply), repository.ErrTicketNotFound)
	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", entity.TicketStatusOpen, baseTime), repository.ErrTicketNotFound)
	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrTicketNotFound)

	mine, err := repo.List(ctx, repository.NewQuery().
		Where(repository.FieldTicketUserID, repository.OpEqual, "u1").
		OrderBy(repository.FieldTicketLastUpdatedAt, repository.Descending))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Len(t, mine[0].Messages, 2)
}

func TestAccountRepository(t *testing.T) {
	repo := NewAccountRepository(createTestDB(t))
	ctx := context.Background()

	account := &entity.Account{
		UID:              "u1",
		Email:            "asha@example.com",
		PasswordHash:     "hash",
		DisplayName:      "Asha",
		TokensValidAfter: baseTime,
		CreatedAt:        baseTime,
	}
	require.NoError(t, repo.Create(ctx, account))

	err := repo.Create(ctx, &entity.Account{UID: "u2", Email: "asha@example.com", CreatedAt: baseTime})
	assert.ErrorIs(t, err, repository.ErrAccountExists)

	found, err := repo.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, account, found)

	require.NoError(t, repo.MarkVerified(ctx, "u1"))
	require.NoError(t, repo.SetPassword(ctx, "u1", "new-hash", baseTime.Add(time.Hour)))

	found, err = repo.FindByUID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found.EmailVerified)
	assert.Equal(t, "new-hash", found.PasswordHash)
	assert.Equal(t, baseTime.Add(time.Hour), found.TokensValidAfter)

	require.NoError(t, repo.RevokeTokens(ctx, "u1", baseTime.Add(2*time.Hour)))
	found, err = repo.FindByUID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(2*time.Hour), found.TokensValidAfter)

	_, err = repo.FindByUID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.ErrorIs(t, repo.MarkVerified(ctx, "missing"), repository.ErrAccountNotFound)
}

func TestInboxRepository(t *testing.T) {
	repo := NewInboxRepository(createTestDB(t), 2)
	ctx := context.Background()

	notes, unread, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.False(t, unread)

	note := func(id string, status entity.OrderStatus, at time.Time) entity.Notification {
		return entity.Notification{ID: id, OrderID: "ORDER_" + id, Status: status, Message: "Order #ORDER_" + id + " is now " + string(status) + "!", CreatedAt: at}
	}

	require.NoError(t, repo.Add(ctx, "u1", []entity.Notification{
		note("o1", entity.OrderStatusReady, baseTime),
		note("o2", entity.OrderStatusCancelled, baseTime.Add(time.Minute)),
	}))
	// Re-deriving o1 replaces its entry; o3 pushes the oldest entry out.
	require.NoError(t, repo.Add(ctx, "u1", []entity.Notification{
		note("o1", entity.OrderStatusReady, baseTime.Add(2*time.Minute)),
		note("o3", entity.OrderStatusReady, baseTime.Add(2*time.Minute)),
	}))

	notes, unread, err = repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, unread)
	require.Len(t, notes, 2)
	assert.Equal(t, "o1", notes[0].ID)
	assert.Equal(t, "o3", notes[1].ID)

	require.NoError(t, repo.MarkRead(ctx, "u1"))
	_, unread, err = repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, unread)

	other, _, err := repo.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.Clear(ctx, "u1"))
	notes, unread, err = repo.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.False(t, unread)
}
