package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	mockRepo "canteen/internal/mocks/repository"
	mockService "canteen/internal/mocks/service"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)

type deriverFixtures struct {
	factory   *Factory
	orders    *mockRepo.MockOrderRepository
	inbox     *mockRepo.MockInboxRepository
	publisher *mockService.MockEventPublisher
	reg       *mockRepo.MockRegistration
	logs      *bytes.Buffer
	deliver   func([]*entity.Order)
	fail      func(error)
}

func createTestDeriver(t *testing.T) *deriverFixtures {
	logs := &bytes.Buffer{}
	fx := &deriverFixtures{
		orders:    mockRepo.NewMockOrderRepository(t),
		inbox:     mockRepo.NewMockInboxRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
		reg:       mockRepo.NewMockRegistration(t),
		logs:      logs,
	}
	fx.factory = NewFactory(FactoryParams{
		Orders:    fx.orders,
		Inbox:     fx.inbox,
		Publisher: fx.publisher,
		Logger:    slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	fx.factory.now = func() time.Time { return fixedNow }

	return fx
}

func (fx *deriverFixtures) expectWatch(uid string) {
	fx.orders.EXPECT().
		Watch(mock.Anything, Query(uid), mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ repository.Query, onSnapshot func([]*entity.Order), onError func(error)) (repository.Registration, error) {
			fx.deliver = onSnapshot
			fx.fail = onError

			return fx.reg, nil
		}).
		Once()
}

func terminalOrder(id, code string, status entity.OrderStatus) *entity.Order {
	return &entity.Order{ID: id, OrderID: code, UserID: "u1", Status: status}
}

func TestQuery(t *testing.T) {
	q := Query("u1")

	require.Len(t, q.Filters, 3)
	assert.Equal(t, repository.Filter{Field: repository.FieldOrderUserID, Op: repository.OpEqual, Value: "u1"}, q.Filters[0])
	assert.Equal(t, repository.OpIn, q.Filters[1].Op)
	assert.ElementsMatch(t, []entity.OrderStatus{entity.OrderStatusReady, entity.OrderStatusCancelled}, q.Filters[1].Value)
	assert.Equal(t, repository.Filter{Field: repository.FieldOrderIsNotified, Op: repository.OpEqual, Value: false}, q.Filters[2])
}

func TestDeriver_OneNotificationPerOrderAndOneBatchedWrite(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	var stored []entity.Notification
	fx.inbox.EXPECT().
		Add(mock.Anything, "u1", mock.Anything).
		Run(func(_ context.Context, _ string, notes []entity.Notification) { stored = notes }).
		Return(nil).
		Once()
	fx.orders.EXPECT().
		MarkAnnounced(mock.Anything, []string{"o1", "o2"}).
		Return(nil).
		Once()
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.AnythingOfType("*service.NotificationEvent")).
		Return(nil).
		Times(2)

	notified := 0
	d := fx.factory.New("u1", func() { notified++ })
	require.NoError(t, d.Start(context.Background()))
	defer func() {
		fx.reg.EXPECT().Remove().Return().Once()
		d.Stop()
	}()

	fx.deliver([]*entity.Order{
		terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady),
		terminalOrder("o2", "ORDER_BBB", entity.OrderStatusCancelled),
		terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady),
		{ID: "o3", Status: entity.OrderStatusPending},
		{ID: "o4", Status: entity.OrderStatusReady, IsNotified: true},
	})

	require.Len(t, stored, 2)
	assert.Equal(t, "o1", stored[0].ID)
	assert.Equal(t, "Order #ORDER_AAA is now ready!", stored[0].Message)
	assert.Equal(t, "Order #ORDER_BBB is now cancelled!", stored[1].Message)
	assert.Equal(t, fixedNow, stored[1].CreatedAt)
	assert.Equal(t, 1, notified)
	assert.Equal(t, live.StateReady, d.State())
}

func TestDeriver_EmptySnapshotDoesNothing(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	notified := 0
	d := fx.factory.New("u1", func() { notified++ })
	require.NoError(t, d.Start(context.Background()))

	fx.deliver(nil)

	assert.Zero(t, notified)
	assert.Equal(t, live.StateReady, d.State())

	fx.reg.EXPECT().Remove().Return().Once()
	d.Stop()
}

func TestDeriver_AnnounceFailureKeepsNotifications(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	fx.inbox.EXPECT().Add(mock.Anything, "u1", mock.Anything).Return(nil).Once()
	fx.orders.EXPECT().
		MarkAnnounced(mock.Anything, []string{"o1"}).
		Return(errors.New("deadline exceeded")).
		Once()
	fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Once()

	notified := 0
	d := fx.factory.New("u1", func() { notified++ })
	require.NoError(t, d.Start(context.Background()))

	fx.deliver([]*entity.Order{terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady)})

	assert.Equal(t, 1, notified)
	assert.Contains(t, fx.logs.String(), "Notifications surfaced but orders not marked announced")
	assert.Contains(t, fx.logs.String(), "deadline exceeded")

	fx.reg.EXPECT().Remove().Return().Once()
	d.Stop()
}

func TestDeriver_InboxFailureLeavesOrderUnannounced(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	fx.inbox.EXPECT().
		Add(mock.Anything, "u1", mock.Anything).
		Return(errors.New("redis down")).
		Once()

	notified := 0
	d := fx.factory.New("u1", func() { notified++ })
	require.NoError(t, d.Start(context.Background()))

	fx.deliver([]*entity.Order{terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady)})

	fx.orders.AssertNotCalled(t, "MarkAnnounced", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishNotificationEvent", mock.Anything, mock.Anything)
	assert.Zero(t, notified)
	assert.Contains(t, fx.logs.String(), "Failed to store notifications, orders left unannounced")
	assert.Contains(t, fx.logs.String(), "redis down")

	// A later snapshot still carrying the order retries it.
	fx.inbox.EXPECT().Add(mock.Anything, "u1", mock.Anything).Return(nil).Once()
	fx.orders.EXPECT().MarkAnnounced(mock.Anything, []string{"o1"}).Return(nil).Once()
	fx.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil).Once()

	fx.deliver([]*entity.Order{terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady)})

	assert.Equal(t, 1, notified)

	fx.reg.EXPECT().Remove().Return().Once()
	d.Stop()
}

func TestDeriver_PublishFailureIsLogged(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	fx.inbox.EXPECT().Add(mock.Anything, "u1", mock.Anything).Return(nil).Once()
	fx.orders.EXPECT().MarkAnnounced(mock.Anything, []string{"o1"}).Return(nil).Once()
	fx.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event *service.NotificationEvent) error {
			assert.Equal(t, "u1", event.UserID)
			assert.Equal(t, "ORDER_AAA", event.OrderID)
			assert.Equal(t, "ready", event.Status)

			return errors.New("topic not found")
		}).
		Once()

	d := fx.factory.New("u1", nil)
	require.NoError(t, d.Start(context.Background()))

	fx.deliver([]*entity.Order{terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady)})

	assert.Contains(t, fx.logs.String(), "Failed to publish notification event")

	fx.reg.EXPECT().Remove().Return().Once()
	d.Stop()
}

func TestDeriver_StopWithdrawsSubscription(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	notified := 0
	d := fx.factory.New("u1", func() { notified++ })
	require.NoError(t, d.Start(context.Background()))
	require.NoError(t, d.Start(context.Background()), "second start is a no-op")

	fx.reg.EXPECT().Remove().Return().Once()
	d.Stop()
	d.Stop()

	// A late delivery must not reach the inbox, the store or the callback.
	fx.deliver([]*entity.Order{terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady)})
	fx.fail(errors.New("late"))

	assert.Zero(t, notified)
	assert.Equal(t, live.StateClosed, d.State())
}

func TestDeriver_StartFailure(t *testing.T) {
	fx := createTestDeriver(t)
	fx.orders.EXPECT().
		Watch(mock.Anything, Query("u1"), mock.Anything, mock.Anything).
		Return(nil, errors.New("permission denied")).
		Once()

	d := fx.factory.New("u1", nil)
	err := d.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, live.StateClosed, d.State())
	d.Stop()
}

func TestDeriver_MidStreamErrorIsTerminal(t *testing.T) {
	fx := createTestDeriver(t)
	fx.expectWatch("u1")

	d := fx.factory.New("u1", nil)
	require.NoError(t, d.Start(context.Background()))

	fx.fail(errors.New("unavailable"))
	fx.deliver([]*entity.Order{terminalOrder("o1", "ORDER_AAA", entity.OrderStatusReady)})

	assert.Equal(t, live.StateFailed, d.State())

	fx.reg.EXPECT().Remove().Return().Once()
	d.Stop()
}
