package impl

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"canteen/config"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	mockService "canteen/internal/mocks/service"
	"canteen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderCodePattern = regexp.MustCompile(`^ORDER_[0-9A-Z]{9}$`)

type orderServiceFixtures struct {
	service *orderService
	orders  *mockRepo.MockOrderRepository
	menu    *mockRepo.MockMenuRepository
	users   *mockRepo.MockUserRepository
	qrCode  *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		orders: mockRepo.NewMockOrderRepository(t),
		menu:   mockRepo.NewMockMenuRepository(t),
		users:  mockRepo.NewMockUserRepository(t),
		qrCode: mockService.NewMockQRCodeService(t),
	}
	srv := NewOrderService(OrderServiceParams{
		Orders: fx.orders,
		Menu:   fx.menu,
		Users:  fx.users,
		QRCode: fx.qrCode,
		Config: &config.Config{Canteen: &config.CanteenConfig{Timezone: "Asia/Kolkata"}},
		Logger: newDiscardLogger(),
	})
	fx.service = srv.(*orderService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func (fx orderServiceFixtures) expectMenu() {
	fx.menu.EXPECT().FindByID(mock.Anything, "m1").Return(&entity.MenuItem{ID: "m1", ItemName: "Masala Dosa", Price: 50}, nil).Once()
	fx.menu.EXPECT().FindByID(mock.Anything, "m2").Return(&entity.MenuItem{ID: "m2", ItemName: "Filter Coffee", Price: 40}, nil).Once()
}

func TestOrderService_PlaceOrder_SnapshotsMenu(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	fx.expectMenu()

	var stored *entity.Order
	fx.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = "o1"
			stored = order
		}).Return(nil).Once()

	order, err := fx.service.PlaceOrder(ctx, usecase.Actor{UID: "u1"}, &usecase.PlaceOrderInput{
		Items: []usecase.CartLine{
			{MenuItemID: "m1", Quantity: 2},
			{MenuItemID: "m2", Quantity: 1},
			{MenuItemID: "m1", Quantity: 1},
		},
		PaymentMethod: entity.PaymentMethodGPay,
		ScheduleAt:    "12:30",
		Notes:         " less spicy ",
	})

	require.NoError(t, err)
	assert.Same(t, stored, order)
	assert.Regexp(t, orderCodePattern, order.OrderID)
	assert.Equal(t, []entity.OrderItem{
		{Name: "Masala Dosa", Quantity: 3, Price: 50},
		{Name: "Filter Coffee", Quantity: 1, Price: 40},
	}, order.Items)
	assert.InDelta(t, 190.0, order.Amount, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.IsNotified)
	assert.False(t, order.PaymentStatus)
	assert.Equal(t, fixedNow, order.Time)
	assert.Equal(t, "less spicy", order.Notes)
	require.NotNil(t, order.ScheduleLater)
	assert.Equal(t, time.Date(2024, time.June, 1, 7, 0, 0, 0, time.UTC), *order.ScheduleLater)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	actor := usecase.Actor{UID: "u1"}
	line := []usecase.CartLine{{MenuItemID: "m1", Quantity: 1}}

	_, err := fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{PaymentMethod: entity.PaymentMethodGPay})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)

	_, err = fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{Items: line, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{Items: line, PaymentMethod: entity.PaymentMethodGPay, ScheduleAt: "25:00"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSchedule)

	_, err = fx.service.PlaceOrder(ctx, actor, &usecase.PlaceOrderInput{
		Items:         []usecase.CartLine{{MenuItemID: "m1", Quantity: 0}},
		PaymentMethod: entity.PaymentMethodGPay,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_UnknownMenuItem(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.menu.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrMenuItemNotFound).Once()

	_, err := fx.service.PlaceOrder(ctx, usecase.Actor{UID: "u1"}, &usecase.PlaceOrderInput{
		Items:         []usecase.CartLine{{MenuItemID: "gone", Quantity: 1}},
		PaymentMethod: entity.PaymentMethodOther,
	})

	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestOrderService_PlaceOrder_ConcurrentDuplicatesShareOneWrite(t *testing.T) {
	fx := createTestOrderService(t)
	fx.expectMenu()

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.orders.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = "o1"
			close(entered)
			<-release
		}).Return(nil).Once()

	input := &usecase.PlaceOrderInput{
		Items:          []usecase.CartLine{{MenuItemID: "m1", Quantity: 1}, {MenuItemID: "m2", Quantity: 1}},
		PaymentMethod:  entity.PaymentMethodPaytm,
		IdempotencyKey: "k1",
	}

	var wg sync.WaitGroup
	results := make([]*entity.Order, 2)
	place := func(i int) {
		defer wg.Done()
		order, err := fx.service.PlaceOrder(context.Background(), usecase.Actor{UID: "u1"}, input)
		assert.NoError(t, err)
		results[i] = order
	}

	wg.Add(2)
	go place(0)
	<-entered
	go place(1)
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NotNil(t, results[0])
	assert.Same(t, results[0], results[1])
}

func TestOrderService_MyOrders_SplitNewestFirst(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	q := repository.NewQuery().Where(repository.FieldOrderUserID, repository.OpEqual, "u1")

	fx.orders.EXPECT().List(ctx, q).Return([]*entity.Order{
		{ID: "o1", Status: entity.OrderStatusReady, Time: fixedNow.Add(-3 * time.Hour)},
		{ID: "o2", Status: entity.OrderStatusPending, Time: fixedNow.Add(-2 * time.Hour)},
		{ID: "o3", Status: entity.OrderStatusCancelled, Time: fixedNow.Add(-1 * time.Hour)},
		{ID: "o4", Status: entity.OrderStatusPending, Time: fixedNow},
	}, nil).Once()

	mine, err := fx.service.MyOrders(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, mine.Pending, 2)
	require.Len(t, mine.Past, 2)
	assert.Equal(t, "o4", mine.Pending[0].ID)
	assert.Equal(t, "o3", mine.Past[0].ID)
}

func TestOrderService_PendingQueue(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	early := fixedNow.Add(2 * time.Hour)
	late := fixedNow.Add(4 * time.Hour)
	q := repository.NewQuery().Where(repository.FieldOrderStatus, repository.OpEqual, entity.OrderStatusPending)

	fx.orders.EXPECT().List(ctx, q).Return([]*entity.Order{
		{ID: "o1", UserID: "u1", Time: fixedNow.Add(-time.Minute)},
		{ID: "o2", UserID: "u2", Time: fixedNow.Add(-2 * time.Minute), ScheduleLater: &late},
		{ID: "o3", UserID: "u1", Time: fixedNow.Add(-3 * time.Minute), ScheduleLater: &early},
		{ID: "o4", UserID: "ghost-user", Time: fixedNow.Add(-4 * time.Minute)},
	}, nil).Once()
	fx.users.EXPECT().FindByIDs(ctx, []string{"u1", "u2", "ghost-user"}).Return(map[string]*entity.UserProfile{
		"u1": {ID: "u1", Name: "Asha"},
		"u2": {ID: "u2", Name: "Ravi"},
	}, nil).Once()

	queue, err := fx.service.PendingQueue(ctx)

	require.NoError(t, err)
	require.Len(t, queue.Now, 2)
	require.Len(t, queue.Scheduled, 2)
	assert.Equal(t, "o4", queue.Now[0].ID)
	assert.Equal(t, "ghost-...", queue.Now[0].CustomerName)
	assert.Equal(t, "Asha", queue.Now[1].CustomerName)
	assert.Equal(t, "o3", queue.Scheduled[0].ID)
	assert.Equal(t, "Ravi", queue.Scheduled[1].CustomerName)
}

func TestOrderService_Transitions(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orders.EXPECT().UpdateStatus(ctx, "o1", entity.OrderStatusReady).
		Return(&entity.Order{ID: "o1", Status: entity.OrderStatusReady, PaymentStatus: true}, nil).Once()
	fx.orders.EXPECT().UpdateStatus(ctx, "o2", entity.OrderStatusCancelled).Return(nil, repository.ErrOrderStatusConflict).Once()
	fx.orders.EXPECT().UpdateStatus(ctx, "o3", entity.OrderStatusCancelled).Return(nil, repository.ErrOrderNotFound).Once()

	order, err := fx.service.MarkReady(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, order.PaymentStatus)

	_, err = fx.service.Cancel(ctx, "o2")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = fx.service.Cancel(ctx, "o3")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_SetPaymentStatus(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orders.EXPECT().SetPaymentStatus(ctx, "o1", true).Return(nil).Once()

	assert.NoError(t, fx.service.SetPaymentStatus(ctx, "o1", true))
}

func TestOrderService_PickupQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1", OrderID: "ORDER_ABC123XYZ", UserID: "u1"}

	fx.orders.EXPECT().FindByID(ctx, "o1").Return(order, nil).Times(3)
	fx.qrCode.EXPECT().GeneratePickupQR("ORDER_ABC123XYZ").Return([]byte("png"), nil).Twice()

	png, err := fx.service.PickupQR(ctx, usecase.Actor{UID: "u1"}, "o1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.PickupQR(ctx, usecase.Actor{UID: "a1", Admin: true}, "o1")
	require.NoError(t, err)

	_, err = fx.service.PickupQR(ctx, usecase.Actor{UID: "u2"}, "o1")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ScanPickup(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1", OrderID: "ORDER_ABC123XYZ", UserID: "u1"}
	byCode := repository.NewQuery().Where(repository.FieldOrderCode, repository.OpEqual, "ORDER_ABC123XYZ").WithLimit(1)

	fx.qrCode.EXPECT().ParsePickupQR("canteen:pickup:ORDER_ABC123XYZ").Return("ORDER_ABC123XYZ", nil).Twice()
	fx.orders.EXPECT().List(ctx, byCode).Return([]*entity.Order{order}, nil).Once()
	fx.users.EXPECT().FindByIDs(ctx, []string{"u1"}).Return(map[string]*entity.UserProfile{"u1": {ID: "u1", Name: "Asha"}}, nil).Once()

	row, err := fx.service.ScanPickup(ctx, "canteen:pickup:ORDER_ABC123XYZ")
	require.NoError(t, err)
	assert.Equal(t, "o1", row.ID)
	assert.Equal(t, "Asha", row.CustomerName)

	fx.orders.EXPECT().List(ctx, byCode).Return([]*entity.Order{}, nil).Once()
	_, err = fx.service.ScanPickup(ctx, "canteen:pickup:ORDER_ABC123XYZ")
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	fx.qrCode.EXPECT().ParsePickupQR("garbage").Return("", assert.AnError).Once()
	_, err = fx.service.ScanPickup(ctx, "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
