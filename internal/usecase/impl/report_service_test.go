package impl

import (
	"context"
	"testing"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"
	"canteen/internal/usecase"
	"canteen/internal/usecase/analytics"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service *reportService
	orders  *mockRepo.MockOrderRepository
	users   *mockRepo.MockUserRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	fx := reportServiceFixtures{
		orders: mockRepo.NewMockOrderRepository(t),
		users:  mockRepo.NewMockUserRepository(t),
	}
	srv := NewReportService(ReportServiceParams{
		Orders: fx.orders,
		Users:  fx.users,
		Engine: analytics.NewEngine(nil, newDiscardLogger()),
		Logger: newDiscardLogger(),
	})
	fx.service = srv.(*reportService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

func reportOrders() []*entity.Order {
	return []*entity.Order{
		{ID: "o1", UserID: "u1", Status: entity.OrderStatusReady, Amount: 100, Time: fixedNow.Add(-48 * time.Hour),
			Items: []entity.OrderItem{{Name: "Dosa", Quantity: 2, Price: 50}}},
		{ID: "o2", UserID: "u2", Status: entity.OrderStatusReady, Amount: 40, Time: fixedNow.Add(-time.Hour),
			Items: []entity.OrderItem{{Name: "Coffee", Quantity: 1, Price: 40}}},
		{ID: "o3", UserID: "u1", Status: entity.OrderStatusPending, Amount: 60, Time: fixedNow},
	}
}

func TestReportService_Dashboard(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.orders.EXPECT().List(ctx, repository.NewQuery()).Return(reportOrders(), nil).Once()

	dashboard, err := fx.service.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, []analytics.ItemCount{{Name: "Dosa", Quantity: 2}, {Name: "Coffee", Quantity: 1}}, dashboard.TopItems)
	assert.Equal(t, 1, dashboard.Statuses.Pending)
	assert.Equal(t, 2, dashboard.Statuses.Ready)
	require.Len(t, dashboard.Trend, 2)
}

func TestReportService_Dashboard_ListFailure(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.orders.EXPECT().List(ctx, repository.NewQuery()).Return(nil, errors.New("unavailable")).Once()

	_, err := fx.service.Dashboard(ctx)

	assert.Error(t, err)
}

func TestReportService_StreamPayments(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	reg := mockRepo.NewMockRegistration(t)
	var deliver func([]*entity.Order)

	fx.orders.EXPECT().Watch(mock.Anything, repository.NewQuery(), mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ repository.Query, onSnapshot func([]*entity.Order), _ func(error)) (repository.Registration, error) {
			deliver = onSnapshot

			return reg, nil
		}).Once()
	fx.users.EXPECT().FindByIDs(mock.Anything, []string{"u1", "u2"}).
		Return(map[string]*entity.UserProfile{"u1": {ID: "u1", Name: "Asha"}}, nil).Once()
	reg.EXPECT().Remove().Return().Once()

	feed := fx.service.StreamPayments(ctx)
	defer feed.Close()

	deliver(reportOrders())
	frame := feed.Frame(ctx)
	require.Equal(t, live.StateReady, frame.State)
	view, ok := frame.Data.(*usecase.PaymentsView)
	require.True(t, ok)
	assert.InDelta(t, 140.0, view.Summary.TotalRevenue, 1e-9)
	assert.Equal(t, 1, view.Summary.PendingCount)
	assert.Equal(t, 3, view.Summary.TotalTransactions)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, "o3", view.Rows[0].ID)
	assert.Equal(t, "Asha", view.Rows[0].CustomerName)
	assert.Equal(t, "u2...", view.Rows[1].CustomerName)

	// Names are cached for the lifetime of the stream.
	deliver(reportOrders())
	assert.Equal(t, live.StateReady, feed.Frame(ctx).State)
}
