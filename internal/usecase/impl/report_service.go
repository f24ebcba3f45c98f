package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"
	"canteen/internal/usecase/analytics"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	engine *analytics.Engine
	logger *slog.Logger
	now    func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Orders repository.OrderRepository
	Users  repository.UserRepository
	Engine *analytics.Engine
	Logger *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		orders: params.Orders,
		users:  params.Users,
		engine: params.Engine,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard computes the dashboard over every order.
func (srv *reportService) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	orders, err := srv.orders.List(ctx, repository.NewQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	dashboard := srv.engine.Dashboard(ctx, orders, srv.now())

	return &dashboard, nil
}

// StreamDashboard recomputes the dashboard on every change to the Orders collection.
func (srv *reportService) StreamDashboard(ctx context.Context) live.Feed {
	sub := live.Open[*entity.Order](ctx, srv.orders, repository.NewQuery(), live.WithLogger[*entity.Order](srv.log(ctx)))

	return live.Project(sub, func(ctx context.Context, orders []*entity.Order) (*analytics.Dashboard, error) {
		dashboard := srv.engine.Dashboard(ctx, orders, srv.now())

		return &dashboard, nil
	})
}

// Payments computes the payments view over every order.
func (srv *reportService) Payments(ctx context.Context) (*usecase.PaymentsView, error) {
	orders, err := srv.orders.List(ctx, repository.NewQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return srv.payments(ctx, newNameLookup(srv.users), orders)
}

// StreamPayments follows the payments view.
func (srv *reportService) StreamPayments(ctx context.Context) live.Feed {
	names := newNameLookup(srv.users)
	sub := live.Open[*entity.Order](ctx, srv.orders, repository.NewQuery(), live.WithLogger[*entity.Order](srv.log(ctx)))

	return live.Project(sub, func(ctx context.Context, orders []*entity.Order) (*usecase.PaymentsView, error) {
		return srv.payments(ctx, names, orders)
	})
}

func (srv *reportService) payments(ctx context.Context, names *nameLookup, orders []*entity.Order) (*usecase.PaymentsView, error) {
	rows, err := orderRows(ctx, names, newestFirst(orders))
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentsView{
		Summary: srv.engine.Payments(orders),
		Rows:    rows,
	}, nil
}
