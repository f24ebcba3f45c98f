package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"
	"canteen/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	orderCodeLength = 9
	maxNotesLength  = 500
	scheduleLayout  = "15:04"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders   repository.OrderRepository
	menu     repository.MenuRepository
	users    repository.UserRepository
	qrCode   service.QRCodeService
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time

	inflight singleflight.Group
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Orders repository.OrderRepository
	Menu   repository.MenuRepository
	Users  repository.UserRepository
	QRCode service.QRCodeService
	Config *config.Config
	Logger *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	var canteen *config.CanteenConfig
	if params.Config != nil {
		canteen = params.Config.Canteen
	}

	return &orderService{
		orders:   params.Orders,
		menu:     params.Menu,
		users:    params.Users,
		qrCode:   params.QRCode,
		location: canteen.Location(),
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the cart, copies names and prices from the menu and stores a pending order.
// Identical submissions in flight at the same time share one write.
func (srv *orderService) PlaceOrder(ctx context.Context, actor usecase.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	v, err, shared := srv.inflight.Do(submissionKey(actor.UID, input), func() (any, error) {
		return srv.placeOrder(ctx, actor, input)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		srv.log(ctx).Info("Duplicate checkout joined an in-flight order", slog.String("uid", actor.UID))
	}

	order, _ := v.(*entity.Order)

	return order, nil
}

func (srv *orderService) placeOrder(ctx context.Context, actor usecase.Actor, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported payment method")
	}
	notes := strings.TrimSpace(input.Notes)
	if len(notes) > maxNotesLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notes are too long")
	}

	now := srv.now()
	scheduled, err := srv.parseSchedule(input.ScheduleAt, now)
	if err != nil {
		return nil, err
	}

	items, amount, err := srv.snapshotItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	suffix, err := util.RandomBase36(orderCodeLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order code")
	}

	order := &entity.Order{
		OrderID:       entity.OrderCodePrefix + suffix,
		Items:         items,
		UserID:        actor.UID,
		Amount:        amount,
		PaymentMethod: input.PaymentMethod,
		ScheduleLater: scheduled,
		Status:        entity.OrderStatusPending,
		Time:          now.UTC(),
		Notes:         notes,
	}
	if err := srv.orders.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}
	srv.log(ctx).Info("Order placed",
		slog.String("uid", actor.UID),
		slog.String("orderId", order.OrderID),
		slog.Float64("amount", order.Amount),
	)

	return order, nil
}

// snapshotItems merges repeated lines and copies the current name and price of each menu item.
func (srv *orderService) snapshotItems(ctx context.Context, lines []usecase.CartLine) ([]entity.OrderItem, float64, error) {
	quantities := make(map[string]int, len(lines))
	var ids []string
	for _, line := range lines {
		if line.MenuItemID == "" || line.Quantity < 1 {
			return nil, 0, domainerrors.ErrValidationFailed.WithDetails("every cart line needs a menu item and a quantity of at least 1")
		}
		if _, ok := quantities[line.MenuItemID]; !ok {
			ids = append(ids, line.MenuItemID)
		}
		quantities[line.MenuItemID] += line.Quantity
	}

	items := make([]entity.OrderItem, 0, len(ids))
	var amount float64
	for _, id := range ids {
		menuItem, err := srv.menu.FindByID(ctx, id)
		if err != nil {
			return nil, 0, mapMenuError(err, "failed to load menu item")
		}
		item := entity.OrderItem{Name: menuItem.ItemName, Quantity: quantities[id], Price: menuItem.Price}
		items = append(items, item)
		amount += item.Subtotal()
	}

	return items, amount, nil
}

// parseSchedule reads an HH:MM pickup time for today in the canteen time zone.
func (srv *orderService) parseSchedule(value string, now time.Time) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	clock, err := time.Parse(scheduleLayout, value)
	if err != nil {
		return nil, domainerrors.ErrInvalidSchedule
	}

	local := now.In(srv.location)
	at := time.Date(local.Year(), local.Month(), local.Day(), clock.Hour(), clock.Minute(), 0, 0, srv.location).UTC()

	return &at, nil
}

// MyOrders returns the caller's orders split into pending and past.
func (srv *orderService) MyOrders(ctx context.Context, uid string) (*usecase.MyOrders, error) {
	orders, err := srv.orders.List(ctx, myOrdersQuery(uid))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return splitMyOrders(orders), nil
}

// StreamMyOrders follows the caller's orders.
func (srv *orderService) StreamMyOrders(ctx context.Context, uid string) live.Feed {
	sub := live.Open[*entity.Order](ctx, srv.orders, myOrdersQuery(uid), live.WithLogger[*entity.Order](srv.log(ctx)))

	return live.Project(sub, func(_ context.Context, orders []*entity.Order) (*usecase.MyOrders, error) {
		return splitMyOrders(orders), nil
	})
}

// PickupQR renders the pickup code of an order the actor may see.
func (srv *orderService) PickupQR(ctx context.Context, actor usecase.Actor, orderID string) ([]byte, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UID && !actor.Admin {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order belongs to another user")
	}

	png, err := srv.qrCode.GeneratePickupQR(order.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// ScanPickup looks up the order behind a scanned pickup code.
func (srv *orderService) ScanPickup(ctx context.Context, qrData string) (*usecase.OrderRow, error) {
	code, err := srv.qrCode.ParsePickupQR(qrData)
	if err != nil {
		srv.log(ctx).Debug("Rejected pickup code", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails("unrecognized pickup code")
	}

	orders, err := srv.orders.List(ctx, repository.NewQuery().
		Where(repository.FieldOrderCode, repository.OpEqual, code).
		WithLimit(1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by code")
	}
	if len(orders) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotFound, "no order with code %s", code)
	}

	rows, err := orderRows(ctx, newNameLookup(srv.users), orders)
	if err != nil {
		return nil, err
	}

	return rows[0], nil
}

// PendingQueue returns the kitchen queue.
func (srv *orderService) PendingQueue(ctx context.Context) (*usecase.PendingQueue, error) {
	orders, err := srv.orders.List(ctx, pendingQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending orders")
	}

	return buildPendingQueue(ctx, newNameLookup(srv.users), orders)
}

// StreamPendingQueue follows the kitchen queue.
func (srv *orderService) StreamPendingQueue(ctx context.Context) live.Feed {
	names := newNameLookup(srv.users)
	sub := live.Open[*entity.Order](ctx, srv.orders, pendingQuery(), live.WithLogger[*entity.Order](srv.log(ctx)))

	return live.Project(sub, func(ctx context.Context, orders []*entity.Order) (*usecase.PendingQueue, error) {
		return buildPendingQueue(ctx, names, orders)
	})
}

// MarkReady finishes a pending order.
func (srv *orderService) MarkReady(ctx context.Context, orderID string) (*entity.Order, error) {
	return srv.transition(ctx, orderID, entity.OrderStatusReady)
}

// Cancel cancels a pending order.
func (srv *orderService) Cancel(ctx context.Context, orderID string) (*entity.Order, error) {
	return srv.transition(ctx, orderID, entity.OrderStatusCancelled)
}

func (srv *orderService) transition(ctx context.Context, orderID string, next entity.OrderStatus) (*entity.Order, error) {
	order, err := srv.orders.UpdateStatus(ctx, orderID, next)
	if err != nil {
		return nil, mapOrderError(err, fmt.Sprintf("failed to mark order %s", next))
	}
	srv.log(ctx).Info("Order status changed", slog.String("id", orderID), slog.String("status", next.String()))

	return order, nil
}

// SetPaymentStatus toggles the manual payment flag.
func (srv *orderService) SetPaymentStatus(ctx context.Context, orderID string, paid bool) error {
	if err := srv.orders.SetPaymentStatus(ctx, orderID, paid); err != nil {
		return mapOrderError(err, "failed to set payment status")
	}

	return nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, "failed to find order")
	}

	return order, nil
}

func myOrdersQuery(uid string) repository.Query {
	return repository.NewQuery().Where(repository.FieldOrderUserID, repository.OpEqual, uid)
}

func pendingQuery() repository.Query {
	return repository.NewQuery().Where(repository.FieldOrderStatus, repository.OpEqual, entity.OrderStatusPending)
}

func splitMyOrders(orders []*entity.Order) *usecase.MyOrders {
	out := &usecase.MyOrders{Pending: []*entity.Order{}, Past: []*entity.Order{}}
	for _, order := range newestFirst(orders) {
		if order.Status == entity.OrderStatusPending {
			out.Pending = append(out.Pending, order)
		} else {
			out.Past = append(out.Past, order)
		}
	}

	return out
}

// buildPendingQueue puts unscheduled orders first-come first-served and scheduled orders by pickup time.
func buildPendingQueue(ctx context.Context, names *nameLookup, orders []*entity.Order) (*usecase.PendingQueue, error) {
	rows, err := orderRows(ctx, names, orders)
	if err != nil {
		return nil, err
	}

	queue := &usecase.PendingQueue{Now: []*usecase.OrderRow{}, Scheduled: []*usecase.OrderRow{}}
	for _, row := range rows {
		if row.ScheduleLater != nil {
			queue.Scheduled = append(queue.Scheduled, row)
		} else {
			queue.Now = append(queue.Now, row)
		}
	}
	slices.SortStableFunc(queue.Now, func(a, b *usecase.OrderRow) int {
		return cmp.Or(a.Time.Compare(b.Time), cmp.Compare(a.ID, b.ID))
	})
	slices.SortStableFunc(queue.Scheduled, func(a, b *usecase.OrderRow) int {
		return cmp.Or(a.ScheduleLater.Compare(*b.ScheduleLater), cmp.Compare(a.ID, b.ID))
	})

	return queue, nil
}

func orderRows(ctx context.Context, names *nameLookup, orders []*entity.Order) ([]*usecase.OrderRow, error) {
	uids := make([]string, 0, len(orders))
	for _, order := range orders {
		uids = append(uids, order.UserID)
	}
	resolved, err := names.Resolve(ctx, uids)
	if err != nil {
		return nil, err
	}

	rows := make([]*usecase.OrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, &usecase.OrderRow{Order: order, CustomerName: resolved[order.UserID]})
	}

	return rows, nil
}

func newestFirst(orders []*entity.Order) []*entity.Order {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *entity.Order) int {
		return cmp.Or(b.Time.Compare(a.Time), cmp.Compare(a.ID, b.ID))
	})

	return sorted
}

func submissionKey(uid string, input *usecase.PlaceOrderInput) string {
	if input.IdempotencyKey != "" {
		return uid + "|key|" + input.IdempotencyKey
	}

	var sb strings.Builder
	sb.WriteString(uid)
	sb.WriteString("|cart|")
	for _, line := range input.Items {
		fmt.Fprintf(&sb, "%s*%d,", line.MenuItemID, line.Quantity)
	}
	fmt.Fprintf(&sb, "|%s|%s|%s", input.PaymentMethod, input.ScheduleAt, input.Notes)

	return sb.String()
}

func mapOrderError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return errors.Wrap(domainerrors.ErrOrderNotFound, msg)
	case errors.Is(err, repository.ErrOrderStatusConflict):
		return errors.Wrap(domainerrors.ErrInvalidTransition, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
