// Package notify derives in-app notifications from a customer's orders reaching a terminal state.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/lifecycle"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase/live"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Query matches the orders of uid that reached a terminal state and were not announced yet.
func Query(uid string) repository.Query {
	return repository.NewQuery().
		Where(repository.FieldOrderUserID, repository.OpEqual, uid).
		Where(repository.FieldOrderStatus, repository.OpIn, entity.TerminalOrderStatuses()).
		Where(repository.FieldOrderIsNotified, repository.OpEqual, false)
}

// Factory builds one Deriver per customer session.
type Factory struct {
	orders    repository.OrderRepository
	inbox     repository.InboxRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// FactoryParams holds dependencies for Factory, injected by Fx.
type FactoryParams struct {
	fx.In

	Orders    repository.OrderRepository
	Inbox     repository.InboxRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewFactory creates a Factory.
func NewFactory(params FactoryParams) *Factory {
	return &Factory{
		orders:    params.Orders,
		inbox:     params.Inbox,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// New returns a stopped Deriver for uid. onNotify runs after each batch reached the inbox.
func (f *Factory) New(uid string, onNotify func()) *Deriver {
	return &Deriver{
		uid:       uid,
		orders:    f.orders,
		inbox:     f.inbox,
		publisher: f.publisher,
		logger:    f.logger.With(slog.String("uid", uid)),
		now:       f.now,
		onNotify:  onNotify,
	}
}

// Deriver watches one customer's unannounced terminal orders. For every snapshot it surfaces
// one notification per order, then marks all of them announced with a single batched write.
// A failed write leaves the notifications surfaced, so an order may be announced twice.
type Deriver struct {
	uid       string
	orders    repository.OrderRepository
	inbox     repository.InboxRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
	onNotify  func()

	mu     sync.Mutex
	sub    *live.Subscription[*entity.Order]
	cancel context.CancelFunc
}

// Start opens the live query. It is a no-op when the deriver already runs.
// The returned error reports a failed establishment; the deriver then stays stopped.
func (d *Deriver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sub != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := live.Open[*entity.Order](runCtx, d.orders, Query(d.uid),
		live.WithHandler(func(orders []*entity.Order) { d.handle(runCtx, orders) }),
		live.WithLogger[*entity.Order](d.logger),
	)
	if sub.State() == live.StateFailed {
		err := sub.Err()
		sub.Close()
		cancel()

		return err
	}
	d.sub, d.cancel = sub, cancel
	d.logger.Debug("Notification deriver started")

	return nil
}

// Stop withdraws the live query synchronously. It is idempotent.
func (d *Deriver) Stop() {
	d.mu.Lock()
	sub, cancel := d.sub, d.cancel
	d.sub, d.cancel = nil, nil
	d.mu.Unlock()

	if sub == nil {
		return
	}
	sub.Close()
	cancel()
	d.logger.Debug("Notification deriver stopped")
}

// State reports the state of the underlying subscription, StateClosed when stopped.
func (d *Deriver) State() live.State {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sub == nil {
		return live.StateClosed
	}

	return d.sub.State()
}

func (d *Deriver) handle(runCtx context.Context, orders []*entity.Order) {
	now := d.now()
	seen := make(map[string]struct{}, len(orders))
	notes := make([]entity.Notification, 0, len(orders))
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		if !order.NeedsAnnouncement() {
			continue
		}
		if _, dup := seen[order.ID]; dup {
			continue
		}
		seen[order.ID] = struct{}{}
		notes = append(notes, entity.NewOrderNotification(order, now))
		ids = append(ids, order.ID)
	}
	if len(notes) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(runCtx, lifecycle.DefaultTimeout)
	defer cancel()

	// Orders stay unannounced until their notifications are stored, so the next
	// snapshot derives them again.
	if err := d.inbox.Add(ctx, d.uid, notes); err != nil {
		d.logger.Error("Failed to store notifications, orders left unannounced",
			slog.Any("error", err),
			slog.Any("order_ids", ids),
		)

		return
	}

	if err := d.orders.MarkAnnounced(ctx, ids); err != nil {
		d.logger.Warn("Notifications surfaced but orders not marked announced",
			slog.Any("error", err),
			slog.Any("order_ids", ids),
		)
	}

	d.publish(ctx, notes)

	if d.onNotify != nil {
		d.onNotify()
	}
}

func (d *Deriver) publish(ctx context.Context, notes []entity.Notification) {
	if d.publisher == nil {
		return
	}

	requestID := uuid.New().String()
	for _, note := range notes {
		event := &service.NotificationEvent{
			RequestID:      requestID,
			NotificationID: note.ID,
			UserID:         d.uid,
			OrderID:        note.OrderID,
			Status:         note.Status.String(),
			Message:        note.Message,
		}
		if err := d.publisher.PublishNotificationEvent(ctx, event); err != nil {
			d.logger.Warn("Failed to publish notification event",
				slog.Any("error", err),
				slog.String("notification_id", note.ID),
			)
		}
	}
}
