package impl

import (
	"context"
	"log/slog"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"
	"canteen/internal/usecase/session"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	inbox  repository.InboxRepository
	logger *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Inbox  repository.InboxRepository
	Logger *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		inbox:  params.Inbox,
		logger: params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Inbox returns the notifications surfaced for the session.
func (srv *notificationService) Inbox(ctx context.Context, s *session.Session) (*usecase.Inbox, error) {
	items, unread, err := srv.inbox.List(ctx, s.UID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}
	if items == nil {
		items = []entity.Notification{}
	}

	return &usecase.Inbox{
		Items:   items,
		Unread:  unread,
		Deriver: s.DeriverState().String(),
	}, nil
}

// MarkRead acknowledges every notification of the session.
func (srv *notificationService) MarkRead(ctx context.Context, s *session.Session) error {
	if err := srv.inbox.MarkRead(ctx, s.UID()); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}
	srv.log(ctx).Debug("Notifications acknowledged", slog.String("uid", s.UID()))
	s.Changed().Notify()

	return nil
}

// StreamInbox re-renders the inbox whenever the session signals a change.
func (srv *notificationService) StreamInbox(_ context.Context, s *session.Session) live.Feed {
	return live.FromSignal(s.Changed(), func(ctx context.Context) (any, error) {
		return srv.Inbox(ctx, s)
	})
}
