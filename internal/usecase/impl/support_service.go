package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"
	"canteen/internal/usecase/live"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxSubjectLength = 200
	maxMessageLength = 2000
)

// supportService implements the SupportUsecase interface.
type supportService struct {
	tickets   repository.TicketRepository
	orders    repository.OrderRepository
	users     repository.UserRepository
	sanitizer service.Sanitizer
	logger    *slog.Logger
	now       func() time.Time
}

// SupportServiceParams holds dependencies for SupportService, injected by Fx.
type SupportServiceParams struct {
	fx.In

	Tickets   repository.TicketRepository
	Orders    repository.OrderRepository
	Users     repository.UserRepository
	Sanitizer service.Sanitizer
	Logger    *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(params SupportServiceParams) usecase.SupportUsecase {
	return &supportService{
		tickets:   params.Tickets,
		orders:    params.Orders,
		users:     params.Users,
		sanitizer: params.Sanitizer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *supportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EligibleOrders lists the orders a ticket may refer to.
func (srv *supportService) EligibleOrders(ctx context.Context, uid string) ([]*entity.Order, error) {
	q := repository.NewQuery().
		Where(repository.FieldOrderUserID, repository.OpEqual, uid).
		Where(repository.FieldOrderStatus, repository.OpIn, entity.TerminalOrderStatuses()).
		OrderBy(repository.FieldOrderTime, repository.Descending)

	orders, err := srv.orders.List(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list eligible orders")
	}

	return orders, nil
}

// CreateTicket opens a ticket whose first message is the description.
func (srv *supportService) CreateTicket(ctx context.Context, actor usecase.Actor, input *usecase.CreateTicketInput) (*entity.Ticket, error) {
	subject := srv.clean(input.Subject)
	description := srv.clean(input.Description)
	if subject == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject and description are required")
	}
	if len(subject) > maxSubjectLength || len(description) > maxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subject or description is too long")
	}
	if !input.Area.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown support area")
	}

	if input.OrderID != "" {
		if err := srv.checkEligible(ctx, actor.UID, input.OrderID); err != nil {
			return nil, err
		}
	}

	now := srv.now().UTC()
	ticket := &entity.Ticket{
		UserID:   actor.UID,
		UserName: actor.Name,
		Subject:  subject,
		Area:     input.Area,
		OrderID:  input.OrderID,
		Status:   entity.TicketStatusOpen,
		Messages: []entity.TicketMessage{{
			SenderID:   actor.UID,
			SenderName: actor.Name,
			Text:       description,
			Timestamp:  now,
		}},
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := srv.tickets.Create(ctx, ticket); err != nil {
		return nil, errors.Wrap(err, "failed to create ticket")
	}
	srv.log(ctx).Info("Support ticket created", slog.String("id", ticket.ID), slog.String("uid", actor.UID))

	return ticket, nil
}

func (srv *supportService) checkEligible(ctx context.Context, uid, orderCode string) error {
	orders, err := srv.EligibleOrders(ctx, uid)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if order.OrderID == orderCode {
			return nil
		}
	}

	return domainerrors.ErrTicketOrderIneligible
}

// MyTickets lists the caller's tickets.
func (srv *supportService) MyTickets(ctx context.Context, uid string) ([]*entity.Ticket, error) {
	tickets, err := srv.tickets.List(ctx, myTicketsQuery(uid))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return byLastActivity(tickets), nil
}

// StreamMyTickets follows the caller's tickets.
func (srv *supportService) StreamMyTickets(ctx context.Context, uid string) live.Feed {
	sub := live.Open[*entity.Ticket](ctx, srv.tickets, myTicketsQuery(uid), live.WithLogger[*entity.Ticket](srv.log(ctx)))

	return live.Project(sub, func(_ context.Context, tickets []*entity.Ticket) ([]*entity.Ticket, error) {
		return byLastActivity(tickets), nil
	})
}

// Reply appends a sanitized message to a ticket.
func (srv *supportService) Reply(ctx context.Context, actor usecase.Actor, ticketID, text string) (*entity.Ticket, error) {
	text = srv.clean(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}
	if len(text) > maxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is too long")
	}

	ticket, err := srv.findTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !actor.Admin {
		if ticket.UserID != actor.UID {
			return nil, errors.Wrap(domainerrors.ErrTicketNotFound, "ticket belongs to another user")
		}
		if ticket.Status == entity.TicketStatusResolved {
			return nil, domainerrors.ErrTicketResolved
		}
	}

	msg := entity.TicketMessage{
		SenderID:   actor.UID,
		SenderName: actor.Name,
		Text:       text,
		Timestamp:  srv.now().UTC(),
	}
	if err := srv.tickets.AppendMessage(ctx, ticketID, msg); err != nil {
		return nil, mapTicketError(err, "failed to append message")
	}

	return srv.findTicket(ctx, ticketID)
}

// AllTickets lists every ticket with the owners' current names.
func (srv *supportService) AllTickets(ctx context.Context) ([]*usecase.TicketRow, error) {
	tickets, err := srv.tickets.List(ctx, allTicketsQuery())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tickets")
	}

	return ticketRows(ctx, newNameLookup(srv.users), tickets)
}

// StreamAllTickets follows every ticket.
func (srv *supportService) StreamAllTickets(ctx context.Context) live.Feed {
	names := newNameLookup(srv.users)
	sub := live.Open[*entity.Ticket](ctx, srv.tickets, allTicketsQuery(), live.WithLogger[*entity.Ticket](srv.log(ctx)))

	return live.Project(sub, func(ctx context.Context, tickets []*entity.Ticket) ([]*usecase.TicketRow, error) {
		return ticketRows(ctx, names, tickets)
	})
}

// SetTicketStatus opens or resolves a ticket.
func (srv *supportService) SetTicketStatus(ctx context.Context, ticketID string, status entity.TicketStatus) (*entity.Ticket, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown ticket status")
	}

	if err := srv.tickets.SetStatus(ctx, ticketID, status, srv.now().UTC()); err != nil {
		return nil, mapTicketError(err, "failed to set ticket status")
	}
	srv.log(ctx).Info("Support ticket status changed", slog.String("id", ticketID), slog.String("status", string(status)))

	return srv.findTicket(ctx, ticketID)
}

func (srv *supportService) findTicket(ctx context.Context, id string) (*entity.Ticket, error) {
	ticket, err := srv.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, mapTicketError(err, "failed to find ticket")
	}

	return ticket, nil
}

func (srv *supportService) clean(text string) string {
	return strings.TrimSpace(srv.sanitizer.Sanitize(text))
}

func myTicketsQuery(uid string) repository.Query {
	return repository.NewQuery().
		Where(repository.FieldTicketUserID, repository.OpEqual, uid).
		OrderBy(repository.FieldTicketLastUpdatedAt, repository.Descending)
}

func allTicketsQuery() repository.Query {
	return repository.NewQuery().OrderBy(repository.FieldTicketLastUpdatedAt, repository.Descending)
}

func byLastActivity(tickets []*entity.Ticket) []*entity.Ticket {
	sorted := slices.Clone(tickets)
	slices.SortStableFunc(sorted, func(a, b *entity.Ticket) int {
		return cmp.Or(b.LastUpdatedAt.Compare(a.LastUpdatedAt), cmp.Compare(a.ID, b.ID))
	})

	return sorted
}

func ticketRows(ctx context.Context, names *nameLookup, tickets []*entity.Ticket) ([]*usecase.TicketRow, error) {
	sorted := byLastActivity(tickets)
	uids := make([]string, 0, len(sorted))
	for _, ticket := range sorted {
		uids = append(uids, ticket.UserID)
	}
	resolved, err := names.Resolve(ctx, uids)
	if err != nil {
		return nil, err
	}

	rows := make([]*usecase.TicketRow, 0, len(sorted))
	for _, ticket := range sorted {
		rows = append(rows, &usecase.TicketRow{Ticket: ticket, CustomerName: resolved[ticket.UserID]})
	}

	return rows, nil
}

func mapTicketError(err error, msg string) error {
	if errors.Is(err, repository.ErrTicketNotFound) {
		return errors.Wrap(domainerrors.ErrTicketNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
