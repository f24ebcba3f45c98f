package impl

import (
	"context"
	"strings"
	"testing"
	"time"

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

type supportServiceFixtures struct {
	service   *supportService
	tickets   *mockRepo.MockTicketRepository
	orders    *mockRepo.MockOrderRepository
	users     *mockRepo.MockUserRepository
	sanitizer *mockService.MockSanitizer
}

func createTestSupportService(t *testing.T) supportServiceFixtures {
	fx := supportServiceFixtures{
		tickets:   mockRepo.NewMockTicketRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
		users:     mockRepo.NewMockUserRepository(t),
		sanitizer: mockService.NewMockSanitizer(t),
	}
	srv := NewSupportService(SupportServiceParams{
		Tickets:   fx.tickets,
		Orders:    fx.orders,
		Users:     fx.users,
		Sanitizer: fx.sanitizer,
		Logger:    newDiscardLogger(),
	})
	fx.service = srv.(*supportService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.sanitizer.EXPECT().Sanitize(mock.Anything).RunAndReturn(func(text string) string {
		return strings.ReplaceAll(strings.ReplaceAll(text, "<b>", ""), "</b>", "")
	}).Maybe()

	return fx
}

func eligibleQuery(uid string) repository.Query {
	return repository.NewQuery().
		Where(repository.FieldOrderUserID, repository.OpEqual, uid).
		Where(repository.FieldOrderStatus, repository.OpIn, entity.TerminalOrderStatuses()).
		OrderBy(repository.FieldOrderTime, repository.Descending)
}

func TestSupportService_CreateTicket(t *testing.T) {
	fx := createTestSupportService(t)
	ctx := context.Background()
	actor := usecase.Actor{UID: "u1", Name: "Asha"}

	fx.orders.EXPECT().List(ctx, eligibleQuery("u1")).
		Return([]*entity.Order{{ID: "o1", OrderID: "ORDER_AAA", Status: entity.OrderStatusReady}}, nil).Once()
	fx.tickets.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Ticket")).
		Run(func(_ context.Context, ticket *entity.Ticket) { ticket.ID = "t1" }).
		Return(nil).Once()

	ticket, err := fx.service.CreateTicket(ctx, actor, &usecase.CreateTicketInput{
		Subject:     "Cold food",
		Description: "My <b>dosa</b> was cold",
		Area:        entity.TicketAreaOrderQuery,
		OrderID:     "ORDER_AAA",
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", ticket.ID)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "Asha", ticket.UserName)
	assert.Equal(t, fixedNow, ticket.CreatedAt)
	assert.Equal(t, fixedNow, ticket.LastUpdatedAt)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, entity.TicketMessage{SenderID: "u1", SenderName: "Asha", Text: "My dosa was cold", Timestamp: fixedNow}, ticket.Messages[0])
}

func TestSupportService_CreateTicket_Validation(t *testing.T) {
	fx := createTestSupportService(t)
	ctx := context.Background()
	actor := usecase.Actor{UID: "u1", Name: "Asha"}

	_, err := fx.service.CreateTicket(ctx, actor, &usecase.CreateTicketInput{Subject: " ", Description: "x", Area: entity.TicketAreaFeedback})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateTicket(ctx, actor, &usecase.CreateTicketInput{Subject: "x", Description: "", Area: entity.TicketAreaFeedback})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateTicket(ctx, actor, &usecase.CreateTicketInput{Subject: "x", Description: "y", Area: "billing"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSupportService_CreateTicket_IneligibleOrder(t *testing.T) {
	fx := createTestSupportService(t)
	ctx := context.Background()

	fx.orders.EXPECT().List(ctx, eligibleQuery("u1")).Return([]*entity.Order{}, nil).Once()

	_, err := fx.service.CreateTicket(ctx, usecase.Actor{UID: "u1"}, &usecase.CreateTicketInput{
		Subject:     "Where is it",
		Description: "Still waiting",
		Area:        entity.TicketAreaOrderQuery,
		OrderID:     "ORDER_PENDING",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTicketOrderIneligible)
}

func TestSupportService_Reply(t *testing.T) {
	open := &entity.Ticket{ID: "t1", UserID: "u1", Status: entity.TicketStatusOpen}
	resolved := &entity.Ticket{ID: "t2", UserID: "u1", Status: entity.TicketStatusResolved}

	t.Run("owner replies to open ticket", func(t *testing.T) {
		fx := createTestSupportService(t)
		ctx := context.Background()

		fx.tickets.EXPECT().FindByID(ctx, "t1").Return(open, nil).Twice()
		fx.tickets.EXPECT().AppendMessage(ctx, "t1", entity.TicketMessage{
			SenderID: "u1", SenderName: "Asha", Text: "thanks", Timestamp: fixedNow,
		}).Return(nil).Once()

		_, err := fx.service.Reply(ctx, usecase.Actor{UID: "u1", Name: "Asha"}, "t1", " <b>thanks</b> ")
		require.NoError(t, err)
	})

	t.Run("owner cannot reply to resolved ticket", func(t *testing.T) {
		fx := createTestSupportService(t)
		ctx := context.Background()

		fx.tickets.EXPECT().FindByID(ctx, "t2").Return(resolved, nil).Once()

		_, err := fx.service.Reply(ctx, usecase.Actor{UID: "u1"}, "t2", "hello?")
		assert.ErrorIs(t, err, domainerrors.ErrTicketResolved)
	})

	t.Run("admin replies to resolved ticket", func(t *testing.T) {
		fx := createTestSupportService(t)
		ctx := context.Background()

		fx.tickets.EXPECT().FindByID(ctx, "t2").Return(resolved, nil).Twice()
		fx.tickets.EXPECT().AppendMessage(ctx, "t2", mock.AnythingOfType("entity.TicketMessage")).Return(nil).Once()

		_, err := fx.service.Reply(ctx, usecase.Actor{UID: "a1", Name: "Canteen", Admin: true}, "t2", "Refunded")
		require.NoError(t, err)
	})

	t.Run("other customer cannot reply", func(t *testing.T) {
		fx := createTestSupportService(t)
		ctx := context.Background()

		fx.tickets.EXPECT().FindByID(ctx, "t1").Return(open, nil).Once()

		_, err := fx.service.Reply(ctx, usecase.Actor{UID: "u9"}, "t1", "hi")
		assert.ErrorIs(t, err, domainerrors.ErrTicketNotFound)
	})

	t.Run("markup-only message is empty", func(t *testing.T) {
		fx := createTestSupportService(t)

		_, err := fx.service.Reply(context.Background(), usecase.Actor{UID: "u1"}, "t1", "<b></b>")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestSupportService_AllTickets_ResolvesNames(t *testing.T) {
	fx := createTestSupportService(t)
	ctx := context.Background()
	q := repository.NewQuery().OrderBy(repository.FieldTicketLastUpdatedAt, repository.Descending)

	fx.tickets.EXPECT().List(ctx, q).Return([]*entity.Ticket{
		{ID: "t1", UserID: "u1", LastUpdatedAt: fixedNow.Add(-time.Hour)},
		{ID: "t2", UserID: "u2", LastUpdatedAt: fixedNow},
	}, nil).Once()
	fx.users.EXPECT().FindByIDs(ctx, []string{"u2", "u1"}).
		Return(map[string]*entity.UserProfile{"u1": {ID: "u1", Name: "Asha"}, "u2": {ID: "u2", Name: "Ravi"}}, nil).Once()

	rows, err := fx.service.AllTickets(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "t2", rows[0].ID)
	assert.Equal(t, "Ravi", rows[0].CustomerName)
	assert.Equal(t, "Asha", rows[1].CustomerName)
}

func TestSupportService_SetTicketStatus(t *testing.T) {
	fx := createTestSupportService(t)
	ctx := context.Background()

	fx.tickets.EXPECT().SetStatus(ctx, "t1", entity.TicketStatusResolved, fixedNow).Return(nil).Once()
	fx.tickets.EXPECT().FindByID(ctx, "t1").Return(&entity.Ticket{ID: "t1", Status: entity.TicketStatusResolved}, nil).Once()
	fx.tickets.EXPECT().SetStatus(ctx, "missing", entity.TicketStatusOpen, fixedNow).Return(repository.ErrTicketNotFound).Once()

	ticket, err := fx.service.SetTicketStatus(ctx, "t1", entity.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusResolved, ticket.Status)

	_, err = fx.service.SetTicketStatus(ctx, "missing", entity.TicketStatusOpen)
	assert.ErrorIs(t, err, domainerrors.ErrTicketNotFound)

	_, err = fx.service.SetTicketStatus(ctx, "t1", "Closed")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
