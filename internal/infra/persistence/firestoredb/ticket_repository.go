package firestoredb

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

const fieldTicketMessages = "messages"

var ticketFields = newFields(repository.FieldTicketUserID, repository.FieldTicketStatus, repository.FieldTicketLastUpdatedAt)

type ticketRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewTicketRepository creates the Support collection backed by Firestore.
func NewTicketRepository(client *firestore.Client, logger *slog.Logger) repository.TicketRepository {
	return &ticketRepository{client: client, logger: logger}
}

func (repo *ticketRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionSupport)
}

func (repo *ticketRepository) List(ctx context.Context, q repository.Query) ([]*entity.Ticket, error) {
	query, empty, err := ticketFields.build(repo.collection().Query, q)
	if err != nil || empty {
		return []*entity.Ticket{}, err
	}

	return list(ctx, query, decodeTicket)
}

func (repo *ticketRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.Ticket), onError func(error)) (repository.Registration, error) {
	query, empty, err := ticketFields.build(repo.collection().Query, q)
	if err != nil {
		return nil, err
	}

	return watch(ctx, repo.logger, CollectionSupport, query, empty, decodeTicket, onSnapshot, onError), nil
}

func (repo *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	ref := repo.collection().NewDoc()
	if ticket.ID != "" {
		ref = repo.collection().Doc(ticket.ID)
	}

	if _, err := ref.Create(ctx, fromTicket(ticket)); err != nil {
		return errors.Wrap(err, "failed to create ticket")
	}
	ticket.ID = ref.ID

	return nil
}

func (repo *ticketRepository) FindByID(ctx context.Context, id string) (*entity.Ticket, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, repository.ErrTicketNotFound, "failed to get ticket")
	}

	return decodeTicket(snap)
}

// AppendMessage adds msg through an array union and bumps lastUpdatedAt.
func (repo *ticketRepository) AppendMessage(ctx context.Context, id string, msg entity.TicketMessage) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: fieldTicketMessages, Value: firestore.ArrayUnion(fromTicketMessage(msg))},
		{Path: repository.FieldTicketLastUpdatedAt, Value: msg.Timestamp},
	})
	if err != nil {
		return notFound(err, repository.ErrTicketNotFound, "failed to append ticket message")
	}

	return nil
}

func (repo *ticketRepository) SetStatus(ctx context.Context, id string, status entity.TicketStatus, at time.Time) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: repository.FieldTicketStatus, Value: string(status)},
		{Path: repository.FieldTicketLastUpdatedAt, Value: at},
	})
	if err != nil {
		return notFound(err, repository.ErrTicketNotFound, "failed to update ticket status")
	}

	return nil
}
