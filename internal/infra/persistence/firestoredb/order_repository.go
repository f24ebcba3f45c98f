package firestoredb

import (
	"context"
	"log/slog"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/util"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

var orderFields = newFields(
	repository.FieldOrderCode,
	repository.FieldOrderUserID,
	repository.FieldOrderStatus,
	repository.FieldOrderIsNotified,
	repository.FieldOrderTime,
	repository.FieldOrderPaymentStatus,
)

type orderRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewOrderRepository creates the Orders collection backed by Firestore.
func NewOrderRepository(client *firestore.Client, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{client: client, logger: logger}
}

func (repo *orderRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(CollectionOrders)
}

func (repo *orderRepository) List(ctx context.Context, q repository.Query) ([]*entity.Order, error) {
	query, empty, err := orderFields.build(repo.collection().Query, q)
	if err != nil || empty {
		return []*entity.Order{}, err
	}

	return list(ctx, query, decodeOrder)
}

func (repo *orderRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.Order), onError func(error)) (repository.Registration, error) {
	query, empty, err := orderFields.build(repo.collection().Query, q)
	if err != nil {
		return nil, err
	}

	return watch(ctx, repo.logger, CollectionOrders, query, empty, decodeOrder, onSnapshot, onError), nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ref := repo.collection().NewDoc()
	if order.ID != "" {
		ref = repo.collection().Doc(order.ID)
	}

	if _, err := ref.Create(ctx, fromOrder(order)); err != nil {
		return errors.Wrap(err, "failed to create order")
	}
	order.ID = ref.ID

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "failed to get order")
	}

	return decodeOrder(snap)
}

// UpdateStatus reads and writes the order in one transaction, so a concurrent transition
// makes this one retry and then fail with ErrOrderStatusConflict.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, next entity.OrderStatus) (*entity.Order, error) {
	if !entity.OrderStatusPending.CanTransitionTo(next) {
		return nil, errors.Wrapf(repository.ErrOrderStatusConflict, "cannot move an order to %s", next)
	}

	ref := repo.collection().Doc(id)
	var updated *entity.Order
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return notFound(err, repository.ErrOrderNotFound, "failed to get order")
		}
		order, err := decodeOrder(snap)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(next) {
			return errors.Wrapf(repository.ErrOrderStatusConflict, "order is %s", order.Status)
		}

		updates := []firestore.Update{{Path: repository.FieldOrderStatus, Value: string(next)}}
		order.Status = next
		if next == entity.OrderStatusReady {
			updates = append(updates, firestore.Update{Path: repository.FieldOrderPaymentStatus, Value: true})
			order.PaymentStatus = true
		}
		updated = order

		return tx.Update(ref, updates)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (repo *orderRepository) SetPaymentStatus(ctx context.Context, id string, paid bool) error {
	_, err := repo.collection().Doc(id).Update(ctx, []firestore.Update{{Path: repository.FieldOrderPaymentStatus, Value: paid}})
	if err != nil {
		return notFound(err, repository.ErrOrderNotFound, "failed to update payment status")
	}

	return nil
}

// MarkAnnounced sets isNotified on the listed orders. Each commit carries at most
// maxWritesPerCommit writes; orders deleted in the meantime are skipped.
func (repo *orderRepository) MarkAnnounced(ctx context.Context, ids []string) error {
	for _, batch := range util.Chunk(util.Dedupe(ids), maxWritesPerCommit) {
		refs := make([]*firestore.DocumentRef, 0, len(batch))
		for _, id := range batch {
			refs = append(refs, repo.collection().Doc(id))
		}

		err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
			snaps, err := tx.GetAll(refs)
			if err != nil {
				return err
			}
			for _, snap := range snaps {
				if !snap.Exists() {
					continue
				}
				if err := tx.Update(snap.Ref, []firestore.Update{{Path: repository.FieldOrderIsNotified, Value: true}}); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return errors.Wrap(err, "failed to mark orders announced")
		}
	}

	return nil
}
