package gormstore

import (
	"context"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"
	"canteen/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var orderColumns = columns{
	repository.FieldOrderCode:          "order_id",
	repository.FieldOrderUserID:        "user_id",
	repository.FieldOrderStatus:        "status",
	repository.FieldOrderIsNotified:    "is_notified",
	repository.FieldOrderTime:          "time",
	repository.FieldOrderPaymentStatus: "payment_status",
}

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db          *gorm.DB
	broadcaster *Broadcaster
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB, broadcaster *Broadcaster) repository.OrderRepository {
	return &orderRepository{db: db, broadcaster: broadcaster}
}

func (repo *orderRepository) table() string {
	return model.OrderModel{}.TableName()
}

// List runs q once.
func (repo *orderRepository) List(ctx context.Context, q repository.Query) ([]*entity.Order, error) {
	db, err := orderColumns.apply(repo.db.WithContext(ctx).Model(&model.OrderModel{}), q)
	if err != nil {
		return nil, err
	}

	var rows []*model.OrderModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderDomain(row))
	}

	return orders, nil
}

// Watch serves q live.
func (repo *orderRepository) Watch(ctx context.Context, q repository.Query, onSnapshot func([]*entity.Order), onError func(error)) (repository.Registration, error) {
	if _, err := orderColumns.apply(repo.db, q); err != nil {
		return nil, err
	}

	return watch(ctx, repo.broadcaster, repo.table(), func(ctx context.Context) ([]*entity.Order, error) {
		return repo.List(ctx, q)
	}, onSnapshot, onError), nil
}

// Create persists a new order, assigning its document ID when empty.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	if err := repo.db.WithContext(ctx).Create(fromOrderDomain(order)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// FindByID retrieves an order by document ID.
func (repo *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

func (repo *orderRepository) findByID(db *gorm.DB, id string) (*entity.Order, error) {
	var row model.OrderModel
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		return nil, notFound(err, repository.ErrOrderNotFound, "failed to find order")
	}

	return toOrderDomain(&row), nil
}

// UpdateStatus moves a pending order into next within one transaction. The update is
// conditional on the stored status, so two admins racing on one order cannot both win.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, next entity.OrderStatus) (*entity.Order, error) {
	if !entity.OrderStatusPending.CanTransitionTo(next) {
		return nil, errors.Wrapf(repository.ErrOrderStatusConflict, "cannot move an order to %s", next)
	}

	updates := map[string]any{"status": string(next)}
	if next == entity.OrderStatusReady {
		updates["payment_status"] = true
	}

	var updated *entity.Order
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ? AND status = ?", id, string(entity.OrderStatusPending)).
			Updates(updates)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update order status")
		}

		order, err := repo.findByID(tx, id)
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return errors.Wrapf(repository.ErrOrderStatusConflict, "order is %s", order.Status)
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}
	repo.broadcaster.Notify(repo.table())

	return updated, nil
}

// SetPaymentStatus sets the payment flag.
func (repo *orderRepository) SetPaymentStatus(ctx context.Context, id string, paid bool) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Update("payment_status", paid)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// MarkAnnounced sets isNotified on every listed order in a single transaction.
func (repo *orderRepository) MarkAnnounced(ctx context.Context, ids []string) error {
	ids = util.Dedupe(ids)
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, batch := range util.Chunk(ids, repository.MaxInValues) {
			if err := tx.Model(&model.OrderModel{}).Where("id IN ?", batch).Update("is_notified", true).Error; err != nil {
				return errors.Wrap(err, "failed to mark orders announced")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}
	repo.broadcaster.Notify(repo.table())

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Items:         append([]entity.OrderItem{}, data.Items...),
		UserID:        data.UserID,
		Amount:        data.Amount,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus: data.PaymentStatus,
		Status:        entity.OrderStatus(data.Status),
		IsNotified:    data.IsNotified,
		Time:          data.Time.UTC(),
		Notes:         data.Notes,
	}
	if data.ScheduleLater != nil {
		at := data.ScheduleLater.UTC()
		order.ScheduleLater = &at
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	row := &model.OrderModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		Items:         append(datatypes.JSONSlice[entity.OrderItem]{}, data.Items...),
		UserID:        data.UserID,
		Amount:        data.Amount,
		PaymentMethod: string(data.PaymentMethod),
		PaymentStatus: data.PaymentStatus,
		Status:        string(data.Status),
		IsNotified:    data.IsNotified,
		Time:          data.Time.UTC(),
		Notes:         data.Notes,
	}
	if data.ScheduleLater != nil {
		at := data.ScheduleLater.UTC()
		row.ScheduleLater = &at
	}

	return row
}
