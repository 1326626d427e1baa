package memory

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over a Store.
type OrderRepository struct {
	store *Store
	tx    *changeset
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(r.tx, func(cs *changeset) error {
		if _, exists := r.store.order(cs, aggregate.ID()); exists {
			return errs.NewValueIsInvalidErrorWithCause(
				"order id", fmt.Errorf("%s already exists", aggregate.ID()),
			)
		}

		stored := aggregate.Clone()
		stored.ClearDomainEvents()
		cs.orders[aggregate.ID()] = stored
		cs.ordersNew = append(cs.ordersNew, aggregate.ID())
		return nil
	})
}

// Update writes status and updatedAt; the stored items and createdAt are kept.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.store.write(r.tx, func(cs *changeset) error {
		existing, ok := r.store.order(cs, aggregate.ID())
		if !ok {
			return errs.NewObjectNotFoundError("orderID", aggregate.ID())
		}

		updated, err := order.RestoreOrder(
			existing.ID(),
			existing.Items(),
			aggregate.Status(),
			existing.CreatedAt(),
			aggregate.UpdatedAt(),
		)
		if err != nil {
			return err
		}
		cs.orders[aggregate.ID()] = updated
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	r.store.read(r.tx, func() {
		if o, ok := r.store.order(r.tx, id); ok {
			found = o.Clone()
		}
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return found, nil
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	r.store.read(r.tx, func() {
		orders = r.store.allOrders(r.tx)
	})
	return orders, nil
}

func (r *OrderRepository) GetAllIDs(_ context.Context) ([]kernel.UUID, error) {
	var ids []kernel.UUID
	r.store.read(r.tx, func() {
		ids = append([]kernel.UUID(nil), r.store.orderIDs(r.tx)...)
	})
	return ids, nil
}
