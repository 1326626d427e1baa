package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Returned orders are copies; changes become visible to other readers only
// after Update and the enclosing unit of work commits.
type OrderRepository interface {
	// Add persists a new order with its item snapshots.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's status and updatedAt.
	// Items and createdAt are immutable and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns *errs.ObjectNotFoundError if it does not exist.
	// Inside a transaction the row is locked until commit or rollback.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllIDs returns the id of every order in creation order without
	// decoding the orders, so one unreadable order cannot hide the others
	// from the status sweep.
	GetAllIDs(ctx context.Context) ([]kernel.UUID, error)
}
