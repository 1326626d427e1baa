package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// EventPublisher is the hook through which other components (notifications,
// audit, metrics) observe order status transitions. Events are published after
// the transition is committed; a publish failure never undoes the transition.
type EventPublisher interface {
	Publish(ctx context.Context, event order.StatusChangedEvent) error
}
