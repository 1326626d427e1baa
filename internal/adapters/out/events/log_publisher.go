package events

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// LogPublisher writes one structured log line per transition.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "order-events")}
}

func (p *LogPublisher) Publish(ctx context.Context, event order.StatusChangedEvent) error {
	p.logger.InfoContext(ctx, "order status changed",
		"order_id", event.OrderID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"occurred_at", event.OccurredAt.Format(time.RFC3339Nano),
	)
	return nil
}
