// Package events delivers order status events to their observers: the log,
// Prometheus and, when configured, a Redis pub/sub channel.
package events

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// FanOutPublisher hands each event to every publisher. All publishers are
// called even when one fails; the failures are joined.
type FanOutPublisher struct {
	publishers []ports.EventPublisher
}

func NewFanOutPublisher(publishers ...ports.EventPublisher) *FanOutPublisher {
	return &FanOutPublisher{publishers: publishers}
}

func (p *FanOutPublisher) Publish(ctx context.Context, event order.StatusChangedEvent) error {
	var errs []error
	for _, publisher := range p.publishers {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
