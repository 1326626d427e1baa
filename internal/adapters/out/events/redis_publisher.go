package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisChannel is used when no channel is configured.
const DefaultRedisChannel = "orders.status_changed"

// RedisClient is the subset of *redis.Client the publisher needs.
type RedisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// StatusChangedMessage is the JSON payload published to Redis.
type StatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RedisPublisher publishes status events on a Redis pub/sub channel so other
// services (notifications, audit) can subscribe without polling.
type RedisPublisher struct {
	client  RedisClient
	channel string
}

func NewRedisPublisher(client RedisClient, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event order.StatusChangedEvent) error {
	payload, err := json.Marshal(StatusChangedMessage{
		OrderID:    event.OrderID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		OccurredAt: event.OccurredAt.UTC(),
	})
	if err != nil {
		return err
	}

	if err = p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to redis channel %q: %w", p.channel, err)
	}
	return nil
}
