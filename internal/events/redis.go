package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/tiqn/dispatch_engine/internal/models"
)

const (
	changesChannelPrefix = "tiqn:changes:"
	webhookQueueKey      = "webhook_events"
)

func changesChannel(entity string) string {
	return changesChannelPrefix + entity
}

// RedisBus публикует события через Redis Pub/Sub и, при необходимости, ставит их в очередь вебхуков
type RedisBus struct {
	redisClient   *redis.Client
	logger        *logrus.Logger
	queueWebhooks bool
}

// NewRedisBus создает новый RedisBus
func NewRedisBus(client *redis.Client, logger *logrus.Logger, queueWebhooks bool) *RedisBus {
	return &RedisBus{
		redisClient:   client,
		logger:        logger,
		queueWebhooks: queueWebhooks,
	}
}

// Publish публикует событие в канал сущности
func (b *RedisBus) Publish(ctx context.Context, event models.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	if err := b.redisClient.Publish(ctx, changesChannel(event.Entity), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}

	if b.queueWebhooks {
		// LPUSH в левую часть списка, воркер забирает справа
		if err := b.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
			return fmt.Errorf("failed to enqueue webhook event to Redis: %w", err)
		}
	}
	return nil
}

// Subscribe подписывается на каналы выбранных сущностей
func (b *RedisBus) Subscribe(ctx context.Context, entities ...string) (<-chan models.ChangeEvent, error) {
	var pubsub *redis.PubSub
	if len(entities) == 0 {
		pubsub = b.redisClient.PSubscribe(ctx, changesChannelPrefix+"*")
	} else {
		channels := make([]string, len(entities))
		for i, e := range entities {
			channels[i] = changesChannel(e)
		}
		pubsub = b.redisClient.Subscribe(ctx, channels...)
	}

	// Дожидаемся подтверждения подписки
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to change events: %w", err)
	}

	out := make(chan models.ChangeEvent, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event models.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					b.logger.WithError(err).Warn("Failed to unmarshal change event from Redis")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
