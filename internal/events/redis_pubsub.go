package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"dreamfund/internal/core/domain"
)

// RedisPublisher publishes notifications on a redis pub/sub channel.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, channel, string(data)).Err()
}

// RedisSubscriber consumes notifications from a redis pub/sub channel. It is
// used by external consumers embedding this module; the service itself only
// publishes.
type RedisSubscriber struct {
	client *redis.Client
}

func NewRedisSubscriber(client *redis.Client) *RedisSubscriber {
	return &RedisSubscriber{client: client}
}

// Subscribe delivers each decoded notification to handler until ctx is done.
// Malformed payloads are skipped.
func (s *RedisSubscriber) Subscribe(ctx context.Context, channel string, handler func(domain.Notification)) error {
	pubsub := s.client.Subscribe(ctx, channel)
	ch := pubsub.Channel()

	go func() {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var n domain.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
					continue
				}
				handler(n)
			}
		}
	}()

	return nil
}
