package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisForwarder mirrors dispatched events onto a redis pub/sub channel so
// sibling processes can observe them. Fire-and-forget: a publish failure is
// logged and never fails the originating request.
type RedisForwarder struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisForwarder creates the forwarder.
func NewRedisForwarder(client *redis.Client, channel string, logger *zap.Logger) *RedisForwarder {
	return &RedisForwarder{client: client, channel: channel, logger: logger}
}

// Register subscribes the forwarder to every event type it mirrors.
func (f *RedisForwarder) Register(dispatcher Dispatcher) {
	if f.client == nil || dispatcher == nil {
		return
	}
	dispatcher.Subscribe(EventPartsReturned, f.forward)
}

func (f *RedisForwarder) forward(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := f.client.Publish(ctx, f.channel, body).Err(); err != nil {
		f.logger.Warn("redis event publish failed",
			zap.String("channel", f.channel),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
	return nil
}
