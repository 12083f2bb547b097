//go:generate go run go.uber.org/mock/mockgen -source=redis_relay.go -destination=../mocks/mock_redis_relay.go -package=mocks
package services

import (
	"context"

	"campusride/internal/utils"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"
)

// ChannelPublisher publishes a JSON-encoded message on a named channel.
// *cache.RedisCache satisfies it.
type ChannelPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// RedisRelay mirrors every bus event onto <prefix><topic> so other
// processes can follow changes.
type RedisRelay struct {
	bus       pubsub.Subscriber
	publisher ChannelPublisher
	prefix    string
	logger    *logger.Logger
}

func NewRedisRelay(bus pubsub.Subscriber, publisher ChannelPublisher, prefix string, log *logger.Logger) *RedisRelay {
	return &RedisRelay{
		bus:       bus,
		publisher: publisher,
		prefix:    prefix,
		logger:    log,
	}
}

func (r *RedisRelay) Channel(topic string) string {
	return r.prefix + topic
}

// Run relays events until ctx is done or the bus closes. Publish failures
// are logged and skipped.
func (r *RedisRelay) Run(ctx context.Context) {
	events, cancel := r.bus.Subscribe(pubsub.Wildcard)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			r.relay(ctx, event)
		}
	}
}

func (r *RedisRelay) relay(ctx context.Context, event pubsub.Event) {
	ctx, cancel := context.WithTimeout(ctx, utils.RelayPublishTimeout)
	defer cancel()

	channel := r.Channel(event.Topic)
	if err := r.publisher.Publish(ctx, channel, event); err != nil {
		r.logger.WithError(err).WithFields(map[string]interface{}{
			"channel": channel,
			"type":    event.Type,
		}).Warn("Failed to relay event to redis")
	}
}
