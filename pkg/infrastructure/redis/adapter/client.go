package adapter

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	watermillLogAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/watermill/adapter"
)

func NewRedisClient(addr string) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
}

// NewRedisPubSub cria publisher e subscriber de Redis streams sobre o mesmo cliente.
func NewRedisPubSub(ctx context.Context, client redis.UniversalClient, consumerGroup, consumer string, appLogger application.AppLogger) (*redisstream.Publisher, *redisstream.Subscriber, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis publisher: %w", err)
	}

	subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
		Consumer:      consumer,
	}, logger)
	if err != nil {
		_ = publisher.Close()
		return nil, nil, fmt.Errorf("failed to create redis subscriber: %w", err)
	}

	return publisher, subscriber, nil
}
