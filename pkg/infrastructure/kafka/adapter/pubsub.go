package adapter

import (
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	watermillLogAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/watermill/adapter"
)

// NewKafkaPubSub cria publisher e subscriber Kafka para o grupo de consumo informado.
func NewKafkaPubSub(brokers []string, consumerGroup string, appLogger application.AppLogger) (*kafka.Publisher, *kafka.Subscriber, error) {
	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)
	marshaler := kafka.DefaultMarshaler{}

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:   brokers,
		Marshaler: marshaler,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V1_0_0_0
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.ClientID = "ticketsystem"

	subscriber, err := kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:               brokers,
		Unmarshaler:           marshaler,
		ConsumerGroup:         consumerGroup,
		OverwriteSaramaConfig: saramaConfig,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}, logger)
	if err != nil {
		_ = publisher.Close()
		return nil, nil, fmt.Errorf("failed to create kafka subscriber: %w", err)
	}

	return publisher, subscriber, nil
}
