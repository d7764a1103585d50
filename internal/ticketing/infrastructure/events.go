package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ExoTV1102/Ticketsystem/internal/config"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/application"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
	pkgDomain "github.com/ExoTV1102/Ticketsystem/pkg/domain"
	pkgInfra "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure"
	channelsAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/channels/adapter"
	kafkaAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/kafka/adapter"
	redisAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/redis/adapter"
	watermillAdapter "github.com/ExoTV1102/Ticketsystem/pkg/infrastructure/watermill/adapter"
)

// CloseFunc libera os recursos do transporte de eventos.
type CloseFunc func() error

// NewBookingEventBus monta o barramento de eventos de reserva para o
// transporte configurado.
func NewBookingEventBus(ctx context.Context, settings config.EventSettings, logger pkgApp.AppLogger) (application.BookingEventBus, CloseFunc, error) {
	switch settings.Transport {
	case config.MemoryTransport:
		bus := pkgInfra.NewSimpleEventBus[pkgDomain.Event[application.BookingCreatedData], application.BookingCreatedData](logger)
		return bus, func() error { return nil }, nil

	case config.GoChannelTransport:
		pubSub := channelsAdapter.NewGoChannelPubSub(logger)
		return newWatermillBookingEventBus(pubSub, pubSub, logger, pubSub.Close)

	case config.RedisTransport:
		client := redisAdapter.NewRedisClient(settings.RedisAddr)
		publisher, subscriber, err := redisAdapter.NewRedisPubSub(ctx, client, settings.ConsumerGroup, pkgInfra.GenerateUUID(), logger)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return newWatermillBookingEventBus(publisher, subscriber, logger, publisher.Close, subscriber.Close, client.Close)

	case config.KafkaTransport:
		publisher, subscriber, err := kafkaAdapter.NewKafkaPubSub(settings.Brokers(), settings.ConsumerGroup, logger)
		if err != nil {
			return nil, nil, err
		}
		return newWatermillBookingEventBus(publisher, subscriber, logger, publisher.Close, subscriber.Close)

	default:
		return nil, nil, fmt.Errorf("unsupported events transport: %s", settings.Transport)
	}
}

func newWatermillBookingEventBus(
	publisher message.Publisher,
	subscriber message.Subscriber,
	logger pkgApp.AppLogger,
	closers ...func() error,
) (application.BookingEventBus, CloseFunc, error) {
	bus := watermillAdapter.NewWatermillEventBus[pkgDomain.Event[application.BookingCreatedData], application.BookingCreatedData](publisher, subscriber, logger)

	closeAll := func() error {
		errs := []error{bus.Close()}
		for _, closer := range closers {
			errs = append(errs, closer())
		}
		return errors.Join(errs...)
	}
	return bus, closeAll, nil
}
