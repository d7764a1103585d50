package adapter

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

// WatermillEventBus publica eventos como mensagens watermill; cada nome de
// evento é um tópico. Serve para qualquer transporte (go channels, Redis
// streams, Kafka) que implemente message.Publisher e message.Subscriber.
type WatermillEventBus[E domain.Event[D], D any] struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	handlers   map[string][]application.EventHandler[E, D]
	mu         sync.RWMutex
	logger     application.AppLogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWatermillEventBus[E domain.Event[D], D any](publisher message.Publisher, subscriber message.Subscriber, logger application.AppLogger) *WatermillEventBus[E, D] {
	ctx, cancel := context.WithCancel(context.Background())
	return &WatermillEventBus[E, D]{
		publisher:  publisher,
		subscriber: subscriber,
		handlers:   make(map[string][]application.EventHandler[E, D]),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// RegisterHandler assina o tópico na primeira vez que um evento ganha manipulador.
func (bus *WatermillEventBus[E, D]) RegisterHandler(eventName string, handler application.EventHandler[E, D]) {
	bus.mu.Lock()
	_, subscribed := bus.handlers[eventName]
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
	bus.mu.Unlock()

	if subscribed {
		return
	}

	messages, err := bus.subscriber.Subscribe(bus.ctx, eventName)
	if err != nil {
		application.LogError(bus.ctx, bus.logger, "error subscribing to event", err, map[string]interface{}{
			"event_name": eventName,
		})
		return
	}

	bus.wg.Add(1)
	go func() {
		defer bus.wg.Done()
		for msg := range messages {
			bus.handleMessage(eventName, msg)
		}
	}()
}

func (bus *WatermillEventBus[E, D]) handleMessage(eventName string, msg *message.Message) {
	ctx := msg.Context()
	if requestID := msg.Metadata.Get("request_id"); requestID != "" {
		ctx = application.WithRequestID(ctx, requestID)
	}

	var payload D
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		application.LogError(ctx, bus.logger, "error unmarshalling event payload", err, map[string]interface{}{
			"event_name": eventName,
		})
		// payload inválido nunca vai ser processado; descartamos
		msg.Ack()
		return
	}

	event, ok := interface{}(&dynamicEvent[D]{eventName: eventName, payload: payload}).(E)
	if !ok {
		application.LogError(ctx, bus.logger, "error asserting event type", nil, map[string]interface{}{
			"event_name": eventName,
		})
		msg.Ack()
		return
	}

	bus.mu.RLock()
	handlers := bus.handlers[eventName]
	bus.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			application.LogError(ctx, bus.logger, "error handling event", err, map[string]interface{}{
				"event_name": eventName,
			})
			msg.Nack()
			return
		}
	}

	application.LogDebug(ctx, bus.logger, "event handled", map[string]interface{}{
		"event_name": eventName,
	})
	msg.Ack()
}

func (bus *WatermillEventBus[E, D]) Publish(ctx context.Context, event E) error {
	payload, err := application.MarshalPayload(event.Payload())
	if err != nil {
		application.LogError(ctx, bus.logger, "error marshalling event payload", err, map[string]interface{}{
			"event_name": event.EventName(),
		})
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if requestID, ok := application.RequestIDFromContext(ctx); ok {
		msg.Metadata.Set("request_id", requestID)
	}

	if err := bus.publisher.Publish(event.EventName(), msg); err != nil {
		application.LogError(ctx, bus.logger, "error publishing event", err, map[string]interface{}{
			"event_name": event.EventName(),
		})
		return err
	}

	application.LogDebug(ctx, bus.logger, "event published", map[string]interface{}{
		"event_name": event.EventName(),
		"message_id": msg.UUID,
	})
	return nil
}

// Close encerra as assinaturas e espera os consumidores terminarem.
// Publisher e subscriber continuam sendo responsabilidade de quem os criou.
func (bus *WatermillEventBus[E, D]) Close() error {
	bus.cancel()
	bus.wg.Wait()
	return nil
}

type dynamicEvent[D any] struct {
	eventName string
	payload   D
}

func (e *dynamicEvent[D]) EventName() string {
	return e.eventName
}

func (e *dynamicEvent[D]) Payload() D {
	return e.payload
}
