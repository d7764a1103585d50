package infrastructure

import (
	"context"
	"errors"
	"sync"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

// simpleEventBus entrega eventos aos manipuladores registrados, cada um em sua goroutine.
type simpleEventBus[E domain.Event[T], T any] struct {
	handlers map[string][]application.EventHandler[E, T]
	mu       sync.RWMutex
	logger   application.AppLogger
}

// NewSimpleEventBus cria uma nova instância do SimpleEventBus.
func NewSimpleEventBus[E domain.Event[T], T any](logger application.AppLogger) application.EventBus[E, T] {
	return &simpleEventBus[E, T]{
		handlers: make(map[string][]application.EventHandler[E, T]),
		logger:   logger,
	}
}

// RegisterHandler registra um manipulador para um evento específico.
func (bus *simpleEventBus[E, T]) RegisterHandler(eventName string, handler application.EventHandler[E, T]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[eventName] = append(bus.handlers[eventName], handler)
}

// Publish publica um evento e espera todos os manipuladores terminarem.
func (bus *simpleEventBus[E, T]) Publish(ctx context.Context, event E) error {
	bus.mu.RLock()
	handlers, found := bus.handlers[event.EventName()]
	bus.mu.RUnlock()

	if !found {
		bus.logger.Debug(ctx, "no handler registered for event", map[string]interface{}{
			"event_name": event.EventName(),
		})
		return nil // Nenhum manipulador registrado, consideramos um sucesso silencioso
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(handlers))
	done := make(chan struct{})

	for _, handler := range handlers {
		wg.Add(1)
		go func(h application.EventHandler[E, T]) {
			defer wg.Done()
			if err := h.Handle(ctx, event); err != nil {
				errChan <- err
			}
		}(handler)
	}

	go func() {
		wg.Wait()
		close(errChan)
		close(done)
	}()

	select {
	case <-ctx.Done():
		application.LogError(ctx, bus.logger, "error publishing event", ctx.Err(), map[string]interface{}{
			"event_name": event.EventName(),
		})
		return ctx.Err()
	case <-done:
		return bus.collectErrors(ctx, event.EventName(), errChan)
	}
}

// collectErrors agrega os erros devolvidos pelos manipuladores.
func (bus *simpleEventBus[E, T]) collectErrors(ctx context.Context, eventName string, errChan <-chan error) error {
	var errs []error
	for err := range errChan {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		application.LogError(ctx, bus.logger, "error handling event", err, map[string]interface{}{
			"event_name": eventName,
		})
		return err
	}

	application.LogDebug(ctx, bus.logger, "event published", map[string]interface{}{
		"event_name": eventName,
	})
	return nil
}
