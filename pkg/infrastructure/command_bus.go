package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

type simpleCommandBus[C domain.Command[D], D any, R any] struct {
	handlers map[string]application.CommandHandler[C, D, R]
	mu       sync.RWMutex
	logger   application.AppLogger
}

// NewSimpleCommandBus cria um barramento de comandos síncrono, em processo.
func NewSimpleCommandBus[C domain.Command[D], D any, R any](logger application.AppLogger) application.CommandBus[C, D, R] {
	return &simpleCommandBus[C, D, R]{
		handlers: make(map[string]application.CommandHandler[C, D, R]),
		logger:   logger,
	}
}

func (bus *simpleCommandBus[C, D, R]) RegisterHandler(commandName string, handler application.CommandHandler[C, D, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[commandName] = handler
}

func (bus *simpleCommandBus[C, D, R]) Dispatch(ctx context.Context, command C) (R, error) {
	bus.mu.RLock()
	handler, found := bus.handlers[command.CommandName()]
	bus.mu.RUnlock()

	var zero R
	if !found {
		err := fmt.Errorf("no handler registered for command %q", command.CommandName())
		application.LogError(ctx, bus.logger, "error dispatching command", err, nil)
		return zero, err
	}

	application.LogDebug(ctx, bus.logger, "command dispatched", map[string]interface{}{
		"command_name": command.CommandName(),
	})
	return handler.Handle(ctx, command)
}
