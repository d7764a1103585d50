package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

type queryResult[R any] struct {
	value R
	err   error
}

type simpleQueryBus[Q domain.Query[D], D any, R any] struct {
	mu       sync.RWMutex
	handlers map[string]application.QueryHandler[Q, D, R]
	logger   application.AppLogger
}

// NewSimpleQueryBus cria um barramento de consultas em processo. O handler
// roda em uma goroutine e o Dispatch retorna assim que o contexto expira.
func NewSimpleQueryBus[Q domain.Query[D], D any, R any](logger application.AppLogger) application.QueryBus[Q, D, R] {
	return &simpleQueryBus[Q, D, R]{
		handlers: map[string]application.QueryHandler[Q, D, R]{},
		logger:   logger,
	}
}

func (bus *simpleQueryBus[Q, D, R]) RegisterHandler(queryName string, handler application.QueryHandler[Q, D, R]) {
	bus.mu.Lock()
	bus.handlers[queryName] = handler
	bus.mu.Unlock()
}

func (bus *simpleQueryBus[Q, D, R]) Dispatch(ctx context.Context, query Q) (R, error) {
	name := query.QueryName()

	bus.mu.RLock()
	handler, ok := bus.handlers[name]
	bus.mu.RUnlock()

	if !ok {
		var zero R
		err := fmt.Errorf("no handler registered for query %q", name)
		application.LogError(ctx, bus.logger, "error dispatching query", err, nil)
		return zero, err
	}

	// buffer 1: a goroutine termina mesmo se ninguém ler o resultado
	done := make(chan queryResult[R], 1)
	go func() {
		value, err := handler.Handle(ctx, query)
		done <- queryResult[R]{value: value, err: err}
	}()

	select {
	case res := <-done:
		application.LogTrace(ctx, bus.logger, "query handled", map[string]interface{}{
			"query_name": name,
			"failed":     res.err != nil,
		})
		return res.value, res.err
	case <-ctx.Done():
		var zero R
		application.LogError(ctx, bus.logger, "query cancelled", ctx.Err(), map[string]interface{}{
			"query_name": name,
		})
		return zero, ctx.Err()
	}
}
