package application

import (
	"context"

	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

// CommandHandler executa um comando e devolve o que foi gravado
// (ex.: a reserva com o id atribuído pelo banco).
type CommandHandler[C domain.Command[T], T any, R any] interface {
	Handle(ctx context.Context, command C) (R, error)
}

// CommandBus entrega cada comando ao único handler registrado com o nome dele.
type CommandBus[C domain.Command[T], T any, R any] interface {
	RegisterHandler(commandName string, handler CommandHandler[C, T, R])
	Dispatch(ctx context.Context, command C) (R, error)
}

type QueryHandler[Q domain.Query[T], T any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

type QueryBus[Q domain.Query[D], D any, R any] interface {
	RegisterHandler(queryName string, handler QueryHandler[Q, D, R])
	Dispatch(ctx context.Context, query Q) (R, error)
}

type EventHandler[E domain.Event[T], T any] interface {
	Handle(ctx context.Context, event E) error
}

// EventBus aceita vários handlers por evento. Publish sem handler não é erro.
type EventBus[E domain.Event[D], D any] interface {
	RegisterHandler(eventName string, handler EventHandler[E, D])
	Publish(ctx context.Context, event E) error
}
