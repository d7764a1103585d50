// Package domain define as mensagens trocadas pelos barramentos: comandos
// alteram estado, consultas só leem e eventos relatam o que já aconteceu.
package domain

type Command[T any] interface {
	CommandName() string
	Payload() T
}

type Query[T any] interface {
	QueryName() string
	Payload() T
}

// Event é publicado depois do fato; o payload precisa ser serializável em
// JSON para atravessar transportes externos.
type Event[T any] interface {
	EventName() string
	Payload() T
}

// IDGenerator gera identificadores (ex.: X-Request-ID, nome de consumidor).
type IDGenerator[T any] func() T
