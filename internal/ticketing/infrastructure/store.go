package infrastructure

import (
	"context"
	"fmt"

	"github.com/ExoTV1102/Ticketsystem/internal/config"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	"github.com/ExoTV1102/Ticketsystem/pkg/application"
)

// TicketStore é o cliente de armazenamento: o repositório mais o ciclo de
// vida (migração única, seed, health check e fechamento).
type TicketStore interface {
	domain.TicketRepository

	// InitializeSchema cria as tabelas ausentes. Pode ser chamado a cada start.
	InitializeSchema(ctx context.Context) error
	// SeedIfEmpty insere o seed só se não houver nenhuma estação.
	// Retorna true quando o seed foi aplicado.
	SeedIfEmpty(ctx context.Context, seed Seed) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

// OpenTicketStore abre o armazenamento configurado.
func OpenTicketStore(settings config.DatabaseSettings, logger application.AppLogger) (TicketStore, error) {
	if settings.Type == config.MemoryDbType {
		return NewInMemoryTicketRepository(logger), nil
	}

	db, err := NewDBConnection(settings)
	if err != nil {
		return nil, err
	}
	return NewGormTicketRepository(db, logger), nil
}

// Migrate executa a migração de inicialização: schema e, em banco vazio, o seed.
func Migrate(ctx context.Context, store TicketStore, seed Seed, logger application.AppLogger) error {
	if err := store.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	seeded, err := store.SeedIfEmpty(ctx, seed)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	application.LogInfo(ctx, logger, "database ready", map[string]interface{}{
		"seeded":      seeded,
		"stations":    len(seed.Stations),
		"connections": len(seed.Connections),
	})
	return nil
}
