package infrastructure

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ExoTV1102/Ticketsystem/internal/config"
)

// NewDBConnection abre a conexão GORM para o tipo de banco configurado.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch settings.Type {
	case config.PostgresDbType:
		db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		return db, nil
	case config.SqliteDbType:
		return connectSQLite(settings.DSN, gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// connectSQLite usa uma única conexão: serializa as escritas no arquivo e
// mantém o mesmo banco quando o DSN é ":memory:".
func connectSQLite(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	return db, nil
}

// CloseDB fecha a conexão com o banco.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
