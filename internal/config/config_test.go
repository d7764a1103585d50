package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, settings.Port)
	assert.Equal(t, "info", settings.Log.Level)
	assert.Equal(t, SqliteDbType, settings.Database.Type)
	assert.Equal(t, "tickets.db", settings.Database.DSN)
	assert.Equal(t, MemoryTransport, settings.Events.Transport)
	assert.Equal(t, 10*time.Second, settings.HTTP.RequestTimeout)
	assert.Equal(t, []string{"*"}, settings.HTTP.AllowedOrigins())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=tickets")
	t.Setenv("EVENTS_TRANSPORT", "kafka")
	t.Setenv("EVENTS_KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("HTTP_REQUEST_TIMEOUT", "3s")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, settings.Port)
	assert.Equal(t, PostgresDbType, settings.Database.Type)
	assert.Equal(t, "host=db user=tickets", settings.Database.DSN)
	assert.Equal(t, KafkaTransport, settings.Events.Transport)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, settings.Events.Brokers())
	assert.Equal(t, 3*time.Second, settings.HTTP.RequestTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "unknown database", env: map[string]string{"DATABASE_TYPE": "mysql"}},
		{name: "unknown transport", env: map[string]string{"EVENTS_TRANSPORT": "nats"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      DatabaseSettings
		expectedError bool
	}{
		{name: "sqlite with dsn", settings: DatabaseSettings{Type: SqliteDbType, DSN: "tickets.db"}},
		{name: "memory without dsn", settings: DatabaseSettings{Type: MemoryDbType}},
		{name: "postgres without dsn", settings: DatabaseSettings{Type: PostgresDbType}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Settings{
				Port:     4000,
				Log:      LogSettings{Level: "info"},
				Database: tt.settings,
				Events:   EventSettings{Transport: MemoryTransport, ConsumerGroup: "ticketsystem"},
				HTTP:     HTTPSettings{RequestTimeout: time.Second},
			}
			err := settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
