// Package config carrega a configuração do processo a partir de variáveis de
// ambiente (PORT, DATABASE_TYPE, DATABASE_DSN, EVENTS_TRANSPORT, ...).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
	MemoryDbType   = "memory"
)

const (
	MemoryTransport    = "memory"
	GoChannelTransport = "gochannel"
	RedisTransport     = "redis"
	KafkaTransport     = "kafka"
)

type Settings struct {
	Port     int              `mapstructure:"port" validate:"required,min=1,max=65535"`
	Log      LogSettings      `mapstructure:"log"`
	Database DatabaseSettings `mapstructure:"database"`
	Events   EventSettings    `mapstructure:"events"`
	HTTP     HTTPSettings     `mapstructure:"http"`
}

type LogSettings struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres memory"`
	DSN  string `mapstructure:"dsn" validate:"required_unless=Type memory"`
}

type EventSettings struct {
	Transport     string `mapstructure:"transport" validate:"required,oneof=memory gochannel redis kafka"`
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Transport redis"`
	KafkaBrokers  string `mapstructure:"kafka_brokers" validate:"required_if=Transport kafka"`
	ConsumerGroup string `mapstructure:"consumer_group" validate:"required"`
}

// Brokers devolve a lista de brokers Kafka separada por vírgulas.
func (s EventSettings) Brokers() []string {
	var brokers []string
	for _, broker := range strings.Split(s.KafkaBrokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

type HTTPSettings struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	CORSOrigins    string        `mapstructure:"cors_origins"`
}

// AllowedOrigins devolve as origens CORS separadas por vírgulas.
func (s HTTPSettings) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(s.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}
	return nil
}

// Load lê a configuração do ambiente. Chaves aninhadas viram variáveis com
// "_" (database.dsn -> DATABASE_DSN).
func Load() (*Settings, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Settings, error) {
	v.SetDefault("port", 4000)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "tickets.db")
	v.SetDefault("events.transport", MemoryTransport)
	v.SetDefault("events.redis_addr", "localhost:6379")
	v.SetDefault("events.kafka_brokers", "localhost:9092")
	v.SetDefault("events.consumer_group", "ticketsystem")
	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("http.cors_origins", "*")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}
