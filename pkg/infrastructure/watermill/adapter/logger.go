package adapter

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
)

// loggerAdapter faz o watermill (publishers, subscribers e gochannel)
// escrever no AppLogger da aplicação, com os campos acumulados via With.
type loggerAdapter struct {
	logger application.AppLogger
	base   watermill.LogFields
}

func NewWatermillLoggerAdapter(appLogger application.AppLogger) watermill.LoggerAdapter {
	return &loggerAdapter{logger: appLogger}
}

func (a *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	application.LogError(context.Background(), a.logger, msg, err, a.merge(fields))
}

func (a *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	application.LogInfo(context.Background(), a.logger, msg, a.merge(fields))
}

func (a *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	application.LogDebug(context.Background(), a.logger, msg, a.merge(fields))
}

func (a *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	application.LogTrace(context.Background(), a.logger, msg, a.merge(fields))
}

func (a *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{logger: a.logger, base: a.base.Add(fields)}
}

func (a *loggerAdapter) merge(fields watermill.LogFields) map[string]interface{} {
	return a.base.Add(fields)
}
