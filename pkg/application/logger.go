package application

import (
	"context"
	"encoding/json"
)

// AppLogger é o contrato de log estruturado usado por toda a aplicação.
type AppLogger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})
	Trace(ctx context.Context, msg string, fields map[string]interface{})
}

func LogError(ctx context.Context, logger AppLogger, message string, err error, fields map[string]interface{}) {
	logData := copyFields(fields)
	if err != nil {
		logData["error"] = err.Error()
	}
	logger.Error(ctx, message, logData)
}

func LogInfo(ctx context.Context, logger AppLogger, message string, fields map[string]interface{}) {
	logger.Info(ctx, message, copyFields(fields))
}

func LogDebug(ctx context.Context, logger AppLogger, message string, fields map[string]interface{}) {
	logger.Debug(ctx, message, copyFields(fields))
}

func LogTrace(ctx context.Context, logger AppLogger, message string, fields map[string]interface{}) {
	logger.Trace(ctx, message, copyFields(fields))
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	logData := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		logData[k] = v
	}
	return logData
}

func MarshalPayload[T any](payload T) ([]byte, error) {
	return json.Marshal(payload)
}

type contextKey string

const requestIDKey contextKey = "requestID"

// WithRequestID anexa o identificador da requisição ao contexto.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext retorna o identificador da requisição, se houver.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok && requestID != ""
}
