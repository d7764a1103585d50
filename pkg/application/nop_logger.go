package application

import "context"

type nopLogger struct{}

// NewNopLogger retorna um AppLogger que descarta tudo. Útil em testes.
func NewNopLogger() AppLogger {
	return nopLogger{}
}

func (nopLogger) Info(context.Context, string, map[string]interface{})  {}
func (nopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (nopLogger) Error(context.Context, string, map[string]interface{}) {}
func (nopLogger) Trace(context.Context, string, map[string]interface{}) {}
