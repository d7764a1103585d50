package infrastructure

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ExoTV1102/Ticketsystem/pkg/application"
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

const RequestIDHeader = "X-Request-ID"

// GenerateUUID é o IDGenerator padrão (UUID v4).
func GenerateUUID() string {
	return uuid.NewString()
}

// RequestID propaga o X-Request-ID recebido, ou gera um novo, para o
// contexto da requisição e para o cabeçalho da resposta.
func RequestID(idGenerator domain.IDGenerator[string]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = idGenerator()
			}
			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(application.WithRequestID(r.Context(), requestID)))
		})
	}
}
