package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/application"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
)

const successMessage = "success"

// HealthChecker confirma que o armazenamento responde.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type bookingResponse struct {
	ID            int64  `json:"id"`
	ConnectionID  int64  `json:"connection_id"`
	PassengerName string `json:"passenger_name"`
}

type TicketHTTPHandler struct {
	buses          application.Buses
	health         HealthChecker
	requestTimeout time.Duration
	logger         pkgApp.AppLogger
}

func NewTicketHTTPHandler(buses application.Buses, health HealthChecker, requestTimeout time.Duration, logger pkgApp.AppLogger) *TicketHTTPHandler {
	if requestTimeout <= 0 {
		requestTimeout = 10 * time.Second
	}
	return &TicketHTTPHandler{
		buses:          buses,
		health:         health,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

func (h *TicketHTTPHandler) HandleListStations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	stations, err := h.buses.Stations.Dispatch(ctx, application.NewListStationsQuery())
	if err != nil {
		h.handleError(ctx, w, err)
		return
	}
	h.writeSuccess(ctx, w, stations)
}

func (h *TicketHTTPHandler) HandleFindConnections(w http.ResponseWriter, r *http.Request) {
	data, err := ParseSearchConnectionsRequest(r)
	if err != nil {
		h.handleError(r.Context(), w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	connections, err := h.buses.Connections.Dispatch(ctx, application.NewFindDirectConnectionsQuery(data))
	if err != nil {
		h.handleError(ctx, w, err)
		return
	}
	h.writeSuccess(ctx, w, connections)
}

func (h *TicketHTTPHandler) HandleCreateBooking(w http.ResponseWriter, r *http.Request) {
	data, err := ParseCreateBookingRequest(r)
	if err != nil {
		h.handleError(r.Context(), w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	booking, err := h.buses.Commands.Dispatch(ctx, application.NewCreateBookingCommand(data))
	if err != nil {
		h.handleError(ctx, w, err)
		return
	}
	h.writeSuccess(ctx, w, bookingResponse{
		ID:            booking.ID,
		ConnectionID:  booking.ConnectionID,
		PassengerName: booking.PassengerName,
	})
}

func (h *TicketHTTPHandler) HandleListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	bookings, err := h.buses.Bookings.Dispatch(ctx, application.NewListBookingsQuery())
	if err != nil {
		h.handleError(ctx, w, err)
		return
	}
	h.writeSuccess(ctx, w, bookings)
}

func (h *TicketHTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		h.handleError(ctx, w, err)
		return
	}
	h.writeSuccess(ctx, w, "ok")
}

func (h *TicketHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Get("/healthz", h.HandleHealth)
	router.Route("/api", func(r chi.Router) {
		r.Get("/stations", h.HandleListStations)
		r.Get("/connections", h.HandleFindConnections)
		r.Post("/bookings", h.HandleCreateBooking)
		r.Get("/bookings", h.HandleListBookings)
	})
}

func (h *TicketHTTPHandler) writeSuccess(ctx context.Context, w http.ResponseWriter, data interface{}) {
	h.writeJSON(ctx, w, http.StatusOK, envelope{Message: successMessage, Data: data})
}

// handleError devolve todo erro como 400 com a mensagem original.
func (h *TicketHTTPHandler) handleError(ctx context.Context, w http.ResponseWriter, err error) {
	pkgApp.LogInfo(ctx, h.logger, "request failed", map[string]interface{}{
		"error": err.Error(),
	})
	h.writeJSON(ctx, w, http.StatusBadRequest, errorEnvelope{Error: err.Error()})
}

func (h *TicketHTTPHandler) writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to encode response", err, nil)
	}
}
