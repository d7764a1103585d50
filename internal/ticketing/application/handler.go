package application

import (
	"context"
	"time"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
	pkgDomain "github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

// Clock fornece o instante usado como booking_date.
type Clock func() time.Time

type listStationsHandler struct {
	repository domain.TicketRepository
	logger     pkgApp.AppLogger
}

func (h *listStationsHandler) Handle(ctx context.Context, _ pkgDomain.Query[ListStationsData]) ([]domain.Station, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return nil, ctx.Err()
	}

	stations, err := h.repository.ListStations(ctx)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to list stations", err, nil)
		return nil, err
	}
	return stations, nil
}

func NewListStationsHandler(repo domain.TicketRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[ListStationsData], ListStationsData, []domain.Station] {
	return &listStationsHandler{
		repository: repo,
		logger:     logger,
	}
}

type findDirectConnectionsHandler struct {
	repository domain.TicketRepository
	logger     pkgApp.AppLogger
}

func (h *findDirectConnectionsHandler) Handle(ctx context.Context, query pkgDomain.Query[FindDirectConnectionsData]) ([]domain.ConnectionDetails, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return nil, ctx.Err()
	}

	data := query.Payload()
	connections, err := h.repository.FindDirectConnections(ctx, data.FromStationID, data.ToStationID)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to find connections", err, map[string]interface{}{
			"from": data.FromStationID,
			"to":   data.ToStationID,
		})
		return nil, err
	}

	pkgApp.LogDebug(ctx, h.logger, "connections found", map[string]interface{}{
		"from":  data.FromStationID,
		"to":    data.ToStationID,
		"count": len(connections),
	})
	return connections, nil
}

func NewFindDirectConnectionsHandler(repo domain.TicketRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[FindDirectConnectionsData], FindDirectConnectionsData, []domain.ConnectionDetails] {
	return &findDirectConnectionsHandler{
		repository: repo,
		logger:     logger,
	}
}

type listBookingsHandler struct {
	repository domain.TicketRepository
	logger     pkgApp.AppLogger
}

func (h *listBookingsHandler) Handle(ctx context.Context, _ pkgDomain.Query[ListBookingsData]) ([]domain.BookingDetails, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return nil, ctx.Err()
	}

	bookings, err := h.repository.ListBookings(ctx)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to list bookings", err, nil)
		return nil, err
	}
	return bookings, nil
}

func NewListBookingsHandler(repo domain.TicketRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[ListBookingsData], ListBookingsData, []domain.BookingDetails] {
	return &listBookingsHandler{
		repository: repo,
		logger:     logger,
	}
}

type createBookingHandler struct {
	eventBus   BookingEventBus
	repository domain.TicketRepository
	clock      Clock
	logger     pkgApp.AppLogger
}

func (h *createBookingHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateBookingData]) (domain.Booking, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return domain.Booking{}, ctx.Err()
	}

	data := command.Payload()
	if data.ConnectionID == 0 || data.PassengerName == "" {
		return domain.Booking{}, domain.NewValidationError(MissingBookingFieldsMessage)
	}

	exists, err := h.repository.ConnectionExists(ctx, data.ConnectionID)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to look up connection", err, map[string]interface{}{
			"connection_id": data.ConnectionID,
		})
		return domain.Booking{}, err
	}
	if !exists {
		err := &domain.ReferenceNotFoundError{Entity: "connection", ID: data.ConnectionID}
		pkgApp.LogInfo(ctx, h.logger, "booking rejected", map[string]interface{}{
			"connection_id": data.ConnectionID,
			"reason":        err.Error(),
		})
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		ConnectionID:  data.ConnectionID,
		PassengerName: data.PassengerName,
		BookingDate:   h.clock().UTC(),
	}
	if err := h.repository.CreateBooking(ctx, &booking); err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to save booking", err, map[string]interface{}{
			"connection_id": data.ConnectionID,
		})
		return domain.Booking{}, err
	}

	// A reserva já está gravada; falha na publicação não desfaz a operação.
	event := NewBookingCreatedEvent(BookingCreatedData{
		BookingID:     booking.ID,
		ConnectionID:  booking.ConnectionID,
		PassengerName: booking.PassengerName,
		BookingDate:   booking.BookingDate,
	})
	if err := h.eventBus.Publish(ctx, event); err != nil {
		pkgApp.LogError(ctx, h.logger, "failed to publish booking event", err, map[string]interface{}{
			"booking_id": booking.ID,
		})
	}

	pkgApp.LogInfo(ctx, h.logger, "booking created", map[string]interface{}{
		"booking_id":    booking.ID,
		"connection_id": booking.ConnectionID,
	})
	return booking, nil
}

func NewCreateBookingHandler(eventBus BookingEventBus, repo domain.TicketRepository, clock Clock, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateBookingData], CreateBookingData, domain.Booking] {
	if clock == nil {
		clock = time.Now
	}
	return &createBookingHandler{
		eventBus:   eventBus,
		repository: repo,
		clock:      clock,
		logger:     logger,
	}
}

type bookingCreatedEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *bookingCreatedEventHandler) Handle(ctx context.Context, event pkgDomain.Event[BookingCreatedData]) error {
	data := event.Payload()
	pkgApp.LogInfo(ctx, h.logger, "booking event received", map[string]interface{}{
		"event":          event.EventName(),
		"booking_id":     data.BookingID,
		"connection_id":  data.ConnectionID,
		"passenger_name": data.PassengerName,
	})
	return nil
}

func NewBookingCreatedEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[BookingCreatedData], BookingCreatedData] {
	return &bookingCreatedEventHandler{
		logger: logger,
	}
}
