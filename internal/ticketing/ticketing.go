package ticketing

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/application"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/infrastructure"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
)

type TicketingSlice struct {
	httpHandler *infrastructure.TicketHTTPHandler
}

// NewTicketingSlice registra os handlers do slice nos barramentos e monta a
// fachada HTTP sobre eles.
func NewTicketingSlice(
	buses application.Buses,
	repository domain.TicketRepository,
	health infrastructure.HealthChecker,
	clock application.Clock,
	requestTimeout time.Duration,
	logger pkgApp.AppLogger,
) *TicketingSlice {
	buses.Stations.RegisterHandler(application.ListStationsQueryName, application.NewListStationsHandler(repository, logger))
	buses.Connections.RegisterHandler(application.FindDirectConnectionsQueryName, application.NewFindDirectConnectionsHandler(repository, logger))
	buses.Bookings.RegisterHandler(application.ListBookingsQueryName, application.NewListBookingsHandler(repository, logger))
	buses.Commands.RegisterHandler(application.CreateBookingCommandName, application.NewCreateBookingHandler(buses.Events, repository, clock, logger))
	buses.Events.RegisterHandler(application.BookingCreatedEventName, application.NewBookingCreatedEventHandler(logger))

	return &TicketingSlice{
		httpHandler: infrastructure.NewTicketHTTPHandler(buses, health, requestTimeout, logger),
	}
}

func (s *TicketingSlice) RegisterRoutes(router chi.Router) {
	s.httpHandler.RegisterRoutes(router)
}
