package application

import (
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
	pkgDomain "github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

type (
	StationsQueryBus    = pkgApp.QueryBus[pkgDomain.Query[ListStationsData], ListStationsData, []domain.Station]
	ConnectionsQueryBus = pkgApp.QueryBus[pkgDomain.Query[FindDirectConnectionsData], FindDirectConnectionsData, []domain.ConnectionDetails]
	BookingsQueryBus    = pkgApp.QueryBus[pkgDomain.Query[ListBookingsData], ListBookingsData, []domain.BookingDetails]
	BookingCommandBus   = pkgApp.CommandBus[pkgDomain.Command[CreateBookingData], CreateBookingData, domain.Booking]
	BookingEventBus     = pkgApp.EventBus[pkgDomain.Event[BookingCreatedData], BookingCreatedData]
)

// Buses agrupa os barramentos usados pelo slice de ticketing.
type Buses struct {
	Stations    StationsQueryBus
	Connections ConnectionsQueryBus
	Bookings    BookingsQueryBus
	Commands    BookingCommandBus
	Events      BookingEventBus
}
