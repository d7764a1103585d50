package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	"github.com/ExoTV1102/Ticketsystem/pkg/application"
)

// InMemoryTicketRepository guarda estações, conexões e reservas em memória.
// Os ids são sequenciais a partir de 1, como no banco.
type InMemoryTicketRepository struct {
	mu          sync.RWMutex
	stations    []domain.Station
	connections []domain.Connection
	bookings    []domain.Booking
	logger      application.AppLogger
}

func NewInMemoryTicketRepository(logger application.AppLogger) *InMemoryTicketRepository {
	return &InMemoryTicketRepository{
		logger: logger,
	}
}

func (r *InMemoryTicketRepository) InitializeSchema(_ context.Context) error {
	return nil
}

func (r *InMemoryTicketRepository) SeedIfEmpty(ctx context.Context, seed Seed) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.stations) > 0 {
		return false, nil
	}

	stationIDs := make(map[string]int64, len(seed.Stations))
	stations := make([]domain.Station, 0, len(seed.Stations))
	for i, name := range seed.Stations {
		if _, exists := stationIDs[name]; exists {
			return false, domain.NewStorageError("create stations", fmt.Errorf("station %q already exists", name))
		}
		id := int64(i + 1)
		stationIDs[name] = id
		stations = append(stations, domain.Station{ID: id, Name: name})
	}

	connections, err := resolveSeedConnections(seed.Connections, stationIDs)
	if err != nil {
		return false, err
	}
	for i := range connections {
		connections[i].ID = int64(i + 1)
	}

	r.stations = stations
	r.connections = connections

	application.LogInfo(ctx, r.logger, "database seeded", map[string]interface{}{
		"stations":    len(stations),
		"connections": len(connections),
	})
	return true, nil
}

func (r *InMemoryTicketRepository) ListStations(_ context.Context) ([]domain.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stations := make([]domain.Station, len(r.stations))
	copy(stations, r.stations)
	return stations, nil
}

func (r *InMemoryTicketRepository) FindDirectConnections(ctx context.Context, fromStationID, toStationID int64) ([]domain.ConnectionDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connections := []domain.ConnectionDetails{}
	for _, c := range r.connections {
		if c.FromStationID != fromStationID || c.ToStationID != toStationID {
			continue
		}
		connections = append(connections, domain.ConnectionDetails{
			ID:              c.ID,
			FromStationID:   c.FromStationID,
			ToStationID:     c.ToStationID,
			DepartureTime:   c.DepartureTime,
			ArrivalTime:     c.ArrivalTime,
			Price:           c.Price,
			FromStationName: r.stationName(c.FromStationID),
			ToStationName:   r.stationName(c.ToStationID),
		})
	}

	sort.SliceStable(connections, func(i, j int) bool {
		if connections[i].DepartureTime != connections[j].DepartureTime {
			return connections[i].DepartureTime < connections[j].DepartureTime
		}
		return connections[i].ID < connections[j].ID
	})

	application.LogDebug(ctx, r.logger, "connections found", map[string]interface{}{
		"from":  fromStationID,
		"to":    toStationID,
		"count": len(connections),
	})
	return connections, nil
}

func (r *InMemoryTicketRepository) ConnectionExists(_ context.Context, connectionID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.connection(connectionID)
	return ok, nil
}

func (r *InMemoryTicketRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.connection(booking.ConnectionID); !ok {
		err := domain.NewStorageError("create booking", errors.New("FOREIGN KEY constraint failed"))
		application.LogError(ctx, r.logger, "failed to save booking", err, map[string]interface{}{
			"connection_id": booking.ConnectionID,
		})
		return err
	}

	booking.ID = int64(len(r.bookings) + 1)
	r.bookings = append(r.bookings, *booking)

	application.LogInfo(ctx, r.logger, "booking saved", map[string]interface{}{
		"booking_id":    booking.ID,
		"connection_id": booking.ConnectionID,
	})
	return nil
}

func (r *InMemoryTicketRepository) ListBookings(_ context.Context) ([]domain.BookingDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]domain.BookingDetails, 0, len(r.bookings))
	for _, b := range r.bookings {
		c, _ := r.connection(b.ConnectionID)
		bookings = append(bookings, domain.BookingDetails{
			ID:              b.ID,
			ConnectionID:    b.ConnectionID,
			PassengerName:   b.PassengerName,
			BookingDate:     b.BookingDate,
			DepartureTime:   c.DepartureTime,
			ArrivalTime:     c.ArrivalTime,
			Price:           c.Price,
			FromStationName: r.stationName(c.FromStationID),
			ToStationName:   r.stationName(c.ToStationID),
		})
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].BookingDate.Equal(bookings[j].BookingDate) {
			return bookings[i].BookingDate.After(bookings[j].BookingDate)
		}
		return bookings[i].ID > bookings[j].ID
	})
	return bookings, nil
}

func (r *InMemoryTicketRepository) Ping(_ context.Context) error {
	return nil
}

func (r *InMemoryTicketRepository) Close() error {
	return nil
}

// connection e stationName exigem o lock já adquirido.
func (r *InMemoryTicketRepository) connection(id int64) (domain.Connection, bool) {
	if id < 1 || id > int64(len(r.connections)) {
		return domain.Connection{}, false
	}
	return r.connections[id-1], true
}

func (r *InMemoryTicketRepository) stationName(id int64) string {
	if id < 1 || id > int64(len(r.stations)) {
		return ""
	}
	return r.stations[id-1].Name
}
