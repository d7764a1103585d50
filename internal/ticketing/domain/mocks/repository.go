// Package mocks contém dublês de teste do domínio de ticketing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
)

// MockTicketRepository é uma implementação de domain.TicketRepository com testify/mock.
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockTicketRepository) FindDirectConnections(ctx context.Context, fromStationID, toStationID int64) ([]domain.ConnectionDetails, error) {
	args := m.Called(ctx, fromStationID, toStationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConnectionDetails), args.Error(1)
}

func (m *MockTicketRepository) ConnectionExists(ctx context.Context, connectionID int64) (bool, error) {
	args := m.Called(ctx, connectionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockTicketRepository) ListBookings(ctx context.Context) ([]domain.BookingDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func (m *MockTicketRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
