package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain/mocks"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
	pkgDomain "github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

type recordingEventBus struct {
	mu        sync.Mutex
	published []BookingCreatedData
	err       error
}

func (b *recordingEventBus) RegisterHandler(string, pkgApp.EventHandler[pkgDomain.Event[BookingCreatedData], BookingCreatedData]) {
}

func (b *recordingEventBus) Publish(_ context.Context, event pkgDomain.Event[BookingCreatedData]) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event.Payload())
	return b.err
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestCreateBookingHandler(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	storageErr := domain.NewStorageError("create booking", errors.New("disk I/O error"))

	tests := []struct {
		name       string
		data       CreateBookingData
		setup      func(repo *mocks.MockTicketRepository)
		publishErr error
		wantID     int64
		wantErr    error
		wantMsg    string
		published  int
	}{
		{
			name: "creates booking and publishes event",
			data: CreateBookingData{ConnectionID: 1, PassengerName: "Max"},
			setup: func(repo *mocks.MockTicketRepository) {
				repo.On("ConnectionExists", mock.Anything, int64(1)).Return(true, nil)
				repo.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
					return b.ConnectionID == 1 && b.PassengerName == "Max" && b.BookingDate.Equal(now) && b.BookingDate.Location() == time.UTC
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Booking).ID = 1
				}).Return(nil)
			},
			wantID:    1,
			published: 1,
		},
		{
			name: "publish failure does not fail the booking",
			data: CreateBookingData{ConnectionID: 1, PassengerName: "Max"},
			setup: func(repo *mocks.MockTicketRepository) {
				repo.On("ConnectionExists", mock.Anything, int64(1)).Return(true, nil)
				repo.On("CreateBooking", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Booking).ID = 2
				}).Return(nil)
			},
			publishErr: errors.New("broker down"),
			wantID:     2,
			published:  1,
		},
		{
			name:    "missing passenger name",
			data:    CreateBookingData{ConnectionID: 1},
			setup:   func(*mocks.MockTicketRepository) {},
			wantMsg: MissingBookingFieldsMessage,
		},
		{
			name:    "missing connection id",
			data:    CreateBookingData{PassengerName: "Max"},
			setup:   func(*mocks.MockTicketRepository) {},
			wantMsg: MissingBookingFieldsMessage,
		},
		{
			name: "unknown connection",
			data: CreateBookingData{ConnectionID: 999, PassengerName: "Max"},
			setup: func(repo *mocks.MockTicketRepository) {
				repo.On("ConnectionExists", mock.Anything, int64(999)).Return(false, nil)
			},
			wantErr: domain.ErrReferenceNotFound,
			wantMsg: "connection 999 not found",
		},
		{
			name: "storage failure on insert",
			data: CreateBookingData{ConnectionID: 1, PassengerName: "Max"},
			setup: func(repo *mocks.MockTicketRepository) {
				repo.On("ConnectionExists", mock.Anything, int64(1)).Return(true, nil)
				repo.On("CreateBooking", mock.Anything, mock.Anything).Return(storageErr)
			},
			wantErr: storageErr,
			wantMsg: "disk I/O error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockTicketRepository{}
			tt.setup(repo)
			events := &recordingEventBus{err: tt.publishErr}

			handler := NewCreateBookingHandler(events, repo, fixedClock(now), pkgApp.NewNopLogger())
			booking, err := handler.Handle(context.Background(), NewCreateBookingCommand(tt.data))

			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Empty(t, events.published)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, booking.ID)
				assert.Equal(t, tt.data.PassengerName, booking.PassengerName)
				require.Len(t, events.published, tt.published)
				assert.Equal(t, booking.ID, events.published[0].BookingID)
				assert.Equal(t, booking.BookingDate, events.published[0].BookingDate)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCreateBookingHandler_ValidationSkipsStorage(t *testing.T) {
	repo := &mocks.MockTicketRepository{}
	handler := NewCreateBookingHandler(&recordingEventBus{}, repo, nil, pkgApp.NewNopLogger())

	_, err := handler.Handle(context.Background(), NewCreateBookingCommand(CreateBookingData{}))

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "ConnectionExists", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestQueryHandlers(t *testing.T) {
	ctx := context.Background()
	storageErr := domain.NewStorageError("list stations", errors.New("database is locked"))

	t.Run("list stations", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{}
		repo.On("ListStations", mock.Anything).Return([]domain.Station{{ID: 1, Name: "Berlin"}}, nil)

		stations, err := NewListStationsHandler(repo, pkgApp.NewNopLogger()).Handle(ctx, NewListStationsQuery())
		require.NoError(t, err)
		assert.Equal(t, []domain.Station{{ID: 1, Name: "Berlin"}}, stations)
	})

	t.Run("list stations storage failure", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{}
		repo.On("ListStations", mock.Anything).Return(nil, storageErr)

		_, err := NewListStationsHandler(repo, pkgApp.NewNopLogger()).Handle(ctx, NewListStationsQuery())
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("find direct connections", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{}
		repo.On("FindDirectConnections", mock.Anything, int64(1), int64(2)).Return([]domain.ConnectionDetails{}, nil)

		query := NewFindDirectConnectionsQuery(FindDirectConnectionsData{FromStationID: 1, ToStationID: 2})
		connections, err := NewFindDirectConnectionsHandler(repo, pkgApp.NewNopLogger()).Handle(ctx, query)
		require.NoError(t, err)
		assert.NotNil(t, connections)
		assert.Empty(t, connections)
		repo.AssertExpectations(t)
	})

	t.Run("list bookings storage failure", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{}
		repo.On("ListBookings", mock.Anything).Return(nil, storageErr)

		_, err := NewListBookingsHandler(repo, pkgApp.NewNopLogger()).Handle(ctx, NewListBookingsQuery())
		assert.EqualError(t, err, "database is locked")
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{}
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewListBookingsHandler(repo, pkgApp.NewNopLogger()).Handle(cancelled, NewListBookingsQuery())
		assert.ErrorIs(t, err, context.Canceled)
		repo.AssertNotCalled(t, "ListBookings", mock.Anything)
	})
}
