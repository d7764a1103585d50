package infrastructure

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ExoTV1102/Ticketsystem/internal/config"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/application"
	pkgApp "github.com/ExoTV1102/Ticketsystem/pkg/application"
	pkgDomain "github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

type bookingCreatedRecorder struct {
	mu       sync.Mutex
	received []application.BookingCreatedData
}

func (r *bookingCreatedRecorder) Handle(_ context.Context, event pkgDomain.Event[application.BookingCreatedData]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, event.Payload())
	return nil
}

func (r *bookingCreatedRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

func TestNewBookingEventBus_DeliversBookingCreated(t *testing.T) {
	for _, transport := range []string{config.MemoryTransport, config.GoChannelTransport} {
		t.Run(transport, func(t *testing.T) {
			ctx := context.Background()
			bus, closeBus, err := NewBookingEventBus(ctx, config.EventSettings{Transport: transport}, pkgApp.NewNopLogger())
			require.NoError(t, err)
			t.Cleanup(func() { _ = closeBus() })

			recorder := &bookingCreatedRecorder{}
			bus.RegisterHandler(application.BookingCreatedEventName, recorder)

			bookingDate := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
			err = bus.Publish(ctx, application.NewBookingCreatedEvent(application.BookingCreatedData{
				BookingID:     1,
				ConnectionID:  1,
				PassengerName: "Max",
				BookingDate:   bookingDate,
			}))
			require.NoError(t, err)

			assert.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, 10*time.Millisecond)

			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			assert.Equal(t, "Max", recorder.received[0].PassengerName)
			assert.True(t, bookingDate.Equal(recorder.received[0].BookingDate))
		})
	}
}

func TestNewBookingEventBus_UnsupportedTransport(t *testing.T) {
	_, _, err := NewBookingEventBus(context.Background(), config.EventSettings{Transport: "nats"}, pkgApp.NewNopLogger())
	assert.EqualError(t, err, "unsupported events transport: nats")
}
