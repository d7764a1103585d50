package application

import (
	"time"

	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

const BookingCreatedEventName = "BookingCreated"

// BookingCreatedData é o payload publicado depois que uma reserva é gravada.
type BookingCreatedData struct {
	BookingID     int64     `json:"booking_id"`
	ConnectionID  int64     `json:"connection_id"`
	PassengerName string    `json:"passenger_name"`
	BookingDate   time.Time `json:"booking_date"`
}

type bookingCreatedEvent struct {
	data BookingCreatedData
}

func (e bookingCreatedEvent) EventName() string {
	return BookingCreatedEventName
}

func (e bookingCreatedEvent) Payload() BookingCreatedData {
	return e.data
}

func NewBookingCreatedEvent(data BookingCreatedData) domain.Event[BookingCreatedData] {
	return bookingCreatedEvent{data: data}
}
