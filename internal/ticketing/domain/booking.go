package domain

import (
	"context"
	"time"
)

// Booking é a reserva de um passageiro em uma conexão. Nunca é alterada
// depois de criada, e não há limite de reservas por conexão.
type Booking struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ConnectionID  int64     `json:"connection_id" gorm:"not null;index"`
	PassengerName string    `json:"passenger_name" gorm:"not null"`
	BookingDate   time.Time `json:"booking_date" gorm:"not null;default:CURRENT_TIMESTAMP;index"`

	Connection Connection `json:"-" gorm:"foreignKey:ConnectionID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingDetails é uma reserva com os dados da conexão e das estações.
type BookingDetails struct {
	ID              int64     `json:"id"`
	ConnectionID    int64     `json:"connection_id"`
	PassengerName   string    `json:"passenger_name"`
	BookingDate     time.Time `json:"booking_date"`
	DepartureTime   string    `json:"departure_time"`
	ArrivalTime     string    `json:"arrival_time"`
	Price           float64   `json:"price"`
	FromStationName string    `json:"from_station_name"`
	ToStationName   string    `json:"to_station_name"`
}

// TicketRepository é o contrato de leitura e escrita sobre o armazenamento.
// Toda falha do armazenamento volta como *StorageError.
type TicketRepository interface {
	ListStations(ctx context.Context) ([]Station, error)
	// FindDirectConnections devolve só conexões com exatamente essa origem e
	// esse destino, ordenadas por horário de partida. Sem resultado não é erro.
	FindDirectConnections(ctx context.Context, fromStationID, toStationID int64) ([]ConnectionDetails, error)
	ConnectionExists(ctx context.Context, connectionID int64) (bool, error)
	// CreateBooking insere a reserva e preenche booking.ID.
	CreateBooking(ctx context.Context, booking *Booking) error
	// ListBookings devolve as reservas da mais recente para a mais antiga.
	ListBookings(ctx context.Context) ([]BookingDetails, error)
}
