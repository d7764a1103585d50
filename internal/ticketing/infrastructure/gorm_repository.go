package infrastructure

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
	"github.com/ExoTV1102/Ticketsystem/pkg/application"
)

type GormTicketRepository struct {
	db     *gorm.DB
	logger application.AppLogger
}

func NewGormTicketRepository(db *gorm.DB, logger application.AppLogger) *GormTicketRepository {
	return &GormTicketRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GormTicketRepository) InitializeSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.Station{}, &domain.Connection{}, &domain.Booking{}); err != nil {
		return r.fail(ctx, "migrate schema", err, nil)
	}
	return nil
}

func (r *GormTicketRepository) SeedIfEmpty(ctx context.Context, seed Seed) (bool, error) {
	seeded := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Station{}).Count(&count).Error; err != nil {
			return domain.NewStorageError("count stations", err)
		}
		if count > 0 {
			return nil
		}

		stations := make([]domain.Station, len(seed.Stations))
		for i, name := range seed.Stations {
			stations[i] = domain.Station{Name: name}
		}
		if err := tx.Create(&stations).Error; err != nil {
			return domain.NewStorageError("create stations", err)
		}

		stationIDs := make(map[string]int64, len(stations))
		for _, station := range stations {
			stationIDs[station.Name] = station.ID
		}

		connections, err := resolveSeedConnections(seed.Connections, stationIDs)
		if err != nil {
			return err
		}
		if len(connections) > 0 {
			if err := tx.Omit(clause.Associations).Create(&connections).Error; err != nil {
				return domain.NewStorageError("create connections", err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		application.LogError(ctx, r.logger, "failed to seed database", err, nil)
		return false, err
	}

	if seeded {
		application.LogInfo(ctx, r.logger, "database seeded", map[string]interface{}{
			"stations":    len(seed.Stations),
			"connections": len(seed.Connections),
		})
	}
	return seeded, nil
}

func resolveSeedConnections(seedConnections []SeedConnection, stationIDs map[string]int64) ([]domain.Connection, error) {
	connections := make([]domain.Connection, 0, len(seedConnections))
	for _, c := range seedConnections {
		fromID, ok := stationIDs[c.From]
		if !ok {
			return nil, fmt.Errorf("seed connection references unknown station %q", c.From)
		}
		toID, ok := stationIDs[c.To]
		if !ok {
			return nil, fmt.Errorf("seed connection references unknown station %q", c.To)
		}
		connections = append(connections, domain.Connection{
			FromStationID: fromID,
			ToStationID:   toID,
			DepartureTime: c.DepartureTime,
			ArrivalTime:   c.ArrivalTime,
			Price:         c.Price,
		})
	}
	return connections, nil
}

func (r *GormTicketRepository) ListStations(ctx context.Context) ([]domain.Station, error) {
	stations := []domain.Station{}
	if err := r.db.WithContext(ctx).Order("id").Find(&stations).Error; err != nil {
		return nil, r.fail(ctx, "list stations", err, nil)
	}
	return stations, nil
}

func (r *GormTicketRepository) FindDirectConnections(ctx context.Context, fromStationID, toStationID int64) ([]domain.ConnectionDetails, error) {
	connections := []domain.ConnectionDetails{}

	err := r.db.WithContext(ctx).
		Table("connections AS c").
		Select("c.id, c.from_station_id, c.to_station_id, c.departure_time, c.arrival_time, c.price, " +
			"s1.name AS from_station_name, s2.name AS to_station_name").
		Joins("JOIN stations s1 ON c.from_station_id = s1.id").
		Joins("JOIN stations s2 ON c.to_station_id = s2.id").
		Where("c.from_station_id = ? AND c.to_station_id = ?", fromStationID, toStationID).
		Order("c.departure_time, c.id").
		Scan(&connections).Error
	if err != nil {
		return nil, r.fail(ctx, "find connections", err, map[string]interface{}{
			"from": fromStationID,
			"to":   toStationID,
		})
	}
	return connections, nil
}

func (r *GormTicketRepository) ConnectionExists(ctx context.Context, connectionID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Connection{}).Where("id = ?", connectionID).Count(&count).Error; err != nil {
		return false, r.fail(ctx, "find connection", err, map[string]interface{}{
			"connection_id": connectionID,
		})
	}
	return count > 0, nil
}

func (r *GormTicketRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error; err != nil {
		return r.fail(ctx, "create booking", err, map[string]interface{}{
			"connection_id": booking.ConnectionID,
		})
	}

	application.LogInfo(ctx, r.logger, "booking saved", map[string]interface{}{
		"booking_id":    booking.ID,
		"connection_id": booking.ConnectionID,
	})
	return nil
}

func (r *GormTicketRepository) ListBookings(ctx context.Context) ([]domain.BookingDetails, error) {
	bookings := []domain.BookingDetails{}

	err := r.db.WithContext(ctx).
		Table("bookings AS b").
		Select("b.id, b.connection_id, b.passenger_name, b.booking_date, " +
			"c.departure_time, c.arrival_time, c.price, " +
			"s1.name AS from_station_name, s2.name AS to_station_name").
		Joins("JOIN connections c ON b.connection_id = c.id").
		Joins("JOIN stations s1 ON c.from_station_id = s1.id").
		Joins("JOIN stations s2 ON c.to_station_id = s2.id").
		Order("b.booking_date DESC, b.id DESC").
		Scan(&bookings).Error
	if err != nil {
		return nil, r.fail(ctx, "list bookings", err, nil)
	}
	return bookings, nil
}

func (r *GormTicketRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return domain.NewStorageError("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.NewStorageError("ping", err)
	}
	return nil
}

func (r *GormTicketRepository) Close() error {
	return CloseDB(r.db)
}

func (r *GormTicketRepository) fail(ctx context.Context, op string, err error, fields map[string]interface{}) error {
	storageErr := domain.NewStorageError(op, err)
	logFields := map[string]interface{}{"op": op}
	for k, v := range fields {
		logFields[k] = v
	}
	application.LogError(ctx, r.logger, "storage operation failed", err, logFields)
	return storageErr
}
