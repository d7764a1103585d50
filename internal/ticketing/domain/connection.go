package domain

// Connection é uma viagem direta agendada entre duas estações.
// Horários são strings "HH:MM". Origem igual ao destino não é rejeitada.
type Connection struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	FromStationID int64   `json:"from_station_id" gorm:"not null;index:idx_connections_route"`
	ToStationID   int64   `json:"to_station_id" gorm:"not null;index:idx_connections_route"`
	DepartureTime string  `json:"departure_time" gorm:"not null"`
	ArrivalTime   string  `json:"arrival_time" gorm:"not null"`
	Price         float64 `json:"price" gorm:"not null"`

	FromStation Station `json:"-" gorm:"foreignKey:FromStationID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	ToStation   Station `json:"-" gorm:"foreignKey:ToStationID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Connection) TableName() string {
	return "connections"
}

// ConnectionDetails é uma conexão com os nomes das estações resolvidos na leitura.
type ConnectionDetails struct {
	ID              int64   `json:"id"`
	FromStationID   int64   `json:"from_station_id"`
	ToStationID     int64   `json:"to_station_id"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Price           float64 `json:"price"`
	FromStationName string  `json:"from_station_name"`
	ToStationName   string  `json:"to_station_name"`
}
