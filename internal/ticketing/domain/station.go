package domain

// Station é um local nomeado que pode ser origem ou destino de uma conexão.
type Station struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

func (Station) TableName() string {
	return "stations"
}
