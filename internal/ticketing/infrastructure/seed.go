package infrastructure

// SeedConnection descreve uma conexão do seed pelos nomes das estações.
type SeedConnection struct {
	From          string
	To            string
	DepartureTime string
	ArrivalTime   string
	Price         float64
}

// Seed é o conjunto fixo de dados inserido em um banco vazio.
type Seed struct {
	Stations    []string
	Connections []SeedConnection
}

// DefaultSeed contém as estações alemãs e austríacas e suas conexões diretas.
// A ordem das estações define os ids 1..9 em um banco novo.
var DefaultSeed = Seed{
	Stations: []string{
		"Berlin", "München", "Hamburg", "Frankfurt", "Köln",
		"Wien", "Salzburg", "Innsbruck", "Graz",
	},
	Connections: []SeedConnection{
		// Berlin <-> München
		{"Berlin", "München", "06:00", "10:30", 89.90},
		{"Berlin", "München", "08:00", "12:30", 99.90},
		{"Berlin", "München", "10:00", "14:30", 109.90},
		{"Berlin", "München", "12:00", "16:30", 89.90},
		{"Berlin", "München", "14:00", "18:30", 79.90},
		{"Berlin", "München", "16:00", "20:30", 69.90},
		{"München", "Berlin", "07:00", "11:30", 89.90},
		{"München", "Berlin", "09:00", "13:30", 99.90},
		{"München", "Berlin", "11:00", "15:30", 109.90},
		{"München", "Berlin", "13:00", "17:30", 89.90},
		{"München", "Berlin", "15:00", "19:30", 79.90},

		// Hamburg <-> Berlin
		{"Hamburg", "Berlin", "07:30", "09:15", 39.90},
		{"Hamburg", "Berlin", "09:30", "11:15", 49.90},
		{"Hamburg", "Berlin", "13:30", "15:15", 29.90},
		{"Berlin", "Hamburg", "08:00", "09:45", 39.90},
		{"Berlin", "Hamburg", "10:00", "11:45", 49.90},
		{"Berlin", "Hamburg", "16:00", "17:45", 59.90},

		// München <-> Wien
		{"München", "Wien", "07:30", "11:30", 65.50},
		{"München", "Wien", "09:30", "13:30", 75.50},
		{"München", "Wien", "13:30", "17:30", 55.50},
		{"Wien", "München", "08:30", "12:30", 65.50},
		{"Wien", "München", "10:30", "14:30", 75.50},
		{"Wien", "München", "14:30", "18:30", 55.50},

		// München <-> Salzburg
		{"München", "Salzburg", "08:00", "09:30", 25.90},
		{"München", "Salzburg", "10:00", "11:30", 29.90},
		{"München", "Salzburg", "14:00", "15:30", 22.90},
		{"Salzburg", "München", "09:00", "10:30", 25.90},
		{"Salzburg", "München", "11:00", "12:30", 29.90},
		{"Salzburg", "München", "15:00", "16:30", 22.90},

		// Wien <-> Salzburg
		{"Wien", "Salzburg", "07:00", "09:30", 49.90},
		{"Wien", "Salzburg", "09:00", "11:30", 59.90},
		{"Wien", "Salzburg", "15:00", "17:30", 45.90},
		{"Salzburg", "Wien", "08:00", "10:30", 49.90},
		{"Salzburg", "Wien", "10:00", "12:30", 59.90},
		{"Salzburg", "Wien", "16:00", "18:30", 45.90},

		// Wien <-> Graz
		{"Wien", "Graz", "08:00", "10:30", 35.90},
		{"Wien", "Graz", "12:00", "14:30", 35.90},
		{"Graz", "Wien", "09:00", "11:30", 35.90},
		{"Graz", "Wien", "13:00", "15:30", 35.90},

		// Innsbruck <-> Salzburg
		{"Innsbruck", "Salzburg", "08:00", "10:00", 32.90},
		{"Salzburg", "Innsbruck", "11:00", "13:00", 32.90},

		// Frankfurt <-> Köln
		{"Frankfurt", "Köln", "07:00", "08:00", 29.90},
		{"Frankfurt", "Köln", "09:00", "10:00", 39.90},
		{"Köln", "Frankfurt", "08:00", "09:00", 29.90},
		{"Köln", "Frankfurt", "10:00", "11:00", 39.90},
	},
}
