package application

// Mensagens de validação devolvidas ao cliente.
const (
	MissingStationsMessage      = "Please provide 'from' and 'to' station IDs"
	MissingBookingFieldsMessage = "Please provide connection_id and passenger_name"
	InvalidConnectionIDMessage  = "connection_id must be an integer"
	InvalidPassengerNameMessage = "passenger_name must be a string"
)
