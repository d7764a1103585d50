package application

import (
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

const CreateBookingCommandName = "CreateBooking"

// CreateBookingData contém os dados necessários para reservar uma conexão.
type CreateBookingData struct {
	ConnectionID  int64
	PassengerName string
}

// createBookingCommand é uma implementação privada do comando de reserva.
type createBookingCommand struct {
	data CreateBookingData
}

func (c createBookingCommand) CommandName() string {
	return CreateBookingCommandName
}

func (c createBookingCommand) Payload() CreateBookingData {
	return c.data
}

// NewCreateBookingCommand cria um novo comando para reservar uma conexão.
func NewCreateBookingCommand(data CreateBookingData) domain.Command[CreateBookingData] {
	return createBookingCommand{data: data}
}
