package infrastructure

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/application"
	"github.com/ExoTV1102/Ticketsystem/internal/ticketing/domain"
)

var validate = validator.New()

// SearchConnectionsRequest são os parâmetros de GET /api/connections.
type SearchConnectionsRequest struct {
	From string `validate:"required,numeric"`
	To   string `validate:"required,numeric"`
}

func ParseSearchConnectionsRequest(r *http.Request) (application.FindDirectConnectionsData, error) {
	query := r.URL.Query()
	req := SearchConnectionsRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
	return req.Validate()
}

// Validate confere a presença dos dois ids e os converte. Id não numérico
// recebe a mesma mensagem de parâmetro ausente.
func (req SearchConnectionsRequest) Validate() (application.FindDirectConnectionsData, error) {
	if err := validate.Struct(req); err != nil {
		return application.FindDirectConnectionsData{}, domain.NewValidationError(application.MissingStationsMessage)
	}

	from, err := strconv.ParseInt(req.From, 10, 64)
	if err != nil {
		return application.FindDirectConnectionsData{}, domain.NewValidationError(application.MissingStationsMessage)
	}
	to, err := strconv.ParseInt(req.To, 10, 64)
	if err != nil {
		return application.FindDirectConnectionsData{}, domain.NewValidationError(application.MissingStationsMessage)
	}

	return application.FindDirectConnectionsData{
		FromStationID: from,
		ToStationID:   to,
	}, nil
}

// CreateBookingRequest é o corpo de POST /api/bookings.
type CreateBookingRequest struct {
	ConnectionID  int64  `json:"connection_id" validate:"required"`
	PassengerName string `json:"passenger_name" validate:"required"`
}

func ParseCreateBookingRequest(r *http.Request) (application.CreateBookingData, error) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return application.CreateBookingData{}, decodeError(err)
	}
	return req.Validate()
}

// decodeError distingue campo com tipo errado (ex.: "connection_id": "1",
// ou um número fora de int64) de corpo ilegível.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "connection_id":
			return domain.NewValidationError(application.InvalidConnectionIDMessage)
		case "passenger_name":
			return domain.NewValidationError(application.InvalidPassengerNameMessage)
		}
	}
	return domain.NewValidationError(application.MissingBookingFieldsMessage)
}

func (req CreateBookingRequest) Validate() (application.CreateBookingData, error) {
	if err := validate.Struct(req); err != nil {
		return application.CreateBookingData{}, domain.NewValidationError(application.MissingBookingFieldsMessage)
	}

	return application.CreateBookingData{
		ConnectionID:  req.ConnectionID,
		PassengerName: req.PassengerName,
	}, nil
}
