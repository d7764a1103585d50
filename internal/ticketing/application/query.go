package application

import (
	"github.com/ExoTV1102/Ticketsystem/pkg/domain"
)

const (
	ListStationsQueryName          = "ListStations"
	FindDirectConnectionsQueryName = "FindDirectConnections"
	ListBookingsQueryName          = "ListBookings"
)

type ListStationsData struct{}

type listStationsQuery struct {
	data ListStationsData
}

func (q listStationsQuery) QueryName() string {
	return ListStationsQueryName
}

func (q listStationsQuery) Payload() ListStationsData {
	return q.data
}

func NewListStationsQuery() domain.Query[ListStationsData] {
	return listStationsQuery{}
}

// FindDirectConnectionsData identifica o par de estações da busca direta.
type FindDirectConnectionsData struct {
	FromStationID int64
	ToStationID   int64
}

type findDirectConnectionsQuery struct {
	data FindDirectConnectionsData
}

func (q findDirectConnectionsQuery) QueryName() string {
	return FindDirectConnectionsQueryName
}

func (q findDirectConnectionsQuery) Payload() FindDirectConnectionsData {
	return q.data
}

func NewFindDirectConnectionsQuery(data FindDirectConnectionsData) domain.Query[FindDirectConnectionsData] {
	return findDirectConnectionsQuery{data: data}
}

type ListBookingsData struct{}

type listBookingsQuery struct {
	data ListBookingsData
}

func (q listBookingsQuery) QueryName() string {
	return ListBookingsQueryName
}

func (q listBookingsQuery) Payload() ListBookingsData {
	return q.data
}

func NewListBookingsQuery() domain.Query[ListBookingsData] {
	return listBookingsQuery{}
}
