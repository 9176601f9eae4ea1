package response

import (
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	EventID      uuid.UUID  `json:"eventId"`
	TicketTypeID *uuid.UUID `json:"ticketTypeId,omitempty"`
	Capacity     int32      `json:"capacity"`
	Confirmed    int32      `json:"confirmed"`
	ActiveHolds  int32      `json:"activeHolds"`
	Remaining    int32      `json:"remaining"`
}

type EventStatsResponse struct {
	EventID       uuid.UUID `json:"eventId"`
	Views         int64     `json:"views"`
	Saves         int64     `json:"saves"`
	Registrations int64     `json:"registrations"`
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		EventID:      rm.EventID,
		TicketTypeID: rm.TicketTypeID,
		Capacity:     rm.Capacity,
		Confirmed:    rm.Confirmed,
		ActiveHolds:  rm.ActiveHolds,
		Remaining:    rm.Remaining,
	}
}

func FromEventStatsView(rm *queries.EventStatsView) *EventStatsResponse {
	return &EventStatsResponse{
		EventID:       rm.EventID,
		Views:         rm.Views,
		Saves:         rm.Saves,
		Registrations: rm.Registrations,
	}
}
