package response

import (
	"time"

	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID               uuid.UUID  `json:"id"`
	EventID          uuid.UUID  `json:"eventId"`
	EventTitle       string     `json:"eventTitle"`
	TicketTypeID     *uuid.UUID `json:"ticketTypeId,omitempty"`
	TicketTypeName   *string    `json:"ticketTypeName,omitempty"`
	UserID           uuid.UUID  `json:"userId"`
	Quantity         int32      `json:"quantity"`
	UnitPriceCents   int64      `json:"unitPriceCents"`
	TotalAmountCents int64      `json:"totalAmountCents"`
	Status           string     `json:"status"`
	ExpiresAt        time.Time  `json:"expiresAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID               uuid.UUID  `json:"id"`
	EventID          uuid.UUID  `json:"eventId"`
	EventTitle       string     `json:"eventTitle"`
	TicketTypeID     *uuid.UUID `json:"ticketTypeId,omitempty"`
	Quantity         int32      `json:"quantity"`
	TotalAmountCents int64      `json:"totalAmountCents"`
	Status           string     `json:"status"`
	ExpiresAt        time.Time  `json:"expiresAt"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:               rm.ID,
		EventID:          rm.EventID,
		EventTitle:       rm.EventTitle,
		TicketTypeID:     rm.TicketTypeID,
		TicketTypeName:   rm.TicketTypeName,
		UserID:           rm.UserID,
		Quantity:         rm.Quantity,
		UnitPriceCents:   rm.UnitPriceCents,
		TotalAmountCents: rm.TotalAmountCents,
		Status:           rm.Status,
		ExpiresAt:        rm.ExpiresAt,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:               rm.ID,
		EventID:          rm.EventID,
		EventTitle:       rm.EventTitle,
		TicketTypeID:     rm.TicketTypeID,
		Quantity:         rm.Quantity,
		TotalAmountCents: rm.TotalAmountCents,
		Status:           rm.Status,
		ExpiresAt:        rm.ExpiresAt,
		CreatedAt:        rm.CreatedAt,
	}
}
