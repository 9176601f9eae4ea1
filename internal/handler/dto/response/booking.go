package response

import (
	"time"

	"eventtix/internal/usecase/commands"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	EventID      uuid.UUID  `json:"eventId"`
	EventTitle   string     `json:"eventTitle"`
	UserID       uuid.UUID  `json:"userId"`
	TicketTypeID *uuid.UUID `json:"ticketTypeId,omitempty"`
	Quantity     int32      `json:"quantity"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registeredAt"`
}

type PaymentIntentResponse struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		EventID:      rm.EventID,
		EventTitle:   rm.EventTitle,
		UserID:       rm.UserID,
		TicketTypeID: rm.TicketTypeID,
		Quantity:     rm.Quantity,
		Status:       rm.Status,
		RegisteredAt: rm.RegisteredAt,
	}
}

func FromPaymentIntent(intent *commands.PaymentIntent) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}
}
