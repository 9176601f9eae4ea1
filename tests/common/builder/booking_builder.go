//go:build unit

package builder

import (
	"time"

	reqdto "eventtix/internal/handler/dto/request"
	"eventtix/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	EventID       uuid.UUID
	EventTitle    string
	UserID        uuid.UUID
	TicketTypeID  *uuid.UUID
	ReservationID uuid.UUID
	Quantity      int32
	Status        string
	RegisteredAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		EventID:       uuid.New(),
		EventTitle:    "Test Event",
		UserID:        uuid.New(),
		ReservationID: uuid.New(),
		Quantity:      2,
		Status:        "registered",
		RegisteredAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		ReservationID: b.ReservationID,
	}
}

func (b *BookingBuilder) BuildFinalizeRequestDTO(paymentIntentID *string) reqdto.FinalizeRequest {
	return reqdto.FinalizeRequest{
		ReservationID:   b.ReservationID,
		PaymentIntentID: paymentIntentID,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		EventID:      b.EventID,
		EventTitle:   b.EventTitle,
		UserID:       b.UserID,
		TicketTypeID: b.TicketTypeID,
		Quantity:     b.Quantity,
		Status:       b.Status,
		RegisteredAt: b.RegisteredAt,
	}
}
