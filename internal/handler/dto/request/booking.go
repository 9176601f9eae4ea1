package request

import (
	"github.com/google/uuid"
)

type CheckoutRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
}

type FinalizeRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	// PaymentIntentID is required when the reservation carries an amount due.
	PaymentIntentID *string `json:"paymentIntentId"`
}
