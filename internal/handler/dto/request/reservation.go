package request

import (
	"github.com/google/uuid"
)

type ReserveRequest struct {
	TicketTypeID *uuid.UUID `json:"ticketTypeId"`
	Quantity     int32      `json:"quantity" binding:"required,gt=0"`
}
