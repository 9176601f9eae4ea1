package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

type Status string

const (
	StatusRegistered Status = "registered"
	StatusCancelled  Status = "cancelled"
	StatusAttended   Status = "attended"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRegistered, StatusCancelled, StatusAttended, StatusNoShow:
		return true
	default:
		return false
	}
}

// Booking is the durable record of a completed reservation. At most one
// booking exists per (eventID, userID) pair.
type Booking struct {
	id           uuid.UUID
	eventID      uuid.UUID
	userID       uuid.UUID
	ticketTypeID *uuid.UUID
	quantity     int32
	status       Status
	registeredAt time.Time
}

func NewBooking(
	eventID, userID uuid.UUID,
	ticketTypeID *uuid.UUID,
	quantity int32,
	now time.Time,
) (*Booking, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	return &Booking{
		id:           uuid.New(),
		eventID:      eventID,
		userID:       userID,
		ticketTypeID: ticketTypeID,
		quantity:     quantity,
		status:       StatusRegistered,
		registeredAt: now,
	}, nil
}

func ReconstructBooking(
	id, eventID, userID uuid.UUID,
	ticketTypeID *uuid.UUID,
	quantity int32,
	status Status,
	registeredAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		eventID:      eventID,
		userID:       userID,
		ticketTypeID: ticketTypeID,
		quantity:     quantity,
		status:       status,
		registeredAt: registeredAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) EventID() uuid.UUID       { return b.eventID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) TicketTypeID() *uuid.UUID { return b.ticketTypeID }
func (b *Booking) Quantity() int32          { return b.quantity }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) RegisteredAt() time.Time  { return b.registeredAt }
