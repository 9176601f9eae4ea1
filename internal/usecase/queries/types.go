package queries

import (
	"time"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	EventTitle       string
	TicketTypeID     *uuid.UUID
	TicketTypeName   *string
	UserID           uuid.UUID
	Quantity         int32
	UnitPriceCents   int64
	TotalAmountCents int64
	// Status carries the lazy expired classification: a stored reserved row
	// whose TTL elapsed is rendered as expired.
	Status    string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationListItem struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	EventTitle       string
	TicketTypeID     *uuid.UUID
	Quantity         int32
	TotalAmountCents int64
	Status           string
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

type BookingView struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	EventTitle   string
	UserID       uuid.UUID
	TicketTypeID *uuid.UUID
	Quantity     int32
	Status       string
	RegisteredAt time.Time
}

// AvailabilityView is the audit/reporting view of one capacity target. It is
// computed from aggregates and is never used as the admission gate.
type AvailabilityView struct {
	EventID      uuid.UUID
	TicketTypeID *uuid.UUID
	Capacity     int32
	Confirmed    int32
	ActiveHolds  int32
	Remaining    int32
}

type EventStatsView struct {
	EventID       uuid.UUID
	Views         int64
	Saves         int64
	Registrations int64
}
