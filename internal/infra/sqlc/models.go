package sqlc

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                   uuid.UUID
	Title                string
	Status               string
	PricingMode          string
	Capacity             int32
	PriceCents           int64
	RegistrationDeadline *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type TicketType struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	Name         string
	Capacity     int32
	PriceCents   int64
	SalesStartAt time.Time
	SalesEndAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Reservation struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	TicketTypeID     *uuid.UUID
	UserID           uuid.UUID
	Quantity         int32
	UnitPriceCents   int64
	TotalAmountCents int64
	Status           string
	ExpiresAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Booking struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	UserID       uuid.UUID
	TicketTypeID *uuid.UUID
	Quantity     int32
	Status       string
	RegisteredAt time.Time
}

type CapacityCounter struct {
	TargetKind string
	TargetID   uuid.UUID
	EventID    uuid.UUID
	Capacity   int32
	Consumed   int32
	UpdatedAt  time.Time
}

type EventStats struct {
	EventID       uuid.UUID
	Views         int64
	Saves         int64
	Registrations int64
	UpdatedAt     time.Time
}
