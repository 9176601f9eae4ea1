package shared

import (
	"time"

	"eventtix/internal/domain/event"
	"eventtix/internal/domain/inventory"
	"eventtix/internal/domain/reservation"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type EventSnapshot struct {
	ID                   uuid.UUID
	Title                string
	Status               event.Status
	PricingMode          event.PricingMode
	Capacity             int32
	PriceCents           int64
	RegistrationDeadline *time.Time
}

// FixedTarget maps the snapshot onto the event-level capacity pool.
func (s *EventSnapshot) FixedTarget() inventory.Target {
	return inventory.Target{
		Kind:           inventory.TargetEvent,
		ID:             s.ID,
		EventID:        s.ID,
		Capacity:       s.Capacity,
		UnitPriceCents: s.PriceCents,
	}
}

type TicketTypeSnapshot struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	Name         string
	Capacity     int32
	PriceCents   int64
	SalesStartAt time.Time
	SalesEndAt   time.Time
}

func (s *TicketTypeSnapshot) Target() inventory.Target {
	return inventory.Target{
		Kind:           inventory.TargetTicketType,
		ID:             s.ID,
		EventID:        s.EventID,
		Capacity:       s.Capacity,
		UnitPriceCents: s.PriceCents,
	}
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	TicketTypeID     *uuid.UUID
	UserID           uuid.UUID
	Quantity         int32
	UnitPriceCents   int64
	TotalAmountCents int64
	Status           reservation.Status
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

func (s *ReservationSnapshot) IsExpiredAt(now time.Time) bool {
	return s.Status == reservation.StatusReserved && !s.ExpiresAt.After(now)
}

func (s *ReservationSnapshot) Target() (inventory.TargetKind, uuid.UUID) {
	if s.TicketTypeID != nil {
		return inventory.TargetTicketType, *s.TicketTypeID
	}
	return inventory.TargetEvent, s.EventID
}

type BookingSnapshot struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	UserID       uuid.UUID
	TicketTypeID *uuid.UUID
	Quantity     int32
	Status       string
	RegisteredAt time.Time
}
