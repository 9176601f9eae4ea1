package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createBooking = `
INSERT INTO bookings (id, event_id, user_id, ticket_type_id, quantity, status, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

type CreateBookingParams struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	UserID       uuid.UUID
	TicketTypeID *uuid.UUID
	Quantity     int32
	Status       string
	RegisteredAt time.Time
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.EventID,
		arg.UserID,
		arg.TicketTypeID,
		arg.Quantity,
		arg.Status,
		arg.RegisteredAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getBookingByID = `
SELECT id, event_id, user_id, ticket_type_id, quantity, status, registered_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Booking, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var b Booking
	err := row.Scan(&b.ID, &b.EventID, &b.UserID, &b.TicketTypeID, &b.Quantity, &b.Status, &b.RegisteredAt)
	return b, err
}

const getBookingByEventAndUser = `
SELECT id, event_id, user_id, ticket_type_id, quantity, status, registered_at
FROM bookings
WHERE event_id = $1 AND user_id = $2
`

type GetBookingByEventAndUserParams struct {
	EventID uuid.UUID
	UserID  uuid.UUID
}

func (q *Queries) GetBookingByEventAndUser(ctx context.Context, db DBTX, arg GetBookingByEventAndUserParams) (Booking, error) {
	row := db.QueryRow(ctx, getBookingByEventAndUser, arg.EventID, arg.UserID)
	var b Booking
	err := row.Scan(&b.ID, &b.EventID, &b.UserID, &b.TicketTypeID, &b.Quantity, &b.Status, &b.RegisteredAt)
	return b, err
}

const sumConfirmedQuantity = `
SELECT COALESCE(SUM(b.quantity), 0)::int
FROM bookings b
WHERE b.status = 'registered'
  AND ((b.ticket_type_id = $2 AND $1 = 'ticket_type')
    OR (b.event_id = $2 AND b.ticket_type_id IS NULL AND $1 = 'event'))
`

type SumConfirmedQuantityParams struct {
	TargetKind string
	TargetID   uuid.UUID
}

func (q *Queries) SumConfirmedQuantity(ctx context.Context, db DBTX, arg SumConfirmedQuantityParams) (int32, error) {
	row := db.QueryRow(ctx, sumConfirmedQuantity, arg.TargetKind, arg.TargetID)
	var total int32
	err := row.Scan(&total)
	return total, err
}
