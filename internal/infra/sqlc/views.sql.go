package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const getReservationViewByID = `
SELECT r.id, r.event_id, e.title, r.ticket_type_id, tt.name,
       r.user_id, r.quantity, r.unit_price_cents, r.total_amount_cents,
       r.status, r.expires_at, r.created_at, r.updated_at
FROM reservations r
JOIN events e ON e.id = r.event_id
LEFT JOIN ticket_types tt ON tt.id = r.ticket_type_id
WHERE r.id = $1
`

type GetReservationViewByIDRow struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	EventTitle       string
	TicketTypeID     *uuid.UUID
	TicketTypeName   *string
	UserID           uuid.UUID
	Quantity         int32
	UnitPriceCents   int64
	TotalAmountCents int64
	Status           string
	ExpiresAt        time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (q *Queries) GetReservationViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetReservationViewByIDRow, error) {
	row := db.QueryRow(ctx, getReservationViewByID, id)
	var r GetReservationViewByIDRow
	err := row.Scan(
		&r.ID,
		&r.EventID,
		&r.EventTitle,
		&r.TicketTypeID,
		&r.TicketTypeName,
		&r.UserID,
		&r.Quantity,
		&r.UnitPriceCents,
		&r.TotalAmountCents,
		&r.Status,
		&r.ExpiresAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

const getReservationViewsByUserID = `
SELECT r.id, r.event_id, e.title, r.ticket_type_id,
       r.quantity, r.total_amount_cents, r.status, r.expires_at, r.created_at
FROM reservations r
JOIN events e ON e.id = r.event_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC
`

type GetReservationViewsByUserIDRow struct {
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

func (q *Queries) GetReservationViewsByUserID(ctx context.Context, db DBTX, userID uuid.UUID) ([]GetReservationViewsByUserIDRow, error) {
	rows, err := db.Query(ctx, getReservationViewsByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetReservationViewsByUserIDRow
	for rows.Next() {
		var r GetReservationViewsByUserIDRow
		if err := rows.Scan(
			&r.ID,
			&r.EventID,
			&r.EventTitle,
			&r.TicketTypeID,
			&r.Quantity,
			&r.TotalAmountCents,
			&r.Status,
			&r.ExpiresAt,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getBookingViewByID = `
SELECT b.id, b.event_id, e.title, b.user_id, b.ticket_type_id,
       b.quantity, b.status, b.registered_at
FROM bookings b
JOIN events e ON e.id = b.event_id
WHERE b.id = $1
`

type GetBookingViewByIDRow struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	EventTitle   string
	UserID       uuid.UUID
	TicketTypeID *uuid.UUID
	Quantity     int32
	Status       string
	RegisteredAt time.Time
}

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var b GetBookingViewByIDRow
	err := row.Scan(
		&b.ID,
		&b.EventID,
		&b.EventTitle,
		&b.UserID,
		&b.TicketTypeID,
		&b.Quantity,
		&b.Status,
		&b.RegisteredAt,
	)
	return b, err
}

const getBookingViewByEventAndUser = `
SELECT b.id, b.event_id, e.title, b.user_id, b.ticket_type_id,
       b.quantity, b.status, b.registered_at
FROM bookings b
JOIN events e ON e.id = b.event_id
WHERE b.event_id = $1 AND b.user_id = $2
`

func (q *Queries) GetBookingViewByEventAndUser(ctx context.Context, db DBTX, eventID, userID uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByEventAndUser, eventID, userID)
	var b GetBookingViewByIDRow
	err := row.Scan(
		&b.ID,
		&b.EventID,
		&b.EventTitle,
		&b.UserID,
		&b.TicketTypeID,
		&b.Quantity,
		&b.Status,
		&b.RegisteredAt,
	)
	return b, err
}
