package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createReservation = `
INSERT INTO reservations (
    id, event_id, ticket_type_id, user_id, quantity,
    unit_price_cents, total_amount_cents, status, expires_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING id
`

type CreateReservationParams struct {
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
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.EventID,
		arg.TicketTypeID,
		arg.UserID,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.TotalAmountCents,
		arg.Status,
		arg.ExpiresAt,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getReservationByID = `
SELECT id, event_id, ticket_type_id, user_id, quantity,
       unit_price_cents, total_amount_cents, status, expires_at, created_at, updated_at
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	row := db.QueryRow(ctx, getReservationByID, id)
	var r Reservation
	err := row.Scan(
		&r.ID,
		&r.EventID,
		&r.TicketTypeID,
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

const getReservationsByUserID = `
SELECT id, event_id, ticket_type_id, user_id, quantity,
       unit_price_cents, total_amount_cents, status, expires_at, created_at, updated_at
FROM reservations
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) GetReservationsByUserID(ctx context.Context, db DBTX, userID uuid.UUID) ([]Reservation, error) {
	rows, err := db.Query(ctx, getReservationsByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Reservation
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(
			&r.ID,
			&r.EventID,
			&r.TicketTypeID,
			&r.UserID,
			&r.Quantity,
			&r.UnitPriceCents,
			&r.TotalAmountCents,
			&r.Status,
			&r.ExpiresAt,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const transitionReservationStatus = `
UPDATE reservations
SET status = $3, updated_at = $4
WHERE id = $1
  AND status = $2
  AND expires_at > $4
`

type TransitionReservationStatusParams struct {
	ID         uuid.UUID
	FromStatus string
	ToStatus   string
	Now        time.Time
}

// TransitionReservationStatus is the compare-and-swap for reserved holds. The
// expires_at predicate keeps lazily-expired rows out of paid/released.
func (q *Queries) TransitionReservationStatus(ctx context.Context, db DBTX, arg TransitionReservationStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, transitionReservationStatus, arg.ID, arg.FromStatus, arg.ToStatus, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseExpiredReservations = `
WITH reclaimed AS (
    UPDATE reservations
    SET status = 'expired', updated_at = $3
    WHERE status = 'reserved'
      AND expires_at <= $3
      AND ((ticket_type_id = $2 AND $1 = 'ticket_type')
        OR (event_id = $2 AND ticket_type_id IS NULL AND $1 = 'event'))
    RETURNING quantity
)
SELECT COALESCE(SUM(quantity), 0)::int FROM reclaimed
`

type ReleaseExpiredReservationsParams struct {
	TargetKind string
	TargetID   uuid.UUID
	Now        time.Time
}

// ReleaseExpiredReservations rewrites lazily-expired holds for one capacity
// target and returns the total quantity they were holding.
func (q *Queries) ReleaseExpiredReservations(ctx context.Context, db DBTX, arg ReleaseExpiredReservationsParams) (int32, error) {
	row := db.QueryRow(ctx, releaseExpiredReservations, arg.TargetKind, arg.TargetID, arg.Now)
	var reclaimed int32
	err := row.Scan(&reclaimed)
	return reclaimed, err
}

const sumActiveHoldQuantity = `
SELECT COALESCE(SUM(quantity), 0)::int
FROM reservations
WHERE status = 'reserved'
  AND expires_at > $3
  AND ((ticket_type_id = $2 AND $1 = 'ticket_type')
    OR (event_id = $2 AND ticket_type_id IS NULL AND $1 = 'event'))
`

type SumActiveHoldQuantityParams struct {
	TargetKind string
	TargetID   uuid.UUID
	Now        time.Time
}

func (q *Queries) SumActiveHoldQuantity(ctx context.Context, db DBTX, arg SumActiveHoldQuantityParams) (int32, error) {
	row := db.QueryRow(ctx, sumActiveHoldQuantity, arg.TargetKind, arg.TargetID, arg.Now)
	var total int32
	err := row.Scan(&total)
	return total, err
}
