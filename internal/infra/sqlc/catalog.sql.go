package sqlc

import (
	"context"

	"github.com/google/uuid"
)

// The events and ticket_types tables are owned by the catalog component; this
// core only reads them.

const getEventByID = `
SELECT id, title, status, pricing_mode, capacity, price_cents, registration_deadline, created_at, updated_at
FROM events
WHERE id = $1
`

func (q *Queries) GetEventByID(ctx context.Context, db DBTX, id uuid.UUID) (Event, error) {
	row := db.QueryRow(ctx, getEventByID, id)
	var e Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Status,
		&e.PricingMode,
		&e.Capacity,
		&e.PriceCents,
		&e.RegistrationDeadline,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const getTicketTypeByID = `
SELECT id, event_id, name, capacity, price_cents, sales_start_at, sales_end_at, created_at, updated_at
FROM ticket_types
WHERE id = $1
`

func (q *Queries) GetTicketTypeByID(ctx context.Context, db DBTX, id uuid.UUID) (TicketType, error) {
	row := db.QueryRow(ctx, getTicketTypeByID, id)
	var t TicketType
	err := row.Scan(
		&t.ID,
		&t.EventID,
		&t.Name,
		&t.Capacity,
		&t.PriceCents,
		&t.SalesStartAt,
		&t.SalesEndAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}
