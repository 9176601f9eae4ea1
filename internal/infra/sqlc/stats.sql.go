package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const incrementEventStat = `
INSERT INTO event_stats (event_id, views, saves, registrations, updated_at)
VALUES (
    $1,
    CASE WHEN $2 = 'views' THEN $3::bigint ELSE 0 END,
    CASE WHEN $2 = 'saves' THEN $3::bigint ELSE 0 END,
    CASE WHEN $2 = 'registrations' THEN $3::bigint ELSE 0 END,
    $4
)
ON CONFLICT (event_id)
DO UPDATE SET
    views         = event_stats.views + CASE WHEN $2 = 'views' THEN $3::bigint ELSE 0 END,
    saves         = event_stats.saves + CASE WHEN $2 = 'saves' THEN $3::bigint ELSE 0 END,
    registrations = event_stats.registrations + CASE WHEN $2 = 'registrations' THEN $3::bigint ELSE 0 END,
    updated_at    = $4
`

type IncrementEventStatParams struct {
	EventID uuid.UUID
	Field   string
	Delta   int64
	Now     time.Time
}

func (q *Queries) IncrementEventStat(ctx context.Context, db DBTX, arg IncrementEventStatParams) error {
	_, err := db.Exec(ctx, incrementEventStat, arg.EventID, arg.Field, arg.Delta, arg.Now)
	return err
}

const getEventStats = `
SELECT event_id, views, saves, registrations, updated_at
FROM event_stats
WHERE event_id = $1
`

func (q *Queries) GetEventStats(ctx context.Context, db DBTX, eventID uuid.UUID) (EventStats, error) {
	row := db.QueryRow(ctx, getEventStats, eventID)
	var s EventStats
	err := row.Scan(&s.EventID, &s.Views, &s.Saves, &s.Registrations, &s.UpdatedAt)
	return s, err
}
