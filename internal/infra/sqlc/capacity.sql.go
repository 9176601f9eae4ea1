package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const upsertCapacityCounter = `
INSERT INTO capacity_counters (target_kind, target_id, event_id, capacity, consumed, updated_at)
VALUES ($1, $2, $3, $4, 0, $5)
ON CONFLICT (target_kind, target_id)
DO UPDATE SET capacity = EXCLUDED.capacity, updated_at = EXCLUDED.updated_at
`

type UpsertCapacityCounterParams struct {
	TargetKind string
	TargetID   uuid.UUID
	EventID    uuid.UUID
	Capacity   int32
	Now        time.Time
}

// UpsertCapacityCounter creates the counter row on first use and refreshes the
// cached catalog capacity on every pass.
func (q *Queries) UpsertCapacityCounter(ctx context.Context, db DBTX, arg UpsertCapacityCounterParams) error {
	_, err := db.Exec(ctx, upsertCapacityCounter, arg.TargetKind, arg.TargetID, arg.EventID, arg.Capacity, arg.Now)
	return err
}

const consumeCapacity = `
UPDATE capacity_counters
SET consumed = consumed + $3, updated_at = $4
WHERE target_kind = $1
  AND target_id = $2
  AND consumed + $3 <= capacity
`

type ConsumeCapacityParams struct {
	TargetKind string
	TargetID   uuid.UUID
	Quantity   int32
	Now        time.Time
}

// ConsumeCapacity is the sole admission gate: a conditional increment that
// succeeds only while the result stays within capacity. Zero rows affected
// means insufficient capacity.
func (q *Queries) ConsumeCapacity(ctx context.Context, db DBTX, arg ConsumeCapacityParams) (int64, error) {
	tag, err := db.Exec(ctx, consumeCapacity, arg.TargetKind, arg.TargetID, arg.Quantity, arg.Now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const releaseCapacity = `
UPDATE capacity_counters
SET consumed = GREATEST(consumed - $3, 0), updated_at = $4
WHERE target_kind = $1
  AND target_id = $2
`

type ReleaseCapacityParams struct {
	TargetKind string
	TargetID   uuid.UUID
	Quantity   int32
	Now        time.Time
}

func (q *Queries) ReleaseCapacity(ctx context.Context, db DBTX, arg ReleaseCapacityParams) error {
	_, err := db.Exec(ctx, releaseCapacity, arg.TargetKind, arg.TargetID, arg.Quantity, arg.Now)
	return err
}

const getCapacityRemaining = `
SELECT capacity - consumed
FROM capacity_counters
WHERE target_kind = $1 AND target_id = $2
`

type GetCapacityRemainingParams struct {
	TargetKind string
	TargetID   uuid.UUID
}

func (q *Queries) GetCapacityRemaining(ctx context.Context, db DBTX, arg GetCapacityRemainingParams) (int32, error) {
	row := db.QueryRow(ctx, getCapacityRemaining, arg.TargetKind, arg.TargetID)
	var remaining int32
	err := row.Scan(&remaining)
	return remaining, err
}
