package repository

import (
	"context"
	"time"

	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"

	"github.com/google/uuid"
)

// StatsRepository updates the denormalized per-event counters. It runs on the
// pool, outside the transaction that protects reservations and bookings, and
// callers tolerate its failure.
type StatsRepository struct {
	q  *sqlc.Queries
	db sqlc.DBTX
}

func NewStatsRepository(q *sqlc.Queries, db sqlc.DBTX) *StatsRepository {
	return &StatsRepository{q: q, db: db}
}

func (r *StatsRepository) Increment(ctx context.Context, eventID uuid.UUID, field string, delta int64) error {
	err := r.q.IncrementEventStat(ctx, r.db, sqlc.IncrementEventStatParams{
		EventID: eventID,
		Field:   field,
		Delta:   delta,
		Now:     time.Now(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to increment event stat", err)
	}
	return nil
}
