package repository

import (
	"context"
	"time"

	"eventtix/internal/domain/inventory"
	"eventtix/internal/infra"
	"eventtix/internal/infra/sqlc"

	"github.com/google/uuid"
)

// CapacityRepository manages the per-target atomic counters that gate
// reservation admission.
type CapacityRepository struct {
	q *sqlc.Queries
}

func NewCapacityRepository(q *sqlc.Queries) *CapacityRepository {
	return &CapacityRepository{q: q}
}

func (r *CapacityRepository) Ensure(ctx context.Context, db sqlc.DBTX, target inventory.Target, now time.Time) error {
	err := r.q.UpsertCapacityCounter(ctx, db, sqlc.UpsertCapacityCounterParams{
		TargetKind: target.Kind.String(),
		TargetID:   target.ID,
		EventID:    target.EventID,
		Capacity:   target.Capacity,
		Now:        now,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert capacity counter", err)
	}
	return nil
}

func (r *CapacityRepository) TryConsume(
	ctx context.Context,
	db sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	quantity int32,
	now time.Time,
) (bool, error) {
	rows, err := r.q.ConsumeCapacity(ctx, db, sqlc.ConsumeCapacityParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
		Quantity:   quantity,
		Now:        now,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume capacity", err)
	}
	return rows > 0, nil
}

func (r *CapacityRepository) Release(
	ctx context.Context,
	db sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
	quantity int32,
	now time.Time,
) error {
	err := r.q.ReleaseCapacity(ctx, db, sqlc.ReleaseCapacityParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
		Quantity:   quantity,
		Now:        now,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release capacity", err)
	}
	return nil
}

func (r *CapacityRepository) Remaining(
	ctx context.Context,
	db sqlc.DBTX,
	kind inventory.TargetKind,
	targetID uuid.UUID,
) (int32, error) {
	remaining, err := r.q.GetCapacityRemaining(ctx, db, sqlc.GetCapacityRemainingParams{
		TargetKind: kind.String(),
		TargetID:   targetID,
	})
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("capacity counter not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read remaining capacity", err)
	}
	return remaining, nil
}
